// File: dayplanner/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dayplanner/config"
	"dayplanner/cron"
	"dayplanner/database"
	scheduleRepo "dayplanner/database/repository/schedule"
	"dayplanner/handlers"
	"dayplanner/middleware"
	"dayplanner/routes"
	"dayplanner/services/planner"
	"dayplanner/services/schedule"
	"dayplanner/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// repositories.
	var repo scheduleRepo.ScheduleRepository
	var mongoClient *mongo.Client
	if config.UsesMongo() {
		database.InitDB()
		mongoClient = database.MongoClient
		mongoRepo := scheduleRepo.NewMongoScheduleRepo()
		if err := mongoRepo.EnsureIndexes(); err != nil {
			logger.Warn("main: failed to ensure schedule indexes", zap.Error(err))
		}
		repo = mongoRepo
	} else {
		logger.Info("main: sessions are kept in memory")
		repo = scheduleRepo.NewMemoryScheduleRepo()
	}

	// services.
	scheduleService := &schedule.DefaultScheduleService{
		Repo:     repo,
		Defaults: plannerOptions(config.AppConfig),
	}
	var redisClient *redis.Client
	if config.AppConfig.PlanCacheEnabled {
		if err := utils.InitCache(); err != nil {
			logger.Warn("main: plan cache disabled", zap.Error(err))
		} else {
			redisClient = utils.GetCacheClient()
			scheduleService.Cache = schedule.NewRedisPlanCache(redisClient, config.AppConfig.PlanCacheTTL)
		}
	}

	healthCtx, stopHealth := context.WithCancel(context.Background())
	defer stopHealth()
	utils.StartHealthMonitor(healthCtx, redisClient, mongoClient)

	sweeper, err := cron.NewSweeper(scheduleService, config.AppConfig.SweepSchedule, config.AppConfig.SessionIdleTTL)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	sweeper.Start()

	// Create the Gin router.
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	routes.RegisterRoutes(router, handlers.NewHandlerBundle(scheduleHandler))

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	sweeper.Stop()
	if err := utils.CloseCache(); err != nil {
		logger.Warn("main: closing redis", zap.Error(err))
	}
	if err := database.CloseDB(ctx); err != nil {
		logger.Warn("main: closing mongo", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

// plannerOptions turns the configured defaults into planner options.
func plannerOptions(cfg config.Config) planner.Options {
	opts := planner.DefaultOptions()
	if cfg.SleepHours > 0 {
		opts.Sleep = planner.LatestEndPolicy{Minutes: int(cfg.SleepHours * 60)}
	}
	if cfg.DefaultMeals > 0 {
		opts.Meals = cfg.DefaultMeals
	}
	if cfg.MealMinutes > 0 {
		opts.MealMinutes = cfg.MealMinutes
	}
	if cfg.WorkoutMinutes > 0 {
		opts.WorkoutMinutes = cfg.WorkoutMinutes
	}
	if cfg.PersonalMinMinutes > 0 {
		opts.PersonalMinMinutes = cfg.PersonalMinMinutes
	}
	return opts
}
