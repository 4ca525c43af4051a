package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Session storage: "memory" or "mongo".
	StoreBackend string `mapstructure:"STORE_BACKEND"`
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Redis configuration.
	RedisAddr        string        `mapstructure:"REDIS_ADDR"`
	RedisPassword    string        `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB     int           `mapstructure:"REDIS_CACHE_DB"`
	PlanCacheEnabled bool          `mapstructure:"PLAN_CACHE_ENABLED"`
	PlanCacheTTL     time.Duration `mapstructure:"PLAN_CACHE_TTL"`

	// Planner defaults.
	SleepHours         float64 `mapstructure:"SLEEP_HOURS"`
	DefaultMeals       int     `mapstructure:"DEFAULT_MEALS"`
	MealMinutes        int     `mapstructure:"MEAL_MINUTES"`
	WorkoutMinutes     int     `mapstructure:"WORKOUT_MINUTES"`
	PersonalMinMinutes int     `mapstructure:"PERSONAL_MIN_MINUTES"`

	// Idle session sweeping.
	SessionIdleTTL time.Duration `mapstructure:"SESSION_IDLE_TTL"`
	SweepSchedule  string        `mapstructure:"SWEEP_SCHEDULE"`
}

var AppConfig Config

func setDefaults() {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("STORE_BACKEND", "memory")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "dayplanner")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("PLAN_CACHE_ENABLED", false)
	viper.SetDefault("PLAN_CACHE_TTL", "10m")
	viper.SetDefault("SLEEP_HOURS", 8)
	viper.SetDefault("DEFAULT_MEALS", 3)
	viper.SetDefault("MEAL_MINUTES", 30)
	viper.SetDefault("WORKOUT_MINUTES", 60)
	viper.SetDefault("PERSONAL_MIN_MINUTES", 30)
	viper.SetDefault("SESSION_IDLE_TTL", "24h")
	viper.SetDefault("SWEEP_SCHEDULE", "@every 15m")
}

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// UsesMongo reports whether sessions are stored in MongoDB.
func UsesMongo() bool {
	return AppConfig.StoreBackend == "mongo"
}
