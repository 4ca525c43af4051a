package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"dayplanner/models"
	"dayplanner/services/schedule"
)

// weekFile is the on-disk form of a planning session.
type weekFile struct {
	Obligations []models.ObligationInput `yaml:"obligations"`
	Colors      map[string]string        `yaml:"colors"`
}

// loadWeek reads a week file through the same validation as the HTTP API: unreadable times
// become warnings and overlapping entries are rejected.
func loadWeek(path string) (*models.Schedule, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read week file: %w", err)
	}
	var wf weekFile
	if err := yaml.Unmarshal(data, &wf); err != nil {
		return nil, nil, fmt.Errorf("parse week file %s: %w", path, err)
	}

	sch := &models.Schedule{ID: path}
	st := schedule.NewStore(sch)
	var warnings []string
	for i, in := range wf.Obligations {
		o, warns, err := schedule.ToObligation(in)
		if err != nil {
			return nil, nil, fmt.Errorf("obligation %d: %w", i+1, err)
		}
		for _, w := range warns {
			warnings = append(warnings, fmt.Sprintf("obligation %d: %s", i+1, w))
		}
		if _, err := st.Add(o); err != nil {
			return nil, nil, fmt.Errorf("obligation %d: %w", i+1, err)
		}
		st.SetColor(o.Label, in.Color)
	}
	for label, color := range wf.Colors {
		st.SetColor(label, color)
	}
	return sch, warnings, nil
}
