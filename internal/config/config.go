package config

import (
	"os"
	"strconv"

	"aitrends/domain/jobs"
	"aitrends/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Data   DataConfig
	Server ServerConfig
	Chart  ChartConfig
}

// DataConfig holds dataset and column naming settings
type DataConfig struct {
	File         string
	RoleColumn   string
	SalaryColumn string
	SkillsColumn string
	TopSkills    int
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// ChartConfig holds visualization sink settings
type ChartConfig struct {
	OutputPath string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{}

	dataConfig, err := loadDataConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load data configuration")
	}
	config.Data = *dataConfig

	config.Server = ServerConfig{
		Port: getEnv("AITRENDS_PORT", "8080"),
	}

	config.Chart = ChartConfig{
		OutputPath: os.Getenv("AITRENDS_CHART_OUTPUT"),
	}

	return config, nil
}

func loadDataConfig() (*DataConfig, error) {
	cols := jobs.DefaultColumns()

	topSkills := 10
	if raw := os.Getenv("AITRENDS_TOP_SKILLS"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return nil, errors.ConfigInvalid("AITRENDS_TOP_SKILLS must be a positive integer")
		}
		topSkills = parsed
	}

	return &DataConfig{
		File:         os.Getenv("AITRENDS_DATA_FILE"),
		RoleColumn:   getEnv("AITRENDS_ROLE_COLUMN", cols.Role),
		SalaryColumn: getEnv("AITRENDS_SALARY_COLUMN", cols.Salary),
		SkillsColumn: getEnv("AITRENDS_SKILLS_COLUMN", cols.Skills),
		TopSkills:    topSkills,
	}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
