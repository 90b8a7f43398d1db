package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/adlens/ad-confidence-api/internal/domain"
)

type Config struct {
	App                App                `mapstructure:",squash"`
	Server             Server             `mapstructure:",squash"`
	Database           Database           `mapstructure:",squash"`
	Meta               Meta               `mapstructure:",squash"`
	Auth               Auth               `mapstructure:",squash"`
	Gating             Gating             `mapstructure:",squash"`
	Learning           Learning           `mapstructure:",squash"`
	OutcomeResolution  OutcomeResolution  `mapstructure:",squash"`
	MonthlySummarySync MonthlySummarySync `mapstructure:",squash"`
	SecretKey          string             `mapstructure:"secret_key"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Meta struct {
	BaseURL        string    `mapstructure:"meta_base_url"`
	URL            string    `mapstructure:"meta_url"`
	Version        string    `mapstructure:"meta_version"`
	AccessToken    string    `mapstructure:"meta_access_token"`
	AppID          string    `mapstructure:"meta_app_id"`
	AppSecret      string    `mapstructure:"meta_app_secret"`
	LongLivedToken string    `mapstructure:"meta_long_lived_token"`
	TokenExpiresAt time.Time `mapstructure:"-"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Gating holds the confidence gate thresholds. Defaults match the product
// rules; overriding them is meant for staging experiments, not per-account
// tuning.
type Gating struct {
	MinAgeHours           float64 `mapstructure:"gating_min_age_hours"`
	ImpressionMediumFloor int     `mapstructure:"gating_impression_medium_floor"`
	ImpressionHighFloor   int     `mapstructure:"gating_impression_high_floor"`
	ConversionLowFloor    int     `mapstructure:"gating_conversion_low_floor"`
	ConversionMediumFloor int     `mapstructure:"gating_conversion_medium_floor"`
	ConversionHighFloor   int     `mapstructure:"gating_conversion_high_floor"`
	IOSPenaltyThreshold   float64 `mapstructure:"gating_ios_penalty_threshold"`
	MinSpend              float64 `mapstructure:"gating_min_spend"`
}

// Learning holds the outcome-learning knobs. MinCohort can be raised but the
// engine never lets it drop below the hard privacy floor.
type Learning struct {
	SuccessNoiseFloorPct     float64 `mapstructure:"learning_success_noise_floor_pct"`
	MinCohort                int     `mapstructure:"learning_min_cohort"`
	ActionableMinSampleSize  int     `mapstructure:"learning_actionable_min_sample_size"`
	ActionableMaxRecencyDays int     `mapstructure:"learning_actionable_max_recency_days"`
}

type OutcomeResolution struct {
	CronSchedule          string `mapstructure:"outcome_resolution_cron"`
	MeasurementWindowDays int    `mapstructure:"outcome_resolution_measurement_window_days"`
	RequestDelaySeconds   int    `mapstructure:"outcome_resolution_request_delay_seconds"`
	Enabled               bool   `mapstructure:"outcome_resolution_enabled"`
}

type MonthlySummarySync struct {
	CronSchedule        string `mapstructure:"monthly_summary_sync_cron"`
	RequestDelaySeconds int    `mapstructure:"monthly_summary_sync_request_delay_seconds"`
	MonthLookBack       int    `mapstructure:"monthly_summary_sync_month_lookback"`
	RetentionMonths     int    `mapstructure:"monthly_summary_sync_retention_months"`
	Enabled             bool   `mapstructure:"monthly_summary_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/adconfidence")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_URL", "https://graph.facebook.com/v22.0")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_APP_ID", "your_app_id")
	viper.SetDefault("META_APP_SECRET", "your_app_secret")
	viper.SetDefault("META_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	// Confidence gate thresholds
	viper.SetDefault("GATING_MIN_AGE_HOURS", 24.0)
	viper.SetDefault("GATING_IMPRESSION_MEDIUM_FLOOR", 1000)
	viper.SetDefault("GATING_IMPRESSION_HIGH_FLOOR", 10000)
	viper.SetDefault("GATING_CONVERSION_LOW_FLOOR", 1)
	viper.SetDefault("GATING_CONVERSION_MEDIUM_FLOOR", 10)
	viper.SetDefault("GATING_CONVERSION_HIGH_FLOOR", 30)
	viper.SetDefault("GATING_IOS_PENALTY_THRESHOLD", 0.30)
	viper.SetDefault("GATING_MIN_SPEND", 100.0)

	// Outcome learning
	viper.SetDefault("LEARNING_SUCCESS_NOISE_FLOOR_PCT", 2.0)
	viper.SetDefault("LEARNING_MIN_COHORT", 10)
	viper.SetDefault("LEARNING_ACTIONABLE_MIN_SAMPLE_SIZE", 3)
	viper.SetDefault("LEARNING_ACTIONABLE_MAX_RECENCY_DAYS", 60)

	// Outcome resolution job
	viper.SetDefault("OUTCOME_RESOLUTION_CRON", "0 3 * * *")
	viper.SetDefault("OUTCOME_RESOLUTION_MEASUREMENT_WINDOW_DAYS", 14)
	viper.SetDefault("OUTCOME_RESOLUTION_REQUEST_DELAY_SECONDS", 2)
	viper.SetDefault("OUTCOME_RESOLUTION_ENABLED", false)

	// Monthly summary job
	viper.SetDefault("MONTHLY_SUMMARY_SYNC_CRON", "0 5 1 * *")
	viper.SetDefault("MONTHLY_SUMMARY_SYNC_REQUEST_DELAY_SECONDS", 2)
	viper.SetDefault("MONTHLY_SUMMARY_SYNC_MONTH_LOOKBACK", 1)
	viper.SetDefault("MONTHLY_SUMMARY_SYNC_RETENTION_MONTHS", 24)
	viper.SetDefault("MONTHLY_SUMMARY_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Using variables loaded by godotenv (viper could not read .env):", err)
	} else {
		logrus.Info(".env file read by viper")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Thresholds assembles the domain threshold set from the gating and learning
// sections. MinCohort is clamped here so no configuration, however wrong, can
// lower the privacy floor.
func (c *Config) Thresholds() domain.Thresholds {
	th := domain.Thresholds{
		MinAgeHours:              c.Gating.MinAgeHours,
		ImpressionMediumFloor:    c.Gating.ImpressionMediumFloor,
		ImpressionHighFloor:      c.Gating.ImpressionHighFloor,
		ConversionLowFloor:       c.Gating.ConversionLowFloor,
		ConversionMediumFloor:    c.Gating.ConversionMediumFloor,
		ConversionHighFloor:      c.Gating.ConversionHighFloor,
		IOSPenaltyThreshold:      c.Gating.IOSPenaltyThreshold,
		MinSpend:                 c.Gating.MinSpend,
		SuccessNoiseFloorPct:     c.Learning.SuccessNoiseFloorPct,
		MinCohort:                c.Learning.MinCohort,
		ActionableMinSampleSize:  c.Learning.ActionableMinSampleSize,
		ActionableMaxRecencyDays: c.Learning.ActionableMaxRecencyDays,
	}

	if th.MinCohort < domain.HardMinCohort {
		th.MinCohort = domain.HardMinCohort
	}

	return th
}

// Helper to load the .env file with godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Could not determine the current directory:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info(".env file loaded from:", location)
			return
		}
	}

	logrus.Warn("Could not load a .env file from any known location")
}
