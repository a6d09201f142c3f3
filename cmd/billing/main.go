package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/usage-billing/app/config"
	"github.com/usage-billing/app/services"
	"github.com/usage-billing/internal/export"
	"github.com/usage-billing/internal/ingest"
	"github.com/usage-billing/internal/matcher"
	"github.com/usage-billing/internal/parser"
	"go.uber.org/zap"
)

func main() {
	loadConfig()

	logger := initLogger()
	defer logger.Sync()

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: billing <usage-export.csv|xlsx> [output.xlsx]")
		os.Exit(2)
	}
	usagePath := os.Args[1]
	outputPath := viper.GetString("output_path")
	if len(os.Args) >= 3 {
		outputPath = os.Args[2]
	}

	cfg := loadBillingConfig(logger)

	logger.Info("starting usage billing run",
		zap.String("usage_path", usagePath),
		zap.Int("roster_entries", len(cfg.Roster)),
		zap.Bool("filter_to_roster", cfg.Matcher.FilterToRoster))

	// Wire the engine.
	addressParser := parser.NewAddressParser(logger)
	synonyms := matcher.SynonymTable(cfg.Matcher.Synonyms)
	m := matcher.NewMatcher(addressParser, synonyms, logger)
	allowance := services.NewAllowanceTable(cfg.Allowance)
	billing := services.NewBillingService(addressParser, m, allowance, cfg.Roster, cfg.Matcher.FilterToRoster, logger)

	table, err := ingest.ReadReport(usagePath)
	if err != nil {
		logger.Fatal("failed to read usage export", zap.Error(err))
	}

	report, err := billing.ProcessUsage(table)
	if err != nil {
		logger.Fatal("failed to process usage export", zap.Error(err))
	}

	for _, sug := range report.Suggestions {
		logger.Warn("roster entry needs review",
			zap.String("address", sug.Spec.Raw),
			zap.String("nearest_dataset_key", sug.NearestKey))
	}

	if outputPath != "" {
		if err := writeReport(outputPath, report); err != nil {
			logger.Fatal("failed to write report", zap.Error(err))
		}
		logger.Info("report written", zap.String("path", outputPath))
	}

	logger.Info("usage billing run finished",
		zap.String("run_id", report.Summary.RunID),
		zap.Int("lines", report.Summary.Lines),
		zap.Float64("total_extra", report.Summary.TotalExtra))
}

func writeReport(path string, report *services.UsageReport) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return export.WriteCSV(path, report.Lines)
	default:
		return export.WriteExcel(path, report.Lines, report.Summary.RunID)
	}
}

// loadConfig sets up viper for paths and env overrides.
func loadConfig() {
	viper.SetConfigName("billing")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")

	viper.SetDefault("app.env", "development")
	viper.SetDefault("config_path", "config/billing.yaml")
	viper.SetDefault("output_path", "")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: cannot read config file: %v", err)
	}
}

// loadBillingConfig reads the billing config file, falling back to the
// built-in production defaults when the file is absent.
func loadBillingConfig(logger *zap.Logger) *config.Config {
	path := viper.GetString("config_path")
	cfg, err := config.Load(path)
	if err != nil {
		logger.Warn("using built-in default config", zap.String("path", path), zap.Error(err))
		return config.Default()
	}
	return cfg
}

// initLogger builds the structured logger for the run.
func initLogger() *zap.Logger {
	var zcfg zap.Config
	if getEnv("APP_ENV", viper.GetString("app.env")) == "production" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}

	logger, err := zcfg.Build()
	if err != nil {
		log.Fatal("cannot initialize logger:", err)
	}
	return logger
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
