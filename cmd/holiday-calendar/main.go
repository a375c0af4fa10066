package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/holiday-calendar/internal/calendar"
	"github.com/username/holiday-calendar/internal/config"
	"github.com/username/holiday-calendar/internal/holiday"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	logger     *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "holiday-calendar",
		Short: "Monthly calendar with public holidays",
		Long:  "Show a monthly calendar annotated with public holidays and compensatory workdays",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load config to get log file path
			cfg, err := config.Load(configPath)
			if err == nil && cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					initLogger() // Fallback to console
				}
			} else {
				initLogger() // Default console logger
			}
		},
		// Without a subcommand: tray when enabled, else the current month
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if cfg.Tray.Enabled {
				return runTray(cmd.Context(), cfg)
			}
			return runShow(cmd.Context(), cfg, calendar.YearMonthOf(time.Now()), true)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path")

	rootCmd.AddCommand(showCmd())
	rootCmd.AddCommand(browseCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(trayCmd())
	rootCmd.AddCommand(exportCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newProvider builds the holiday data provider described by cfg
func newProvider(cfg *config.Config, logger *zap.Logger) (holiday.Provider, error) {
	switch cfg.Provider.Type {
	case "file":
		logger.Info("Using file holiday data", zap.String("dir", cfg.Provider.DataDir))
		return holiday.NewFileProvider(cfg.Provider.DataDir, logger), nil
	case "builtin":
		logger.Info("Using builtin holiday rules", zap.String("region", cfg.Provider.Region))
		return holiday.NewBuiltinProvider(cfg.Provider.Region, logger)
	default:
		logger.Info("Using timor.tech holiday API", zap.String("base_url", cfg.Provider.BaseURL))
		timor := holiday.NewTimorProvider(cfg.Provider.BaseURL, cfg.Provider.GetTimeout(), logger)
		if cfg.Provider.DataDir == "" {
			return timor, nil
		}
		logger.Info("File fallback enabled", zap.String("dir", cfg.Provider.DataDir))
		return holiday.NewCompositeProvider(timor, holiday.NewFileProvider(cfg.Provider.DataDir, logger), logger), nil
	}
}

func initLogger() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}

// interactiveLogger keeps log lines off the terminal while it is drawn on
func interactiveLogger(cfg *config.Config) *zap.Logger {
	if cfg.Log.File == "" {
		return zap.NewNop()
	}
	return logger
}
