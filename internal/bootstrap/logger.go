package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tessera-games/loreforge/internal/config"
)

// SetupLogger initializes the application logger with file and stdout output.
// It creates the log directory, cleans up old logs, sets up a MultiWriter for
// stdout and file output, parses the log level, and initializes slog.
// Returns the log file handle (caller must close) and any error encountered.
func SetupLogger(cfg *config.Config) (*os.File, error) {
	if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
		return nil, fmt.Errorf(ErrMsgFailedCreateLogsDir, err)
	}

	cleanupLogs(cfg.LogDir)

	timestamp := time.Now().Format(LogFileTimestampFormat)
	logFileName := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, timestamp))

	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgFailedOpenLogFile, err)
	}

	mw := io.MultiWriter(os.Stdout, logFile)

	var level slog.Level
	switch strings.ToUpper(cfg.LogLevel) {
	case LogLevelDebug:
		level = slog.LevelDebug
	case LogLevelWarn:
		level = slog.LevelWarn
	case LogLevelError:
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	appLogger := slog.New(slog.NewTextHandler(mw, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(appLogger)

	slog.Info(LogMsgLoggingInitialized, "level", level)
	slog.Info(LogMsgStartingLoreforge,
		"log_level", cfg.LogLevel,
		"catalog_dir", cfg.CatalogDir)

	slog.Debug(LogMsgConfigurationLoaded,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"port", cfg.Port)

	return logFile, nil
}

// cleanupLogs removes old log files, keeping only the most recent ones.
// This prevents unbounded log file accumulation.
func cleanupLogs(logDir string) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logFiles []os.DirEntry
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logFiles = append(logFiles, entry)
		}
	}

	if len(logFiles) >= LogFileRetentionLimit {
		toDelete := len(logFiles) - LogFileRetentionCount
		for i := 0; i < toDelete; i++ {
			err := os.Remove(filepath.Join(logDir, logFiles[i].Name()))
			if err != nil {
				fmt.Printf(LogMsgFailedDeleteOldLog, logFiles[i].Name(), err)
			}
		}
	}
}
