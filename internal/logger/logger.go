package logger

// The process logger is a zap logger shared by the orchestrator and the CLI.
// The printing core never logs. Problems the user has to see (for example a
// declaration file that could not be produced) are reported as Msg values
// instead, which are returned to the caller alongside the emit result.

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	Logger     *zap.SugaredLogger
	JSONOutput bool
)

func init() {
	// Safe until Initialize is called
	Logger = zap.NewNop().Sugar()
}

// Initialize installs the global logger. JSON output uses zap's production
// configuration, otherwise a console encoder writes to stderr, with colored
// levels when stderr is a terminal.
func Initialize(jsonOutput bool, verbose bool) error {
	JSONOutput = jsonOutput

	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}

	var zapLogger *zap.Logger
	var err error

	if jsonOutput {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(level)
		zapLogger, err = config.Build()
	} else {
		encoderConfig := zap.NewDevelopmentEncoderConfig()
		encoderConfig.TimeKey = ""
		encoderConfig.CallerKey = ""
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		if GetTerminalInfo(os.Stderr).UseColorEscapes {
			encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
		zapLogger = zap.New(
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(encoderConfig),
				zapcore.AddSync(os.Stderr),
				level,
			),
		)
	}

	if err != nil {
		return err
	}

	Logger = zapLogger.Sugar()
	return nil
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = Logger.Sync()
}
