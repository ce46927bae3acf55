// Package log configures Zap as the logging backend for the project and
// bridges it to log/slog, which is the call-site API used everywhere else.
//
// Initialize() must be called once, before the first logging statement.
package log

import (
	golog "log"
	"log/slog"
	"strings"

	"github.com/blendle/zapdriver"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
)

// LoggingEnv names a logging configuration used by a given environment.
type LoggingEnv string

const (
	LoggingEnvDev  LoggingEnv = "dev"
	LoggingEnvProd LoggingEnv = "prod"
)

func (e LoggingEnv) String() string {
	return string(e)
}

// Initialize sets up the process-wide logger for the given environment.
//
// "prod" uses the zapdriver production configuration with sampling
// disabled; anything else selects Zap's development configuration. The
// default slog logger is redirected to the Zap core, so slog.InfoContext
// and friends are the supported way to log.
func Initialize(env string) {
	var logger *zap.Logger
	var err error
	switch strings.ToLower(env) {
	case LoggingEnvProd.String():
		config := zapdriver.NewProductionConfig()
		config.Sampling = nil
		logger, err = config.Build(zapdriver.WrapCore())
	case LoggingEnvDev.String():
		fallthrough
	default:
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		golog.Panic(err)
	}
	zap.RedirectStdLog(logger)

	handler := NewContextLogHandler(zapslog.NewHandler(logger.Core(), &zapslog.HandlerOptions{
		AddSource: true,
	}))
	slog.SetDefault(slog.New(handler))
}
