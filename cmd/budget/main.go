package main

import (
	"context"
	"errors"
	"os"

	"budget/internal/cli"
	"budget/internal/core"
	"budget/internal/input"
	applog "budget/internal/log"
	"budget/internal/services"
)

func main() {
	cli.LoadEnvFile()

	bootLogger := applog.New(applog.DefaultConfig())
	cfg := cli.LoadAndValidateConfig(bootLogger)
	logger := cli.SetupLogger(cfg)

	ctx, stop := cli.SignalContext()
	defer stop()

	echo := cfg.ShouldEcho(cli.IsInteractive(os.Stdin))
	logger.Debug("Starting budget session",
		applog.FieldOperation, applog.OpStartup,
		applog.FieldEcho, echo)

	collector := input.NewCollector(os.Stdin, os.Stdout,
		input.WithEcho(echo),
		input.WithLogger(logger))
	session := services.NewBudgetSession(collector, os.Stdout, logger)

	b, err := session.Run(ctx)
	if err != nil {
		switch kind := errorType(err); kind {
		case applog.ErrorTypeCanceled:
			logger.Warn("Budget session interrupted",
				applog.FieldOperation, applog.OpShutdown,
				applog.FieldError, err,
				applog.FieldErrorType, kind)
		default:
			logger.Error("Budget session failed",
				applog.FieldError, err,
				applog.FieldErrorType, kind)
		}
		stop()
		os.Exit(1)
	}

	logger.Info("Budget session finished",
		applog.FieldOperation, applog.OpShutdown,
		applog.FieldOutcome, core.Classify(b).String())
}

func errorType(err error) string {
	switch {
	case errors.Is(err, context.Canceled):
		return applog.ErrorTypeCanceled
	case errors.Is(err, input.ErrEndOfInput):
		return applog.ErrorTypeInput
	case errors.Is(err, core.ErrNegativeAmount),
		errors.Is(err, core.ErrInvalidAmount),
		errors.Is(err, core.ErrAmountOverflow),
		errors.Is(err, core.ErrEmptyCategory):
		return applog.ErrorTypeValidation
	default:
		return applog.ErrorTypeInternal
	}
}
