package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/HKCyber20/whisper/config"
	"github.com/HKCyber20/whisper/internal/app"
	"github.com/HKCyber20/whisper/internal/cli"
	"github.com/HKCyber20/whisper/internal/engine"
	"github.com/HKCyber20/whisper/internal/output"
)

func main() {
	if err := run(); err != nil {
		formatter := output.NewFormatter(os.Stderr)
		formatter.Error(err.Error())

		var loadErr *engine.LoadError
		if errors.As(err, &loadErr) {
			formatter.Info("Check that model_path in the config points to a ggml model file")
			formatter.Info("Models can be downloaded from https://huggingface.co/ggerganov/whisper.cpp/tree/main")
			formatter.Info("For example: curl -L -o ~/.cache/whisper/ggml-medium.bin https://huggingface.co/ggerganov/whisper.cpp/resolve/main/ggml-medium.bin")
			formatter.Info("Run 'whisper-md doctor' to check your setup")
		}

		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	application, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("initializing app: %w", err)
	}

	deps := &cli.Dependencies{
		App:    application,
		Config: cfg,
	}

	return cli.NewRootCmd(deps).Execute()
}
