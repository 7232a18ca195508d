package app

import (
	"github.com/HKCyber20/whisper/config"
	"github.com/HKCyber20/whisper/internal/domain/transcript"
	"github.com/HKCyber20/whisper/internal/domain/transcript/usecases"
	"github.com/HKCyber20/whisper/internal/engine"
)

type App struct {
	Resolve *usecases.ResolveInputs
	Render  *usecases.RenderMarkdown

	cfg *config.Config
}

func New(cfg *config.Config) (*App, error) {
	resolve := &usecases.ResolveInputs{
		Extensions: transcript.AudioExtensions,
	}

	render := &usecases.RenderMarkdown{
		OutputDir: cfg.OutputDir,
	}

	return &App{
		Resolve: resolve,
		Render:  render,
		cfg:     cfg,
	}, nil
}

// OpenEngine loads the whisper model. Deferred until the batch actually runs
// so that commands like doctor work without a model present. The caller must
// Close the returned engine.
func (a *App) OpenEngine() (engine.Engine, error) {
	return engine.NewWhisper(a.cfg.ModelPath, engine.Options{
		Language: a.cfg.Language,
		Threads:  a.cfg.Threads,
	})
}
