package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultLanguage is the fixed target language for transcription. The
// original batch was Mandarin recordings; override via config or env for
// anything else.
const DefaultLanguage = "zh"

type Config struct {
	ModelPath string // ggml model file for whisper.cpp
	Language  string // fixed target language ("auto" to detect)
	Threads   int    // decoder threads, 0 = NumCPU
	OutputDir string // default output directory; empty writes beside sources
}

type fileConfig struct {
	ModelPath string `toml:"model_path"`
	Language  string `toml:"language"`
	Threads   int    `toml:"threads"`
	OutputDir string `toml:"output_dir"`
}

func Load() (*Config, error) {
	cfg := &Config{
		ModelPath: defaultModelPath(),
		Language:  DefaultLanguage,
	}

	if configPath := FilePath(); configPath != "" {
		var fc fileConfig
		if _, err := toml.DecodeFile(configPath, &fc); err == nil {
			if fc.ModelPath != "" {
				cfg.ModelPath = expandTilde(fc.ModelPath)
			}
			if fc.Language != "" {
				cfg.Language = fc.Language
			}
			if fc.Threads > 0 {
				cfg.Threads = fc.Threads
			}
			if fc.OutputDir != "" {
				cfg.OutputDir = expandTilde(fc.OutputDir)
			}
		}
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("WHISPER_MD_MODEL_PATH"); v != "" {
		cfg.ModelPath = expandTilde(v)
	}
	if v := os.Getenv("WHISPER_MD_LANGUAGE"); v != "" {
		cfg.Language = v
	}
	if v := os.Getenv("WHISPER_MD_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = expandTilde(v)
	}
}

// FilePath returns the active config file path, or "" when none exists.
func FilePath() string {
	var configDir string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		configDir = filepath.Join(xdg, "whisper-md")
	} else if home, err := os.UserHomeDir(); err == nil {
		configDir = filepath.Join(home, ".config", "whisper-md")
	} else {
		return ""
	}

	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

func defaultModelPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".cache", "whisper", "ggml-medium.bin")
	}
	return filepath.Join(".", "ggml-medium.bin")
}

func expandTilde(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
