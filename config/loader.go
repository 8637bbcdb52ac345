package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

const fileName = "mazenet.yaml"

// Load reads the configuration, filling unset fields with defaults.
// Search order: customPath -> ~/.mazenet/mazenet.yaml -> ./configs/mazenet.yaml -> embedded default
func Load(customPath string) (Config, error) {
	cfg := Default()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		log.Debug().Msgf("loaded config from %s", customPath)
		return cfg, cfg.Validate()
	}

	for _, path := range []string{userConfigPath(), filepath.Join("configs", fileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := Default()
		if err := yaml.Unmarshal(data, &candidate); err != nil {
			log.Warn().Msgf("skipping config %s: %v", path, err)
			continue
		}
		log.Debug().Msgf("loaded config from %s", path)
		return candidate, candidate.Validate()
	}

	return parseEmbedded(defaultYAML)
}

// parseEmbedded decodes the built-in configuration over the hardcoded defaults.
func parseEmbedded(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse embedded config: %w", err)
	}
	return cfg, cfg.Validate()
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mazenet", fileName)
}
