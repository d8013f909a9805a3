package files

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/pagecraft/pagecraft-cli/pkg/models"
)

const settingsFile = "settings.yaml"

// ReadSettings loads the project settings, falling back to the defaults when
// no settings file exists yet.
func ReadSettings() (*models.Settings, error) {
	content, err := os.ReadFile(settingsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return models.DefaultSettings(), nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	settings := models.DefaultSettings()
	if err := yaml.Unmarshal(content, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML: %w", err)
	}
	settings.Normalize()
	return settings, nil
}

// WriteSettings persists the project settings.
func WriteSettings(settings *models.Settings) error {
	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := os.MkdirAll(PagecraftDir, 0755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}
	if err := os.WriteFile(settingsPath(), content, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

func settingsPath() string {
	return filepath.Join(PagecraftDir, settingsFile)
}
