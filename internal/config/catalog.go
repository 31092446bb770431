package config

import (
	"encoding/json"
	"fmt"
	"os"
)

const (
	DefaultMaxWordForPrompt = 200
	DefaultTemperature      = 0.4
	DefaultPrompt           = "Translate the following text to {language}: {text}"
)

// ModelConfig is one entry of the "models" array in the catalog file.
type ModelConfig struct {
	Name             string   `json:"name"`
	MaxWordForPrompt int      `json:"max_word_for_prompt"`
	ThinkingEnabled  bool     `json:"thinking_enabled"`
	Temperature      *float64 `json:"temperature"`
}

// MaxWords returns the chunk-mode threshold for the model.
func (m ModelConfig) MaxWords() int {
	if m.MaxWordForPrompt <= 0 {
		return DefaultMaxWordForPrompt
	}
	return m.MaxWordForPrompt
}

func (m ModelConfig) Temp() float64 {
	if m.Temperature == nil {
		return DefaultTemperature
	}
	return *m.Temperature
}

// Catalog is the model catalog as stored on disk.
type Catalog struct {
	Models []ModelConfig `json:"models"`
	Prompt string        `json:"prompt"`
}

// LoadCatalog reads the catalog file. Callers load it per request; nothing is cached.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading model list from %s: %w", path, err)
	}
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("error reading model list from %s: %w", path, err)
	}
	return &c, nil
}

func (c *Catalog) ModelNames() []string {
	names := make([]string, 0, len(c.Models))
	for _, m := range c.Models {
		if m.Name == "" {
			continue
		}
		names = append(names, m.Name)
	}
	return names
}

func (c *Catalog) FindModel(name string) (ModelConfig, bool) {
	for _, m := range c.Models {
		if m.Name != "" && m.Name == name {
			return m, true
		}
	}
	return ModelConfig{}, false
}

func (c *Catalog) PromptTemplate() string {
	if c.Prompt == "" {
		return DefaultPrompt
	}
	return c.Prompt
}
