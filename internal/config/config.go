package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/edaforge/wildcards/wildcards"
	"github.com/go-viper/mapstructure/v2"
)

// Case matching modes.
const (
	CaseAuto = "auto"
	CaseOn   = "on"
	CaseOff  = "off"
)

var (
	ErrCaseMode      = errors.New("unknown case matching mode")
	ErrCategoryName  = errors.New("category without a name")
	ErrCategoryClash = errors.New("category name already used")
)

type Category struct {
	Name        string   `json:"name" mapstructure:"name"`
	Description string   `json:"description" mapstructure:"description"`
	Extensions  []string `json:"extensions" mapstructure:"extensions"`
}

type Config struct {
	CaseMatching string     `json:"case_matching" mapstructure:"case_matching"`
	Categories   []Category `json:"categories" mapstructure:"categories"`
}

// Default returns the settings written on first start.
func Default() *Config {
	return &Config{
		CaseMatching: CaseAuto,
		Categories:   []Category{},
	}
}

// GetAppConfig loads the user settings, creating them with defaults
// when they do not exist yet.
func GetAppConfig() (*Config, error) {
	path, err := appPath()
	if err != nil {
		return nil, fmt.Errorf("GetAppConfig: failed to access config path due to error %w", err)
	}

	return Load(path)
}

// Load reads the settings stored in path. A missing file is created
// with the default settings.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("Load: failed to open config due to error %w", err)
		}

		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			return nil, fmt.Errorf("Load: failed to create default path due to error %w", err)
		}

		conf := Default()
		if err := conf.Save(path); err != nil {
			return nil, fmt.Errorf("Load: failed to create default config due to error %w", err)
		}

		return conf, nil
	}

	conf, err := Decode(b)
	if err != nil {
		return nil, fmt.Errorf("Load: %s: %w", path, err)
	}

	return conf, nil
}

// Decode parses and validates raw JSON settings. Missing fields keep
// their default values.
func Decode(b []byte) (*Config, error) {
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("Decode: failed to parse config due to error %w", err)
	}

	conf := Default()
	if err := mapstructure.Decode(raw, conf); err != nil {
		return nil, fmt.Errorf("Decode: failed to decode config due to error %w", err)
	}

	for i := range conf.Categories {
		conf.Categories[i].Extensions = normalizeExtensions(conf.Categories[i].Extensions)
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}

	return conf, nil
}

// normalizeExtensions accepts "step", ".step" and "*.step" and keeps the
// bare extension. Order is preserved.
func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		ext = strings.TrimPrefix(ext, "*.")
		ext = strings.TrimLeft(ext, ".")
		out = append(out, ext)
	}

	return out
}

// Validate checks the case mode and the user categories.
func (c *Config) Validate() error {
	switch c.CaseMatching {
	case CaseAuto, CaseOn, CaseOff:
	default:
		return fmt.Errorf("Validate: %w: %q", ErrCaseMode, c.CaseMatching)
	}

	seen := make(map[string]bool, len(c.Categories))
	for _, cat := range c.Categories {
		if cat.Name == "" {
			return fmt.Errorf("Validate: %w", ErrCategoryName)
		}
		if seen[cat.Name] {
			return fmt.Errorf("Validate: %w: %q", ErrCategoryClash, cat.Name)
		}
		seen[cat.Name] = true

		if _, err := cat.Filter().Format(false); err != nil {
			return fmt.Errorf("Validate: category %q: %w", cat.Name, err)
		}
	}

	return nil
}

// CaseSensitive resolves the case matching mode. Auto follows the
// platform file dialogs.
func (c *Config) CaseSensitive() bool {
	switch c.CaseMatching {
	case CaseOn:
		return true
	case CaseOff:
		return false
	default:
		return wildcards.CaseSensitiveDialogs()
	}
}

// Lookup finds a category by name. User categories shadow the built-in ones.
func (c *Config) Lookup(name string) (wildcards.Filter, bool) {
	for _, cat := range c.Categories {
		if cat.Name == name {
			return cat.Filter(), true
		}
	}

	return wildcards.Lookup(name)
}

// All returns the built-in categories followed by the user ones. A user
// category replaces the built-in entry of the same name in place.
func (c *Config) All() []wildcards.Category {
	out := wildcards.Categories()

	index := make(map[string]int, len(out))
	for i, cat := range out {
		index[cat.Name] = i
	}

	for _, cat := range c.Categories {
		wc := wildcards.Category{Name: cat.Name, Filter: cat.Filter()}
		if i, ok := index[cat.Name]; ok {
			out[i] = wc
			continue
		}
		out = append(out, wc)
	}

	return out
}

// Save writes the settings to path.
func (c *Config) Save(path string) error {
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("Save: failed to marshal json due to error %w", err)
	}

	if err := os.WriteFile(path, b, 0644); err != nil {
		return fmt.Errorf("Save: failed save config due to error %w", err)
	}

	return nil
}

// SaveAppConfig writes the settings to the user config directory.
func (c *Config) SaveAppConfig() error {
	path, err := appPath()
	if err != nil {
		return fmt.Errorf("SaveAppConfig: failed to access config path due to error %w", err)
	}

	return c.Save(path)
}

// Filter converts the category to a dialog filter.
func (c Category) Filter() wildcards.Filter {
	exts := make([]string, len(c.Extensions))
	copy(exts, c.Extensions)

	return wildcards.Filter{Description: c.Description, Extensions: exts}
}

func appPath() (string, error) {
	oscfg, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("appPath: failed to get config file due to error %w", err)
	}

	return filepath.Join(oscfg, "wildcards", "settings.json"), nil
}
