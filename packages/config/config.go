package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is read when no path is given
const DefaultConfigPath = "params.yaml"

// DateLayout is the format of since/until in the parameters file
const DateLayout = "2006/1/2"

// Valid issue states accepted by the GitHub API
const (
	StateOpen   = "open"
	StateClosed = "closed"
	StateAll    = "all"
)

var (
	ErrInvalidDate  = errors.New("date must be formatted as YYYY/MM/DD")
	ErrInvalidRepo  = errors.New("repo must be formatted as owner/name")
	ErrInvalidState = errors.New("state must be one of open, closed, all")
	ErrNoLabels     = errors.New("labels must list at least one label")
)

// ConfigError reports a parameters file that could not be used
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// fileConfig mirrors params.yaml before validation
type fileConfig struct {
	Repo   string   `yaml:"repo"`
	State  string   `yaml:"state"`
	Since  string   `yaml:"since"`
	Until  string   `yaml:"until"`
	Labels []string `yaml:"labels"`
	APIURL string   `yaml:"api_url"`
}

// Config represents the collection parameters for one run
type Config struct {
	Repo   string
	State  string
	Since  time.Time
	Until  time.Time
	Labels []string
	// APIURL overrides the GitHub REST endpoint, e.g. for GitHub Enterprise
	APIURL string
}

// LoadConfig loads configuration from the specified file
func LoadConfig(configPath string) (*Config, error) {
	// If no path provided, use default
	if configPath == "" {
		configPath = DefaultConfigPath
	}

	// Check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, &ConfigError{Path: configPath, Err: fmt.Errorf("config file not found: %w", err)}
	}

	// Read the config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, &ConfigError{Path: configPath, Err: fmt.Errorf("failed to read config file: %w", err)}
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, &ConfigError{Path: configPath, Err: err}
	}
	return cfg, nil
}

// Parse decodes and validates the YAML parameters document
func Parse(data []byte) (*Config, error) {
	var raw fileConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	since, err := ParseDate(raw.Since)
	if err != nil {
		return nil, fmt.Errorf("since: %w", err)
	}
	until, err := ParseDate(raw.Until)
	if err != nil {
		return nil, fmt.Errorf("until: %w", err)
	}

	if _, _, ok := splitRepo(raw.Repo); !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRepo, raw.Repo)
	}

	state := strings.ToLower(strings.TrimSpace(raw.State))
	switch state {
	case "":
		state = StateOpen
	case StateOpen, StateClosed, StateAll:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidState, raw.State)
	}

	labels := uniqueLabels(raw.Labels)
	if len(labels) == 0 {
		return nil, ErrNoLabels
	}

	return &Config{
		Repo:   strings.TrimSpace(raw.Repo),
		State:  state,
		Since:  since,
		Until:  until,
		Labels: labels,
		APIURL: strings.TrimSpace(raw.APIURL),
	}, nil
}

// ParseDate parses a YYYY/MM/DD date as midnight UTC
func ParseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(value), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return t, nil
}

// Owner returns the owner half of Repo
func (c *Config) Owner() string {
	owner, _, _ := splitRepo(c.Repo)
	return owner
}

// Name returns the repository half of Repo
func (c *Config) Name() string {
	_, name, _ := splitRepo(c.Repo)
	return name
}

// HasLabel reports whether name is part of the label vocabulary
func (c *Config) HasLabel(name string) bool {
	for _, l := range c.Labels {
		if l == name {
			return true
		}
	}
	return false
}

func splitRepo(repo string) (string, string, bool) {
	parts := strings.Split(strings.TrimSpace(repo), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

func uniqueLabels(labels []string) []string {
	seen := make(map[string]bool, len(labels))
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if l == "" || seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return out
}
