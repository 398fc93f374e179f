// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package config loads the webwin CLI configuration.
package config

import (
	"fmt"
	"os"
	"regexp"

	"code.hybscloud.com/webwin"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Platform names accepted in Config.Platform.
const (
	PlatformHeadless = "headless"
	PlatformWebview  = "webview"
)

type (
	// Config is the top-level CLI configuration.
	Config struct {
		Window   webwin.WindowConfig `yaml:"window"`
		Join     string              `yaml:"join"`     // wait, detached
		Platform string              `yaml:"platform"` // headless, webview
		Logger   LoggerConfig        `yaml:"logger"`
		Metrics  MetricsConfig       `yaml:"metrics"`
	}

	// LoggerConfig represents the logger configuration
	LoggerConfig struct {
		Level      string `yaml:"level"`       // debug, info, warn, error
		Format     string `yaml:"format"`      // json, console
		Output     string `yaml:"output"`      // stdout, stderr, file
		FilePath   string `yaml:"file_path"`   // path to log file when output is file
		MaxSize    int    `yaml:"max_size"`    // max size of log file in MB
		MaxBackups int    `yaml:"max_backups"` // max number of backup files
		MaxAge     int    `yaml:"max_age"`     // max age of backup files in days
		Compress   bool   `yaml:"compress"`    // whether to compress backup files
		Color      bool   `yaml:"color"`       // whether to use color in console output
		Stacktrace bool   `yaml:"stacktrace"`  // whether to include stacktrace in error logs
	}

	// MetricsConfig represents the Prometheus exporter configuration
	MetricsConfig struct {
		Addr      string `yaml:"addr"`      // listen address; empty disables the exporter
		Path      string `yaml:"path"`      // defaults to /metrics
		Namespace string `yaml:"namespace"` // defaults to webwin
	}
)

var envPattern = regexp.MustCompile(`\$\{(\w+)(?::([^}]*))?\}`)

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// Load reads a YAML configuration file with ${ENV:default} placeholders.
// A .env file in the working directory is loaded first, if present.
// An empty path yields Default.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	data = resolveEnv(data)
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	cfg.setDefaults()
	return &cfg, nil
}

// WindowConfig returns the window section with the join policy applied,
// defaulted and validated.
func (c *Config) WindowConfig() (webwin.WindowConfig, error) {
	policy, err := webwin.ParseJoinPolicy(c.Join)
	if err != nil {
		return webwin.WindowConfig{}, err
	}
	w := c.Window
	w.JoinPolicy = policy
	w = w.WithDefaults()
	if err := w.Validate(); err != nil {
		return webwin.WindowConfig{}, err
	}
	return w, nil
}

func (c *Config) setDefaults() {
	if c.Platform == "" {
		c.Platform = PlatformWebview
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = "webwin"
	}
}

// resolveEnv replaces environment variable placeholders in YAML content
func resolveEnv(content []byte) []byte {
	return envPattern.ReplaceAllFunc(content, func(match []byte) []byte {
		m := envPattern.FindSubmatch(match)
		if v, ok := os.LookupEnv(string(m[1])); ok {
			return []byte(v)
		}
		return m[2]
	})
}
