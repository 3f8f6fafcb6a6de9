package main

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/driftlens/driftlens/pkg/scanner"
	"github.com/driftlens/driftlens/pkg/util"
)

const (
	configPath       = ".driftlens/config.yaml"
	defaultStorePath = ".driftlens/driftlens.db"
)

// DriftOptions holds the drift grouping section of the config file.
type DriftOptions struct {
	Strategies   []string `yaml:"strategies"`
	MinGroupSize int      `yaml:"min_group_size"`
	PathPatterns []string `yaml:"path_patterns"`
}

// ProjectConfig holds the contents of .driftlens/config.yaml.
type ProjectConfig struct {
	Version   string             `yaml:"version"`
	StorePath string             `yaml:"store_path"`
	LogLevel  string             `yaml:"log_level"`
	LogFormat string             `yaml:"log_format"`
	MCPLog    string             `yaml:"mcp_log"`
	Scan      scanner.ScanConfig `yaml:"scan"`
	Drift     DriftOptions       `yaml:"drift"`
}

// loadProjectConfig reads .driftlens/config.yaml from the current
// directory. Returns nil (no error) if the file does not exist.
func loadProjectConfig() (*ProjectConfig, error) {
	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// resolveStorePath applies the fallback chain:
//  1. Explicit --store flag value
//  2. store_path from .driftlens/config.yaml
//  3. Default: .driftlens/driftlens.db
func resolveStorePath(flagValue string, cfg *ProjectConfig) string {
	if flagValue != "" {
		return flagValue
	}
	if cfg != nil && cfg.StorePath != "" {
		return cfg.StorePath
	}
	return defaultStorePath
}

// resolveScanConfig merges the config file's scan section over the
// defaults. Include and exclude replace wholesale when set.
func resolveScanConfig(cfg *ProjectConfig) scanner.ScanConfig {
	sc := scanner.DefaultScanConfig()
	if cfg == nil {
		return sc
	}
	if len(cfg.Scan.Include) > 0 {
		sc.Include = cfg.Scan.Include
	}
	if len(cfg.Scan.Exclude) > 0 {
		sc.Exclude = cfg.Scan.Exclude
	}
	if cfg.Scan.Workers > 0 {
		sc.Workers = cfg.Scan.Workers
	}
	return sc
}

func setupLogging(cfg *ProjectConfig) {
	lc := util.DefaultLoggerConfig()
	if cfg != nil {
		if cfg.LogLevel != "" {
			lc.Level = util.LogLevel(cfg.LogLevel)
		}
		if cfg.LogFormat != "" {
			lc.Format = util.LogFormat(cfg.LogFormat)
		}
	}
	util.SetDefault(util.NewLogger(lc))
}
