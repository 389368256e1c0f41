package config

import (
	"encoding/json"
	"os"
	"strconv"
)

// FileName is the per-repository config file, looked up in the working
// directory.
const FileName = "tagmap.config.json"

// Config represents the tagmap configuration.
type Config struct {
	MappingsFile      string   `json:"mappingsFile"`
	BaseBranch        string   `json:"baseBranch"`
	AddBaseline       bool     `json:"addBaseline"`
	Verbose           bool     `json:"verbose"`
	Include           []string `json:"include,omitempty"`
	Exclude           []string `json:"exclude,omitempty"`
	PlaywrightOptions []string `json:"playwrightOptions,omitempty"`
}

// fileConfig mirrors Config with pointer booleans so an absent key is
// distinguishable from an explicit false.
type fileConfig struct {
	MappingsFile      string   `json:"mappingsFile"`
	BaseBranch        string   `json:"baseBranch"`
	AddBaseline       *bool    `json:"addBaseline"`
	Verbose           *bool    `json:"verbose"`
	Include           []string `json:"include"`
	Exclude           []string `json:"exclude"`
	PlaywrightOptions []string `json:"playwrightOptions"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		MappingsFile: "test-mappings.json",
		BaseBranch:   "main",
		AddBaseline:  true,
	}
}

// Load builds the effective config by merging: defaults <- file <- env <-
// overrides. The overrides map comes from CLI flags (only set values should
// be present). Config faults are never fatal: a missing or unparseable file
// falls back to the other layers.
func Load(overrides map[string]string) Config {
	cfg := Default()
	mergeFile(&cfg, FileName)
	mergeEnv(&cfg)
	mergeOverrides(&cfg, overrides)
	return cfg
}

func mergeFile(cfg *Config, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		// Malformed config is ignored, not fatal.
		return
	}
	if fc.MappingsFile != "" {
		cfg.MappingsFile = fc.MappingsFile
	}
	if fc.BaseBranch != "" {
		cfg.BaseBranch = fc.BaseBranch
	}
	if fc.AddBaseline != nil {
		cfg.AddBaseline = *fc.AddBaseline
	}
	if fc.Verbose != nil {
		cfg.Verbose = *fc.Verbose
	}
	if len(fc.Include) > 0 {
		cfg.Include = fc.Include
	}
	if len(fc.Exclude) > 0 {
		cfg.Exclude = fc.Exclude
	}
	if len(fc.PlaywrightOptions) > 0 {
		cfg.PlaywrightOptions = fc.PlaywrightOptions
	}
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("TAGMAP_BASE_BRANCH"); v != "" {
		cfg.BaseBranch = v
	}
	if v := os.Getenv("TAGMAP_MAPPINGS_FILE"); v != "" {
		cfg.MappingsFile = v
	}
	if v := os.Getenv("TAGMAP_VERBOSE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Verbose = b
		}
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["mappingsFile"]; ok && v != "" {
		cfg.MappingsFile = v
	}
	if v, ok := overrides["baseBranch"]; ok && v != "" {
		cfg.BaseBranch = v
	}
	if v, ok := overrides["addBaseline"]; ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.AddBaseline = b
		}
	}
	if v, ok := overrides["verbose"]; ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Verbose = b
		}
	}
}
