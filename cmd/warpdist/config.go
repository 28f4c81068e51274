package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/warp/metric"
)

// Config holds defaults that flags may override.
type Config struct {
	Metric  string `yaml:"metric"`  // pointwise metric name, see metric.Names
	Workers int    `yaml:"workers"` // parallel pair evaluations for "matrix"
	Seed    int64  `yaml:"seed"`    // subsampling seed
	Sample  int    `yaml:"sample"`  // sequences to keep; 0 keeps all
}

func defaultConfig() Config {
	return Config{
		Metric:  metric.NameManhattan,
		Workers: runtime.NumCPU(),
	}
}

// loadConfig reads path over the defaults. An empty path or an empty file
// yields the defaults; unknown keys are rejected.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if cfg.Workers <= 0 {
		return cfg, fmt.Errorf("config %s: workers must be positive, got %d", path, cfg.Workers)
	}
	if cfg.Sample < 0 {
		return cfg, fmt.Errorf("config %s: sample must not be negative, got %d", path, cfg.Sample)
	}

	return cfg, nil
}
