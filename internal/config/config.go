package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fractalab/fractalab/internal/grid"
)

const (
	DefaultFamily  = "mandelbrot"
	DefaultResY    = 256
	DefaultMaxIter = 1024
	DefaultWorkers = 0 // 0 = one per CPU
)

type Config struct {
	Family  string        `yaml:"family"`
	ResY    int           `yaml:"res_y"`
	MaxIter int           `yaml:"max_iter"`
	Workers int           `yaml:"workers"`
	Bounds  *grid.Bounds  `yaml:"bounds,omitempty"`
	Julia   *JuliaConfig  `yaml:"julia,omitempty"`
	Compute ComputeConfig `yaml:"compute"`
}

// JuliaConfig switches the run to the dynamical plane of the family at the
// given parameter.
type JuliaConfig struct {
	Re float64 `yaml:"re"`
	Im float64 `yaml:"im"`
}

func (j *JuliaConfig) Param() complex128 {
	return complex(j.Re, j.Im)
}

type ComputeConfig struct {
	DisableCycleDetection bool `yaml:"disable_cycle_detection"`
	DistanceEstimation    bool `yaml:"distance_estimation"`
	ChunkRows             int  `yaml:"chunk_rows"`
}

func DefaultConfig() *Config {
	return &Config{
		Family:  DefaultFamily,
		ResY:    DefaultResY,
		MaxIter: DefaultMaxIter,
		Workers: DefaultWorkers,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
