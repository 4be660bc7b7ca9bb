package bench

import (
	"encoding/json"
	"os"
	"runtime"

	"github.com/pkg/errors"
)

// Config selects what to benchmark and how hard.
type Config struct {
	Algorithms []string `json:"algorithms"`
	Iterations int      `json:"iterations"`
	Size       int      `json:"size"`
	Workers    int      `json:"workers"`
}

// DefaultConfig benchmarks this module's SM3 and SM4 next to the gmsm reference.
func DefaultConfig() Config {
	return Config{
		Algorithms: []string{"sm3", "sm3-lanes", "sm3-gmsm", "sm4", "sm4-gmsm"},
		Iterations: 10000,
		Size:       1024,
		Workers:    runtime.NumCPU(),
	}
}

// ParseJSONConfig overlays the JSON file at path onto cfg.
func ParseJSONConfig(cfg *Config, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open config")
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(cfg); err != nil {
		return errors.Wrapf(err, "decode %s", path)
	}
	return nil
}

// Validate reports the first unusable setting.
func (c Config) Validate() error {
	if len(c.Algorithms) == 0 {
		return errors.New("no algorithms selected")
	}
	if c.Iterations <= 0 {
		return errors.Errorf("iterations must be positive: %d", c.Iterations)
	}
	if c.Size < 0 {
		return errors.Errorf("size must not be negative: %d", c.Size)
	}
	if c.Workers <= 0 {
		return errors.Errorf("workers must be positive: %d", c.Workers)
	}
	return nil
}
