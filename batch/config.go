// This file declares Config, its defaults, the YAML loader, and the
// benchmark filesystem layout helpers.
package batch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for configuration.
var (
	// ErrBadFactor indicates a non-positive radius divisor.
	ErrBadFactor = errors.New("batch: factor must be positive")

	// ErrNoInstances indicates an empty instance table.
	ErrNoInstances = errors.New("batch: no instance families configured")
)

// Config selects which instance families to process and where.
type Config struct {
	// Instances maps a family name to its scenario count: files
	// <family>.<1..count>.txt are expected under the family directory.
	Instances map[string]int `yaml:"instances"`

	// InputBase and OutputBase are the roots of the family directories.
	InputBase  string `yaml:"input_base"`
	OutputBase string `yaml:"output_base"`

	// Factor divides the battery capacity to obtain the coverage radius for
	// depot placement. 2 keeps half the range as safety margin; 3 keeps two
	// thirds. There is no principled derivation — it is an external knob.
	Factor float64 `yaml:"factor"`
}

// DefaultConfig returns the canonical benchmark table and paths.
func DefaultConfig() Config {
	return Config{
		Instances: map[string]int{
			"gdb":    37,
			"bccm":   108,
			"eglese": 112,
		},
		InputBase:  "Failure_Scenarios",
		OutputBase: "Updated_Failure_Scenarios",
		Factor:     2,
	}
}

// LoadConfig reads a YAML file over the defaults: fields absent from the
// file keep their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("batch: read config: %w", err)
	}
	cfg := DefaultConfig()
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("batch: parse config %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks the table and the radius divisor.
func (c Config) Validate() error {
	if len(c.Instances) == 0 {
		return ErrNoInstances
	}
	if c.Factor <= 0 {
		return ErrBadFactor
	}

	return nil
}

// FamilyDir returns the per-family scenario directory under base.
func FamilyDir(base, family string) string {
	return filepath.Join(base, family+"_failure_scenarios")
}

// ScenarioPath returns <base>/<family>_failure_scenarios/<family>.<n>.txt.
func ScenarioPath(base, family string, n int) string {
	return filepath.Join(FamilyDir(base, family), fmt.Sprintf("%s.%d.txt", family, n))
}
