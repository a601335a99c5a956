package batch

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/Eashwar-S/rpp-scenarios/coverage"
	"github.com/Eashwar-S/rpp-scenarios/depot"
	"github.com/Eashwar-S/rpp-scenarios/rebalance"
	"github.com/Eashwar-S/rpp-scenarios/scenario"
)

// Runner executes one preparation pass over every configured scenario file.
type Runner struct {
	cfg Config
}

// NewRunner validates cfg and builds a Runner.
func NewRunner(cfg Config) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Runner{cfg: cfg}, nil
}

// PlaceDepots recomputes depot placements for every scenario: parse the
// file, compute coverage with radius capacity/factor, greedily select
// depots, and rewrite the file's DEPOT and NUMBER OF VEHICLES lines.
// Per-file parse failures are logged and skipped; the batch continues.
func (r *Runner) PlaceDepots() error {
	return r.run(func(data []byte) ([]string, error) {
		g, meta, err := scenario.Parse(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}

		cov, err := coverage.Compute(g, meta.Capacity/r.cfg.Factor)
		if err != nil {
			return nil, err
		}
		depots := depot.Select(cov, g.Vertices())

		return scenario.RewriteDepotLines(splitLines(data), depots), nil
	}, "placed depots")
}

// RebalanceAll applies the required/non-required edge rebalancing to every
// scenario file, at the line level.
func (r *Runner) RebalanceAll() error {
	return r.run(func(data []byte) ([]string, error) {
		res, err := rebalance.Rebalance(splitLines(data))
		if err != nil {
			return nil, err
		}
		log.Debugf("batch: rebalanced to %d required / %d non-required, %d vehicles",
			res.RequiredCount, res.NonRequiredCount, res.VehicleCount)

		return res.Lines, nil
	}, "rebalanced")
}

// transform maps a scenario file's raw bytes to its rewritten lines.
type transform func(data []byte) ([]string, error)

// run recreates the output base, then walks the instance table in sorted
// family order applying fn to each scenario file.
func (r *Runner) run(fn transform, verb string) error {
	if err := RecreateDir(r.cfg.OutputBase); err != nil {
		return err
	}

	families := make([]string, 0, len(r.cfg.Instances))
	for f := range r.cfg.Instances {
		families = append(families, f)
	}
	sort.Strings(families)

	for _, family := range families {
		if err := os.MkdirAll(FamilyDir(r.cfg.OutputBase, family), 0o755); err != nil {
			return fmt.Errorf("batch: create family dir: %w", err)
		}

		for n := 1; n <= r.cfg.Instances[family]; n++ {
			in := ScenarioPath(r.cfg.InputBase, family, n)
			data, err := os.ReadFile(in)
			if os.IsNotExist(err) {
				log.Warnf("batch: missing file %s, skipping", in)
				continue
			}
			if err != nil {
				return fmt.Errorf("batch: read %s: %w", in, err)
			}

			lines, err := fn(data)
			if err != nil {
				log.Errorf("batch: %s: %v, skipping", in, err)
				continue
			}

			out := ScenarioPath(r.cfg.OutputBase, family, n)
			if err = os.WriteFile(out, joinLines(lines), 0o644); err != nil {
				return fmt.Errorf("batch: write %s: %w", out, err)
			}
			log.Infof("batch: %s %s.%d -> %s", verb, family, n, out)
		}
	}

	return nil
}

// RecreateDir removes dir and creates it empty, so stale outputs from a
// previous run can never leak into this one.
func RecreateDir(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("batch: clear output dir: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("batch: create output dir: %w", err)
	}

	return nil
}

// splitLines breaks file bytes into newline-free lines. A trailing newline
// does not produce a final empty line.
func splitLines(data []byte) []string {
	s := strings.ReplaceAll(string(data), "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}

	return strings.Split(s, "\n")
}

// joinLines is the inverse of splitLines, with a trailing newline.
func joinLines(lines []string) []byte {
	return []byte(strings.Join(lines, "\n") + "\n")
}
