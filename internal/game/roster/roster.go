// Package roster loads the unit names each side fields.
package roster

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/skirmish/internal/game/party"
)

// Roster names the units of both sides in acting order.
//
// Precondition: each side lists exactly party.Size distinct, non-empty names after loading.
type Roster struct {
	Human    []string `yaml:"human"`
	Computer []string `yaml:"computer"`
}

// Default returns the stock roster: Falia, Erom and Ama against Criati,
// Ledde and Tyllion.
func Default() Roster {
	return Roster{
		Human:    []string{"Falia", "Erom", "Ama"},
		Computer: []string{"Criati", "Ledde", "Tyllion"},
	}
}

// Validate checks both sides.
//
// Postcondition: Returns nil if valid, or an error describing all violations.
func (r Roster) Validate() error {
	var errs []string
	if err := validateSide("human", r.Human); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateSide("computer", r.Computer); err != nil {
		errs = append(errs, err.Error())
	}
	if len(errs) > 0 {
		return fmt.Errorf("roster validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateSide(side string, names []string) error {
	if len(names) != party.Size {
		return fmt.Errorf("%s must list %d units, got %d", side, party.Size, len(names))
	}
	seen := make(map[string]bool, len(names))
	for i, n := range names {
		if strings.TrimSpace(n) == "" {
			return fmt.Errorf("%s unit %d has an empty name", side, i)
		}
		if strings.ContainsAny(n, " \t") {
			return fmt.Errorf("%s unit %q must be a single word", side, n)
		}
		if seen[n] {
			return fmt.Errorf("%s lists %q twice", side, n)
		}
		seen[n] = true
	}
	return nil
}

// HumanNames returns the human side as a fixed-size array.
//
// Precondition: r.Validate() == nil.
func (r Roster) HumanNames() [party.Size]string { return [party.Size]string(r.Human) }

// ComputerNames returns the computer side as a fixed-size array.
//
// Precondition: r.Validate() == nil.
func (r Roster) ComputerNames() [party.Size]string { return [party.Size]string(r.Computer) }

// Load reads and validates a roster YAML file. An empty path yields Default.
//
// Postcondition: Returns a valid Roster or a non-nil error.
func Load(path string) (Roster, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Roster{}, fmt.Errorf("reading %s: %w", path, err)
	}
	var r Roster
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Roster{}, fmt.Errorf("parsing roster file %s: %w", path, err)
	}
	if err := r.Validate(); err != nil {
		return Roster{}, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}
