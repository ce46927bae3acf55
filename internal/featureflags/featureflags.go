// Package featureflags holds a registry of toggles for optional triage
// behaviour, overridable from the command line.
package featureflags

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUndefinedFlag = errors.New("undefined feature flag")

var flagRegistry = make(map[string]*FeatureFlag)

// FeatureFlag stores the state for a single flag.
type FeatureFlag struct {
	isEnabled bool
}

// new registers the flag and sets its default enabled state.
func new(name string, defaultEnabled bool) *FeatureFlag {
	ff := &FeatureFlag{isEnabled: defaultEnabled}
	flagRegistry[name] = ff
	return ff
}

// Enabled returns whether the feature is currently enabled.
func (ff *FeatureFlag) Enabled() bool {
	return ff.isEnabled
}

// Update changes flag states from a comma-separated list of flag names.
// A listed name enables its flag; a name preceded by "-" disables it,
// e.g. "HeaderEntropy,-SizeBenfordCheck". An unknown name yields an error
// wrapping ErrUndefinedFlag.
func Update(flags string) error {
	if flags == "" {
		return nil
	}
	for _, name := range strings.Split(flags, ",") {
		isEnabled := true
		if name[0] == '-' {
			isEnabled = false
			name = name[1:]
		}
		ff, ok := flagRegistry[name]
		if !ok {
			return fmt.Errorf("%w %q", ErrUndefinedFlag, name)
		}
		ff.isEnabled = isEnabled
	}
	return nil
}

// State reports which flags are enabled and disabled.
func State() map[string]bool {
	s := make(map[string]bool, len(flagRegistry))
	for name, ff := range flagRegistry {
		s[name] = ff.Enabled()
	}
	return s
}
