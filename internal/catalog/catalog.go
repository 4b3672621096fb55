// Package catalog registers the entity fixture sets by name so tools can
// look them up and export them.
package catalog

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/nimdaved/toolrent/internal/common"
	"github.com/nimdaved/toolrent/internal/entities/authority"
	"github.com/nimdaved/toolrent/internal/entities/user"
)

// Set is the named samples of one entity. New is nil when the entity has
// no creation form.
type Set struct {
	Entity   string
	Required any
	Partial  any
	Full     any
	New      any
}

// MarshalJSON encodes the samples under their export names.
func (s Set) MarshalJSON() ([]byte, error) {
	out := struct {
		Required any `json:"sampleWithRequiredData"`
		Partial  any `json:"sampleWithPartialData"`
		Full     any `json:"sampleWithFullData"`
		New      any `json:"sampleWithNewData,omitempty"`
	}{s.Required, s.Partial, s.Full, s.New}
	return json.Marshal(out)
}

var builders = map[string]func() Set{
	"authority": func() Set {
		return Set{
			Entity:   "authority",
			Required: authority.SampleWithRequiredData(),
			Partial:  authority.SampleWithPartialData(),
			Full:     authority.SampleWithFullData(),
			New:      authority.SampleWithNewData(),
		}
	},
	"user": func() Set {
		return Set{
			Entity:   "user",
			Required: user.SampleWithRequiredData(),
			Partial:  user.SampleWithPartialData(),
			Full:     user.SampleWithFullData(),
		}
	},
}

// Lookup returns the fixture set registered under name.
func Lookup(name string) (Set, error) {
	b, ok := builders[name]
	if !ok {
		return Set{}, fmt.Errorf("lookup %q: %w", name, common.ErrUnknownEntity)
	}
	return b(), nil
}

// Names lists the registered entities in sorted order.
func Names() []string {
	names := make([]string, 0, len(builders))
	for n := range builders {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}
