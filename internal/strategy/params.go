package strategy

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/newthinker/opinionlab/internal/core"
)

// Params holds named numeric strategy parameters
type Params map[string]float64

// Get returns the named parameter or def when it is absent. A name is
// looked up as given, then lowercased to match normalized params.
func (p Params) Get(name string, def float64) float64 {
	v, ok := p[name]
	if !ok {
		v, ok = p[strings.ToLower(name)]
	}
	if ok && !math.IsNaN(v) {
		return v
	}
	return def
}

// Normalize returns a copy keyed by lowercased names. Names that differ only
// by case resolve to the value of the last one in sorted order.
func (p Params) Normalize() Params {
	out := make(Params, len(p))
	for _, k := range p.Keys() {
		out[strings.ToLower(k)] = p[k]
	}
	return out
}

// Merge returns p overridden by the normalized entries of other
func (p Params) Merge(other Params) Params {
	out := p.Normalize()
	for k, v := range other.Normalize() {
		out[k] = v
	}
	return out
}

// Keys returns the parameter names in sorted order
func (p Params) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// InvalidParam builds the error returned by Init for a rejected parameter
func InvalidParam(name string, value float64, want string) error {
	return core.WrapError(core.ErrInvalidParam,
		fmt.Errorf("%s = %v, want %s", name, value, want))
}
