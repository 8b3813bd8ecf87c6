/*
PURPOSE:
  Typed option values and an ordered option set for solver invocations.
  Replaces the "whatever the caller stuffed in a map" approach with a
  tagged value type so formatting rules are exhaustive.

REQUIREMENTS:
  User-specified:
  - Options must render identically on the command line and in the
    <solver>_options environment string (modulo quoting).
  - Options file lines must come out in the order the user supplied them.

  Implementation-discovered:
  - Go maps don't iterate in insertion order, so Options keeps its own
    key slice.
  - IPOPT's options file spells booleans as yes/no.

ARCHITECTURE INTEGRATION:
  - Used by: internal/solver/command.go, internal/engine, internal/cli
  - Pure data, no I/O.

ERROR HANDLING:
  - None. Rendering is total over the four value kinds.

IMPLEMENTATION RULES:
  - strconv for numbers; 'g' format for floats (1e-06 style exponents).
  - NeedsQuoting only applies to string values containing a space.

USAGE:
  opts := solver.NewOptions()
  opts.Set("tol", solver.Float(1e-6))
  opts.Set("linear_solver", solver.String("ma27"))

SELF-HEALING INSTRUCTIONS:
  - If a new value kind is needed, add a kind constant and extend Render.

RELATED FILES:
  - internal/solver/command.go

MAINTENANCE:
  - Keep Render in sync with IPOPT's option syntax.
*/

package solver

import (
	"strconv"
	"strings"
)

type valueKind int

const (
	kindString valueKind = iota
	kindInt
	kindFloat
	kindBool
)

// Value is a tagged option value. The zero Value renders as the empty string.
type Value struct {
	kind valueKind
	str  string
	i    int64
	f    float64
	b    bool
}

// String makes a string-valued option.
func String(s string) Value { return Value{kind: kindString, str: s} }

// Int makes an integer-valued option.
func Int(i int64) Value { return Value{kind: kindInt, i: i} }

// Float makes a float-valued option.
func Float(f float64) Value { return Value{kind: kindFloat, f: f} }

// Bool makes a boolean-valued option. IPOPT spells these yes/no.
func Bool(b bool) Value { return Value{kind: kindBool, b: b} }

// Render returns the wire form of the value.
func (v Value) Render() string {
	switch v.kind {
	case kindInt:
		return strconv.FormatInt(v.i, 10)
	case kindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case kindBool:
		if v.b {
			return "yes"
		}
		return "no"
	default:
		return v.str
	}
}

// NeedsQuoting reports whether the value must be double-quoted when it is
// embedded in the space-separated <solver>_options environment string.
// Only string values can carry a space; numbers and booleans never do.
func (v Value) NeedsQuoting() bool {
	return v.kind == kindString && strings.Contains(v.str, " ")
}

// Options is an ordered set of solver options. Set preserves first-insertion
// order; setting an existing key updates the value in place.
type Options struct {
	keys []string
	vals map[string]Value
}

// NewOptions returns an empty option set.
func NewOptions() *Options {
	return &Options{vals: make(map[string]Value)}
}

// Set stores or replaces an option.
func (o *Options) Set(key string, v Value) {
	if _, ok := o.vals[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.vals[key] = v
}

// Get looks up an option.
func (o *Options) Get(key string) (Value, bool) {
	v, ok := o.vals[key]
	return v, ok
}

// Keys returns the option names in insertion order. The slice is shared;
// callers must not mutate it.
func (o *Options) Keys() []string {
	return o.keys
}

// Len returns the number of options.
func (o *Options) Len() int {
	return len(o.keys)
}
