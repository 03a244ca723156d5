package nest

import (
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

// Matches is the outcome of one successful parse, viewed from a single level
// of the command tree. Each level of dispatch consumes one segment of the
// selected subcommand path; flag and argument values are shared across
// levels, matching kingpin's flat model.
//
// Typed option access normally goes through the value pointers bound by an
// [OptionsFunc]; [Matches.Value] and [Matches.Present] offer raw string
// lookups over what was actually supplied on the command line.
type Matches struct {
	path    []string
	context *kingpin.ParseContext
}

func newMatches(path []string, context *kingpin.ParseContext) *Matches {
	return &Matches{path: path, context: context}
}

// Subcommand returns the subcommand selected at this level, if any.
func (m *Matches) Subcommand() (string, bool) {
	if len(m.path) == 0 {
		return "", false
	}
	return m.path[0], true
}

// descend returns the view one level down, with this level's subcommand
// segment consumed.
func (m *Matches) descend() *Matches {
	return &Matches{path: m.path[1:], context: m.context}
}

// Context exposes the underlying kingpin parse context for callers that need
// to inspect the raw parse elements.
func (m *Matches) Context() *kingpin.ParseContext { return m.context }

// Value returns the raw string supplied for the named flag or argument. For
// repeated flags the last occurrence wins. The boolean reports whether the
// name appeared on the command line at all.
func (m *Matches) Value(name string) (string, bool) {
	var value string
	var found bool
	m.visit(name, func(v *string) {
		found = true
		if v != nil {
			value = *v
		}
	})
	return value, found
}

// Present reports whether the named flag or argument was supplied on the
// command line.
func (m *Matches) Present(name string) bool {
	var found bool
	m.visit(name, func(*string) { found = true })
	return found
}

func (m *Matches) visit(name string, fn func(value *string)) {
	if m.context == nil {
		return
	}
	for _, el := range m.context.Elements {
		switch clause := el.Clause.(type) {
		case *kingpin.FlagClause:
			if clause.Model().Name == name {
				fn(el.Value)
			}
		case *kingpin.ArgClause:
			if clause.Model().Name == name {
				fn(el.Value)
			}
		}
	}
}
