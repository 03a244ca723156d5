package nest

import (
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

// MultiCommand is the result of converting a [Commander] into a higher-order
// command, giving the whole group an identity as a single entry in an outer
// Commander. The outer context passes through unchanged as the inner
// Commander's parent context, so derivations compose level by level.
type MultiCommand[S, T any] struct {
	name  string
	desc  string
	inner *Commander[S, T]
}

// IntoCommand converts the Commander into a [MultiCommand] carrying the given
// name, ready to be registered on an outer Commander whose children receive
// context S.
func (c *Commander[S, T]) IntoCommand(name string) *MultiCommand[S, T] {
	return &MultiCommand[S, T]{name: name, inner: c}
}

// Description sets the description shown for the group in the outer help.
func (m *MultiCommand[S, T]) Description(desc string) *MultiCommand[S, T] {
	m.desc = desc
	return m
}

func (m *MultiCommand[S, T]) commandName() string { return m.name }

func (m *MultiCommand[S, T]) attach(parent commandGroup) *kingpin.CmdClause {
	desc := m.desc
	if desc == "" {
		desc = m.inner.meta.desc
	}
	clause := parent.Command(m.name, desc)
	m.inner.attachTo(clause)
	return clause
}

func (m *MultiCommand[S, T]) helpTree(app *kingpin.Application, path []string) *Help {
	return m.inner.helpAt(app, path)
}

func (m *MultiCommand[S, T]) dispatch(ctx S, matches *Matches, help *Help) error {
	return m.inner.dispatch(ctx, matches, help)
}

func (m *MultiCommand[S, T]) validateEntry(path []string) error {
	return m.inner.validateEntries(path)
}
