package nest

import (
	"errors"
	"fmt"
	"strings"

	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

// None is the parent context of a top-level [Commander]: a root has no
// enclosing dispatch to inherit data from.
type None = struct{}

// Commander is a group of subcommands sharing one set of options, one context
// derivation, and one fallback for when no subcommand matched. S is the
// parent context type handed in by the enclosing dispatch; T is the context
// type its children receive, produced by the derivation function.
//
// A Commander is run directly with [Run] or [RunWithArgs], or converted as a
// whole into a higher-order command with [Commander.IntoCommand].
type Commander[S, T any] struct {
	meta    metadata
	opts    []OptionsFunc
	derive  func(S, *Matches) T
	entries []Entry[T]
	noCmd   RunnerFunc[T]
}

type metadata struct {
	name    string
	version string
	desc    string
	author  string
}

// New creates an empty top-level Commander. Its children receive the empty
// [None] context until [Derive] establishes a real one.
func New() *Commander[None, None] {
	return NewGroup[None]()
}

// NewGroup creates an empty Commander typed against parent context S, for
// building a nested group whose children receive S unchanged. Use [Derive] to
// change the context the children receive.
func NewGroup[S any]() *Commander[S, S] {
	return &Commander[S, S]{
		derive: func(ctx S, _ *Matches) S { return ctx },
	}
}

// Derive replaces the Commander's context derivation: every dispatch through
// the returned Commander computes fn(parent context, parsed arguments) and
// hands the result to its children. Children and the fallback are typed
// against the derived context, so the returned Commander starts with none;
// options and metadata carry over.
func Derive[S, T, U any](c *Commander[S, T], fn func(S, *Matches) U) *Commander[S, U] {
	// Copied so later Options calls on either commander stay independent.
	return &Commander[S, U]{
		meta:   c.meta,
		opts:   append([]OptionsFunc(nil), c.opts...),
		derive: fn,
	}
}

// Options adds a contributor for the Commander's own options, independent of
// any subcommand's. Contributors are applied in the order they were added.
func (c *Commander[S, T]) Options(fn OptionsFunc) *Commander[S, T] {
	c.opts = append(c.opts, fn)
	return c
}

// AddCommand appends a subcommand entry. Entries are matched in registration
// order; names must be unique within the Commander.
func (c *Commander[S, T]) AddCommand(e Entry[T]) *Commander[S, T] {
	c.entries = append(c.entries, e)
	return c
}

// OnUnmatched sets the fallback invoked when parsing selected no subcommand
// at this level. Without a fallback, the Commander reports its own help text
// as an [ErrHelpDisplayed] outcome instead.
func (c *Commander[S, T]) OnUnmatched(fn RunnerFunc[T]) *Commander[S, T] {
	c.noCmd = fn
	return c
}

// Name sets the displayed program name. When unset, top-level runs infer it
// from the invoked binary's file name.
func (c *Commander[S, T]) Name(name string) *Commander[S, T] {
	c.meta.name = name
	return c
}

// Version sets the program version, enabling the --version flag. When unset,
// top-level runs fall back to the main module version recorded in build info.
func (c *Commander[S, T]) Version(version string) *Commander[S, T] {
	c.meta.version = version
	return c
}

// Description sets the program description shown at the top of help text.
func (c *Commander[S, T]) Description(desc string) *Commander[S, T] {
	c.meta.desc = desc
	return c
}

// Author sets the program author shown in help text.
func (c *Commander[S, T]) Author(author string) *Commander[S, T] {
	c.meta.author = author
	return c
}

// attachTo applies the Commander's options and subcommands to a schema node:
// the application itself for a top-level run, or the adapter's command clause
// when nested through a MultiCommand.
func (c *Commander[S, T]) attachTo(node Schema) {
	for _, fn := range c.opts {
		fn(node)
	}
	for _, e := range c.entries {
		e.attach(node)
	}
}

// helpAt captures the rendered help for the schema node at path and,
// recursively, for every subcommand below it. Called only after the full
// schema is assembled.
func (c *Commander[S, T]) helpAt(app *kingpin.Application, path []string) *Help {
	h := &Help{
		data: renderUsage(app, path),
		cmds: make(map[string]*Help, len(c.entries)),
	}
	for _, e := range c.entries {
		child := make([]string, 0, len(path)+1)
		child = append(child, path...)
		child = append(child, e.commandName())
		h.cmds[e.commandName()] = e.helpTree(app, child)
	}
	return h
}

// dispatch derives the context for this level and hands control to the first
// entry whose name the parse selected. With nothing selected it falls back to
// the OnUnmatched handler, or reports this level's help.
func (c *Commander[S, T]) dispatch(parent S, m *Matches, help *Help) error {
	ctx := c.derive(parent, m)

	if name, ok := m.Subcommand(); ok {
		for _, e := range c.entries {
			if e.commandName() != name {
				continue
			}
			sub, ok := help.cmds[name]
			if !ok {
				panic(fmt.Sprintf("nest: help tree out of sync with schema at %q", name))
			}
			return e.dispatch(ctx, m.descend(), sub)
		}
	}

	if c.noCmd != nil {
		return c.noCmd(ctx, m)
	}
	return NewError(ErrHelpDisplayed, errors.New(help.Text()))
}

// validateEntries rejects command trees the grammar cannot represent
// unambiguously before any schema is built.
func (c *Commander[S, T]) validateEntries(path []string) error {
	seen := make(map[string]bool, len(c.entries))
	for _, e := range c.entries {
		name := e.commandName()
		at := strings.Join(append(append([]string{}, path...), name), " ")
		switch {
		case name == "":
			return fmt.Errorf("subcommand at %q has no name", strings.Join(path, " "))
		case strings.ContainsAny(name, " \t"):
			return fmt.Errorf("command name %q contains whitespace", name)
		case seen[name]:
			return fmt.Errorf("duplicate command name %q", at)
		}
		seen[name] = true
		if err := e.validateEntry(append(path, name)); err != nil {
			return err
		}
	}
	return nil
}
