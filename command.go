package nest

import (
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

// Schema is the part of the argument grammar an options contributor may
// extend. It is satisfied by both *kingpin.Application and *kingpin.CmdClause,
// so the same contributor shape works at the program level and on any
// subcommand.
type Schema interface {
	Flag(name, help string) *kingpin.FlagClause
	Arg(name, help string) *kingpin.ArgClause
	Command(name, help string) *kingpin.CmdClause
}

// commandGroup is the slice of the grammar that can hold named subcommands.
type commandGroup interface {
	Command(name, help string) *kingpin.CmdClause
}

// OptionsFunc declares additional flags and arguments on a schema node. It is
// invoked once per run, while the schema is being assembled, so contributors
// may (re)bind flag value pointers captured by the corresponding runner:
//
//	var debug *bool
//	cmd := nest.NewCommand[string]("foo").
//		Options(func(s nest.Schema) {
//			debug = s.Flag("debug", "print debug information verbosely").Short('d').Bool()
//		}).
//		Runner(func(env string, m *nest.Matches) error {
//			fmt.Printf("running foo, env = %s, debug = %v\n", env, *debug)
//			return nil
//		})
type OptionsFunc func(Schema)

// RunnerFunc executes a command given the derived context and the parsed
// arguments scoped to that command.
type RunnerFunc[T any] func(ctx T, m *Matches) error

// Entry is anything that can be registered on a [Commander] typed against
// context T: a leaf [Command] or a nested [MultiCommand]. The set is closed.
type Entry[T any] interface {
	commandName() string
	attach(parent commandGroup) *kingpin.CmdClause
	helpTree(app *kingpin.Application, path []string) *Help
	dispatch(ctx T, m *Matches, help *Help) error
	validateEntry(path []string) error
}

// Command is a single-purpose command to be included in a [Commander].
type Command[T any] struct {
	name   string
	desc   string
	opts   []OptionsFunc
	runner RunnerFunc[T]
}

// NewCommand creates a command with the given name and no description,
// options, or runner.
func NewCommand[T any](name string) *Command[T] {
	return &Command[T]{name: name}
}

// Description sets the command's description, shown in help text.
func (c *Command[T]) Description(desc string) *Command[T] {
	c.desc = desc
	return c
}

// Options adds a contributor that declares the command's flags and arguments.
// Contributors are applied in the order they were added.
func (c *Command[T]) Options(fn OptionsFunc) *Command[T] {
	c.opts = append(c.opts, fn)
	return c
}

// Runner sets the command's execution logic. A command without a runner
// parses its arguments and succeeds trivially.
func (c *Command[T]) Runner(fn RunnerFunc[T]) *Command[T] {
	c.runner = fn
	return c
}

func (c *Command[T]) commandName() string { return c.name }

func (c *Command[T]) attach(parent commandGroup) *kingpin.CmdClause {
	clause := parent.Command(c.name, c.desc)
	for _, fn := range c.opts {
		fn(clause)
	}
	return clause
}

func (c *Command[T]) helpTree(app *kingpin.Application, path []string) *Help {
	return &Help{data: renderUsage(app, path)}
}

func (c *Command[T]) dispatch(ctx T, m *Matches, _ *Help) error {
	if c.runner == nil {
		return nil
	}
	return c.runner(ctx, m)
}

func (c *Command[T]) validateEntry([]string) error { return nil }
