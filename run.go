package nest

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

// exitRequest unwinds out of kingpin when it asks the process to terminate,
// carrying the exit code it wanted.
type exitRequest struct{ code int }

// Run builds the schema, parses the process arguments, and dispatches to the
// selected subcommand. See [RunWithArgs] for the outcome contract.
func Run[T any](c *Commander[None, T]) error {
	return RunWithArgs(c, os.Args)
}

// RunWithArgs is [Run] with an explicit argument list, where args[0] is the
// program name (used to infer the displayed name when none was set).
//
// A nil return means a runner or fallback completed successfully. Errors from
// runners and fallbacks are returned unchanged. Everything else is a nest
// [Error]: [ErrHelpRequested] and [ErrVersionRequested] when the user asked
// for them, and [ErrHelpDisplayed] when the input was invalid or selected no
// subcommand, with the full contextual help already in the message.
//
// The schema and help snapshot are rebuilt on every call, so repeated runs on
// an unmodified Commander are independent.
func RunWithArgs[T any](c *Commander[None, T], args []string) error {
	if err := c.validateEntries(nil); err != nil {
		return fmt.Errorf("failed to build schema: %w", err)
	}

	app := c.buildApp(args)
	help := c.helpAt(app, nil)

	var argv []string
	if len(args) > 0 {
		argv = args[1:]
	}

	capture := new(bytes.Buffer)
	app.UsageWriter(capture)
	app.ErrorWriter(capture)

	// Structural view of the same parse, retained even when parsing fails;
	// it carries the deepest subcommand the input resolved to.
	pctx, pctxErr := app.ParseContext(argv)

	command, exit, parseErr := parseArgs(app, argv)
	switch {
	case exit != nil:
		if pctx == nil {
			panic(fmt.Sprintf("nest: parser terminated (exit %d) without a parse context (%v)", exit.code, pctxErr))
		}
		if flagged(pctx, app.HelpFlag) || (app.HelpCommand != nil && pctx.SelectedCommand == app.HelpCommand) {
			return NewError(ErrHelpRequested, errors.New(capture.String()))
		}
		if app.VersionFlag != nil && flagged(pctx, app.VersionFlag) {
			return NewError(ErrVersionRequested, errors.New(capture.String()))
		}
		if exit.code != 0 {
			panic(fmt.Sprintf("nest: parser requested exit %d: %s", exit.code, capture.String()))
		}
		// kingpin prints usage and terminates on its own when subcommands
		// exist but the input selected none. Route that through the normal
		// fallback path instead.
		command = ""
	case parseErr != nil:
		if pctx == nil {
			panic(fmt.Sprintf("nest: parser reported %q without a parse context (%v)", parseErr, pctxErr))
		}
		path := selectedPath(app, pctx)
		node := help.walk(path)
		// Input that consumes cleanly but stops at a command with children
		// is not a user error at this layer. Route it through the normal
		// dispatch chain so the registry at that level applies its fallback
		// or reports its own help, same as the root no-command case above.
		if len(path) > 0 && len(node.cmds) > 0 && pctxErr == nil &&
			strings.HasPrefix(parseErr.Error(), "must select a subcommand") {
			command = strings.Join(path, " ")
			break
		}
		return NewError(ErrHelpDisplayed, fmt.Errorf("error: %v\n\n%s", parseErr, node.Text()))
	}

	return c.dispatch(None{}, newMatches(strings.Fields(command), pctx), help)
}

// buildApp assembles the full kingpin schema for one run: program metadata,
// the Commander's own options, then every subcommand recursively.
func (c *Commander[S, T]) buildApp(args []string) *kingpin.Application {
	meta := c.meta
	if meta.name == "" && len(args) > 0 {
		meta.name = filepath.Base(args[0])
	}
	if meta.version == "" {
		if info, ok := debug.ReadBuildInfo(); ok {
			meta.version = info.Main.Version
		}
	}

	app := kingpin.New(meta.name, meta.desc)
	app.Terminate(func(code int) { panic(exitRequest{code: code}) })
	app.HelpFlag.Short('h')
	if meta.version != "" {
		app.Version(meta.version)
	}
	if meta.author != "" {
		app.Author(meta.author)
	}
	c.attachTo(app)
	return app
}

// parseArgs runs the real parse, converting kingpin's terminate unwind into a
// regular return value.
func parseArgs(app *kingpin.Application, argv []string) (command string, exit *exitRequest, err error) {
	defer func() {
		if r := recover(); r != nil {
			req, ok := r.(exitRequest)
			if !ok {
				panic(r)
			}
			exit = &req
		}
	}()
	command, err = app.Parse(argv)
	return command, nil, err
}

// flagged reports whether the given flag clause appeared on the command line.
func flagged(pctx *kingpin.ParseContext, flag *kingpin.FlagClause) bool {
	if flag == nil {
		return false
	}
	for _, el := range pctx.Elements {
		if el.Clause == flag {
			return true
		}
	}
	return false
}

// selectedPath returns the subcommand path the parse resolved to, empty when
// nothing (or only the built-in help command) was selected.
func selectedPath(app *kingpin.Application, pctx *kingpin.ParseContext) []string {
	if pctx.SelectedCommand == nil || pctx.SelectedCommand == app.HelpCommand {
		return nil
	}
	return strings.Fields(pctx.SelectedCommand.FullCommand())
}
