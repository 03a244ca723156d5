package nest

import (
	"bytes"
	"fmt"

	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

// Help is a snapshot of rendered help text for one node of the command tree,
// indexed by subcommand name. The tree is captured once per run, immediately
// after the schema is assembled, so contextual help can be produced during
// error handling without going back through the parser.
type Help struct {
	data []byte
	cmds map[string]*Help
}

// Text returns the rendered help for this node.
func (h *Help) Text() string { return string(h.data) }

// walk resolves a subcommand path to its snapshot node. The snapshot is built
// from the same tree as the schema, and paths come from the parser's own
// command selection, so a missing segment means the two went out of sync.
func (h *Help) walk(path []string) *Help {
	for _, name := range path {
		child, ok := h.cmds[name]
		if !ok {
			panic(fmt.Sprintf("nest: help tree out of sync with schema at %q", name))
		}
		h = child
	}
	return h
}

// renderUsage captures the parser's rendered help for the command named by
// path (the application itself for an empty path). kingpin renders usage only
// by writing it, so the usage writer is pointed at a buffer for the duration.
func renderUsage(app *kingpin.Application, path []string) []byte {
	defer func() {
		if r := recover(); r != nil {
			if t, ok := r.(exitRequest); ok {
				panic(fmt.Sprintf("nest: parser rejected its own command path %q (exit %d)", path, t.code))
			}
			panic(r)
		}
	}()

	var buf bytes.Buffer
	app.UsageWriter(&buf)
	app.Usage(path)
	return buf.Bytes()
}
