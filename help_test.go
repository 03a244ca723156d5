package nest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelpSnapshot(t *testing.T) {
	t.Parallel()

	var ran string
	commander := newTestCommander(&ran)
	app := commander.buildApp([]string{"prog"})
	help := commander.helpAt(app, nil)

	t.Run("mirrors the command tree", func(t *testing.T) {
		require.Len(t, help.cmds, 2)
		require.Contains(t, help.cmds, "show")
		require.Contains(t, help.cmds, "what")

		show := help.cmds["show"]
		require.Len(t, show.cmds, 2)
		require.Contains(t, show.cmds, "foo")
		require.Contains(t, show.cmds, "bar")
		require.Empty(t, show.cmds["foo"].cmds)
	})

	t.Run("every node has rendered text", func(t *testing.T) {
		assert.Contains(t, help.Text(), "usage:")
		assert.Contains(t, help.Text(), "show")
		assert.Contains(t, help.cmds["show"].Text(), "foo")
		assert.Contains(t, help.cmds["show"].Text(), "bar")
		assert.Contains(t, help.cmds["show"].cmds["foo"].Text(), "--debug")
	})

	t.Run("walk resolves paths", func(t *testing.T) {
		require.Same(t, help, help.walk(nil))
		require.Same(t, help.cmds["show"].cmds["foo"], help.walk([]string{"show", "foo"}))
	})

	t.Run("walk panics when the tree is out of sync", func(t *testing.T) {
		require.Panics(t, func() { help.walk([]string{"nope"}) })
	})
}
