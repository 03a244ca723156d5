package nest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCommander(ran *string) *Commander[None, None] {
	foo := NewCommand[None]("foo").
		Description("Shows foo").
		Options(func(s Schema) {
			s.Flag("debug", "print debug information verbosely").Short('d').Bool()
		}).
		Runner(func(None, *Matches) error {
			*ran = "foo"
			return nil
		})

	bar := NewCommand[None]("bar").
		Description("Shows bar").
		Runner(func(None, *Matches) error {
			*ran = "bar"
			return nil
		})

	show := NewGroup[None]().
		AddCommand(foo).
		AddCommand(bar).
		IntoCommand("show").
		Description("Shows things")

	return New().
		Description("A test program").
		AddCommand(show).
		AddCommand(NewCommand[None]("what").Description("So what"))
}

func TestHelpRequested(t *testing.T) {
	t.Parallel()

	var ran string
	commander := newTestCommander(&ran)

	for _, args := range [][]string{
		{"prog", "--help"},
		{"prog", "-h"},
		{"prog", "help"},
	} {
		err := RunWithArgs(commander, args)
		require.Error(t, err, "args %v", args)
		require.True(t, HasCode(err, ErrHelpRequested), "args %v: %v", args, err)
		assert.Contains(t, err.Error(), "usage:")
		assert.Contains(t, err.Error(), "show")
		assert.Empty(t, ran)
	}
}

func TestHelpRequestedForSubcommand(t *testing.T) {
	t.Parallel()

	var ran string
	commander := newTestCommander(&ran)

	err := RunWithArgs(commander, []string{"prog", "show", "foo", "--help"})
	require.Error(t, err)
	require.True(t, HasCode(err, ErrHelpRequested))
	assert.Contains(t, err.Error(), "--debug")
	assert.Empty(t, ran)
}

func TestVersionRequested(t *testing.T) {
	t.Parallel()

	var ran string
	commander := newTestCommander(&ran).Version("1.2.3")

	err := RunWithArgs(commander, []string{"prog", "--version"})
	require.Error(t, err)
	require.True(t, HasCode(err, ErrVersionRequested))
	assert.Contains(t, err.Error(), "1.2.3")
	assert.Empty(t, ran)
}

func TestParseErrorShowsContextualHelp(t *testing.T) {
	t.Parallel()

	t.Run("unknown flag at the root", func(t *testing.T) {
		t.Parallel()
		var ran string
		err := RunWithArgs(newTestCommander(&ran), []string{"prog", "--unknown-flag-xyz"})
		require.Error(t, err)
		require.True(t, HasCode(err, ErrHelpDisplayed), "got %v", err)
		assert.Contains(t, err.Error(), "error:")
		assert.Contains(t, err.Error(), "unknown-flag-xyz")
		assert.Contains(t, err.Error(), "usage:")
		assert.Contains(t, err.Error(), "show")
	})

	t.Run("unknown flag below a subcommand shows that level", func(t *testing.T) {
		t.Parallel()
		var ran string
		err := RunWithArgs(newTestCommander(&ran), []string{"prog", "show", "--bogus"})
		require.Error(t, err)
		require.True(t, HasCode(err, ErrHelpDisplayed))
		assert.Contains(t, err.Error(), "bogus")
		assert.Contains(t, err.Error(), "foo")
		assert.Contains(t, err.Error(), "bar")
	})

	t.Run("unknown subcommand", func(t *testing.T) {
		t.Parallel()
		var ran string
		err := RunWithArgs(newTestCommander(&ran), []string{"prog", "frobnicate"})
		require.Error(t, err)
		require.True(t, HasCode(err, ErrHelpDisplayed))
		assert.Contains(t, err.Error(), "frobnicate")
		assert.Contains(t, err.Error(), "usage:")
	})
}

func TestProgramNameInference(t *testing.T) {
	t.Parallel()

	var ran string
	commander := newTestCommander(&ran)

	err := RunWithArgs(commander, []string{"/usr/local/bin/mytool", "--help"})
	require.Error(t, err)
	require.True(t, HasCode(err, ErrHelpRequested))
	assert.Contains(t, err.Error(), "mytool")

	named := newTestCommander(&ran).Name("fancy")
	err = RunWithArgs(named, []string{"/usr/local/bin/mytool", "--help"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fancy")
	assert.NotContains(t, err.Error(), "mytool")
}

func TestMatches(t *testing.T) {
	t.Parallel()

	var level *string
	var m *Matches
	commander := New().AddCommand(
		NewCommand[None]("set").
			Options(func(s Schema) {
				level = s.Flag("level", "level to set").String()
				s.Arg("key", "key to set").String()
			}).
			Runner(func(_ None, matches *Matches) error {
				m = matches
				return nil
			}),
	)

	require.NoError(t, RunWithArgs(commander, []string{"prog", "set", "--level=5", "color"}))
	require.NotNil(t, m)

	v, ok := m.Value("level")
	require.True(t, ok)
	require.Equal(t, "5", v)
	require.Equal(t, "5", *level)

	v, ok = m.Value("key")
	require.True(t, ok)
	require.Equal(t, "color", v)

	assert.True(t, m.Present("level"))
	assert.False(t, m.Present("verbose"))
	_, ok = m.Value("verbose")
	assert.False(t, ok)

	_, ok = m.Subcommand()
	assert.False(t, ok, "path should be fully consumed at the leaf")
	assert.NotNil(t, m.Context())
}
