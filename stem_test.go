package nest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileStem(t *testing.T) {
	t.Parallel()
	require.Equal(t, "stem_test", FileStem())
}
