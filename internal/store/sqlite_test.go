//go:build !bolt

package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSQLiteStore(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "hubctl.db"))
	require.NoError(t, err)

	t.Cleanup(func() { _ = s.Close() })

	exerciseStore(t, s)
}
