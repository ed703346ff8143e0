package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureParentDir_CreatesNestedDirs(t *testing.T) {
	tmp := t.TempDir()
	target := filepath.Join(tmp, "state", "nested", "admin.db")

	require.NoError(t, EnsureParentDir(target))

	fi, err := os.Stat(filepath.Dir(target))
	require.NoError(t, err)
	require.True(t, fi.IsDir())
}

func TestEnsureParentDir_ExistingDirIsFine(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, EnsureParentDir(filepath.Join(tmp, "admin.db")))
	require.NoError(t, EnsureParentDir(filepath.Join(tmp, "admin.db")))
}

func TestEnsureParentDir_SkipsBareNamesAndMemoryDSNs(t *testing.T) {
	for _, p := range []string{"", "admin.db", ":memory:", "file:x?mode=memory&cache=shared"} {
		require.NoError(t, EnsureParentDir(p), p)
	}
}

func TestEnsureParentDir_FailsWhenParentIsAFile(t *testing.T) {
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	err := EnsureParentDir(filepath.Join(blocker, "sub", "admin.db"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "mkdir")
}
