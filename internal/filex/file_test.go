package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) func() {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	return func() { _ = os.Chdir(old) }
}

func TestEnsureDir_RelativeResolvedAgainstCWD(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	got, err := EnsureDir(".careercli")
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(tmp)
	require.NoError(t, err)
	gotResolved, err := filepath.EvalSymlinks(got)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(want, ".careercli"), gotResolved)

	fi, err := os.Stat(got)
	require.NoError(t, err)
	require.True(t, fi.IsDir())

	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0o700), fi.Mode().Perm()&0o700)
	}
}

func TestEnsureDir_Idempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	first, err := EnsureDir(dir)
	require.NoError(t, err)
	second, err := EnsureDir(dir)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestEnsureDir_FailsWhenPathIsFile(t *testing.T) {
	f := filepath.Join(t.TempDir(), "plain")
	require.NoError(t, os.WriteFile(f, []byte("x"), 0o600))

	_, err := EnsureDir(f)
	require.Error(t, err)
}

func TestReadLimited(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "img")
	require.NoError(t, os.WriteFile(p, []byte("12345"), 0o600))

	data, err := ReadLimited(p, 5)
	require.NoError(t, err)
	require.Equal(t, []byte("12345"), data)

	_, err = ReadLimited(p, 4)
	require.ErrorIs(t, err, ErrTooLarge)

	_, err = ReadLimited(filepath.Join(dir, "missing"), 10)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrTooLarge)
}

func TestSaveUnique_AddsSuffixWhenTaken(t *testing.T) {
	dir := t.TempDir()

	first, err := SaveUnique(dir, "cv.pdf", []byte("a"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "cv.pdf"), first)

	second, err := SaveUnique(dir, "cv.pdf", []byte("b"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "cv (1).pdf"), second)

	got, err := os.ReadFile(first)
	require.NoError(t, err)
	require.Equal(t, []byte("a"), got)
}

func TestSaveUnique_StripsDirectories(t *testing.T) {
	dir := t.TempDir()

	p, err := SaveUnique(dir, "../../etc/passwd", []byte("x"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "passwd"), p)

	p, err = SaveUnique(dir, "", []byte("x"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "download"), p)
}
