package scan

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	// Scan spawns one walker goroutine per root; none may outlive Scan.
	goleak.VerifyTestMain(m)
}

// makeTree builds root/<path> for every given relative directory path.
func makeTree(t *testing.T, root string, dirs ...string) {
	t.Helper()
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(root, d), 0o755))
	}
}

func relPaths(entries []Entry) []string {
	rels := make([]string, len(entries))
	for i, e := range entries {
		rels[i] = e.Rel
	}
	return rels
}

func TestScanBasic(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root, "alpha", "beta/inner", "gamma")
	require.NoError(t, os.WriteFile(filepath.Join(root, "file.txt"), []byte("x"), 0o644))

	entries, err := Scan(context.Background(), Options{Roots: []string{root}})
	require.NoError(t, err)

	assert.ElementsMatch(t,
		[]string{"alpha", "beta", "beta/inner", "gamma"},
		relPaths(entries))
	for _, e := range entries {
		assert.Equal(t, filepath.Base(e.Path), e.Name)
		assert.True(t, filepath.IsAbs(e.Path))
	}
}

func TestScanMaxDepth(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root, "a/b/c/d")

	entries, err := Scan(context.Background(), Options{
		Roots:    []string{root},
		MaxDepth: 2,
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "a/b"}, relPaths(entries))
}

func TestScanHiddenPruned(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root, ".git/objects", "visible/.cache", "visible/sub")

	entries, err := Scan(context.Background(), Options{Roots: []string{root}})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"visible", "visible/sub"}, relPaths(entries))

	entries, err = Scan(context.Background(), Options{
		Roots:  []string{root},
		Hidden: true,
	})
	require.NoError(t, err)
	assert.Contains(t, relPaths(entries), ".git")
	assert.Contains(t, relPaths(entries), "visible/.cache")
}

func TestScanExcludeGlobs(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root, "app/node_modules/pkg", "app/src", "vendor")

	entries, err := Scan(context.Background(), Options{
		Roots:   []string{root},
		Exclude: []string{"**/node_modules", "vendor"},
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"app", "app/src"}, relPaths(entries))
}

func TestScanRespectsGitignore(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root, "build", "src/build", "src/keep")
	require.NoError(t, os.WriteFile(
		filepath.Join(root, ".gitignore"),
		[]byte("# generated\nbuild/\n!src/build\n"), 0o644))

	entries, err := Scan(context.Background(), Options{
		Roots:            []string{root},
		RespectGitignore: true,
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"src", "src/build", "src/keep"}, relPaths(entries))
}

func TestScanMultipleRootsDeterministicOrder(t *testing.T) {
	rootA := t.TempDir()
	rootB := t.TempDir()
	makeTree(t, rootA, "one", "two")
	makeTree(t, rootB, "three")

	opts := Options{Roots: []string{rootA, rootB}}
	first, err := Scan(context.Background(), opts)
	require.NoError(t, err)
	second, err := Scan(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	// Root order is preserved in the merged result.
	assert.Equal(t, []string{"one", "two", "three"}, relPaths(first))
}

func TestScanMissingRoot(t *testing.T) {
	_, err := Scan(context.Background(), Options{
		Roots: []string{filepath.Join(t.TempDir(), "does-not-exist")},
	})
	assert.Error(t, err)
}

func TestScanCancelled(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root, "a/b")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Scan(ctx, Options{Roots: []string{root}})
	assert.ErrorIs(t, err, context.Canceled)
}
