package bundler

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tuonoerrors "github.com/NayanVR/tuono/internal/errors"
)

// fakeTraverser replays a fixed set of discovered paths.
type fakeTraverser struct {
	paths []string
	err   error
}

func (f fakeTraverser) Glob(root string) ([]string, error) {
	return f.paths, f.err
}

func TestCollectBuildsTable(t *testing.T) {
	base := "/home/user/documents/blog"
	traverser := fakeTraverser{paths: []string{
		base + "/src/routes/about.go",
		base + "/src/routes/index.go",
		base + "/src/routes/posts/index.go",
		base + "/src/routes/posts/[post].go",
	}}

	table, err := NewCollector(base, traverser).Collect()
	require.NoError(t, err)
	require.Len(t, table, 4)

	tests := []struct {
		key    string
		module string
	}{
		{"/index.go", "index"},
		{"/about.go", "about"},
		{"/posts/index.go", "posts_index"},
		{"/posts/[post].go", "posts_dyn_post"},
	}

	for _, tt := range tests {
		route, ok := table[tt.key]
		require.True(t, ok, "missing key %s", tt.key)
		assert.Equal(t, tt.module, route.ModuleImport)
	}
}

func TestCollectTraversalErrorAborts(t *testing.T) {
	cause := stderrors.New("walk failed")
	traverser := fakeTraverser{err: cause}

	table, err := NewCollector("/base", traverser).Collect()

	assert.Nil(t, table)
	require.Error(t, err)
	var te *tuonoerrors.TuonoError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "E101", te.Code)
	assert.ErrorIs(t, err, cause)
}

func TestCollectRejectsUndecodablePath(t *testing.T) {
	traverser := fakeTraverser{paths: []string{
		"/base/src/routes/about.go",
		"/base/src/routes/bad-\xff\xfe.go",
	}}

	table, err := NewCollector("/base", traverser).Collect()

	assert.Nil(t, table, "no partial table on abort")
	var te *tuonoerrors.TuonoError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "E102", te.Code)
}

func TestFSTraverserMatchesRouteFilesOnly(t *testing.T) {
	base := t.TempDir()
	routes := filepath.Join(base, "src", "routes")
	require.NoError(t, os.MkdirAll(filepath.Join(routes, "posts"), 0755))

	files := []string{
		filepath.Join(routes, "index.go"),
		filepath.Join(routes, "about.go"),
		filepath.Join(routes, "posts", "index.go"),
		filepath.Join(routes, "posts", "[post].go"),
		// Ignored: wrong extension and test file.
		filepath.Join(routes, "notes.txt"),
		filepath.Join(routes, "about_test.go"),
	}
	for _, f := range files {
		require.NoError(t, os.WriteFile(f, []byte("package routes\n"), 0644))
	}

	table, err := NewCollector(base, nil).Collect()
	require.NoError(t, err)

	assert.Len(t, table, 4)
	assert.Contains(t, table, "/index.go")
	assert.Contains(t, table, "/about.go")
	assert.Contains(t, table, "/posts/index.go")
	assert.Contains(t, table, "/posts/[post].go")
}

func TestCollectMissingRoutesDirIsFatal(t *testing.T) {
	base := t.TempDir()

	_, err := NewCollector(base, nil).Collect()

	var te *tuonoerrors.TuonoError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "E101", te.Code)
}
