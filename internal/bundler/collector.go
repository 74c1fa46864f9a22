package bundler

import (
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/NayanVR/tuono/internal/config"
	"github.com/NayanVR/tuono/internal/errors"
)

// RouteTable maps the relative route file path (the part below src/routes,
// with a leading slash) to its derived Route. One entry per discovered
// file; the map itself is unordered.
type RouteTable map[string]Route

// Traverser yields the absolute paths of route source files below root.
// The production implementation walks the filesystem; tests substitute
// their own.
type Traverser interface {
	Glob(root string) ([]string, error)
}

// FSTraverser walks the filesystem, matching root/**/*.go.
type FSTraverser struct {
	// Ext overrides the matched file extension (default ".go").
	Ext string
}

// Glob implements Traverser.
func (t FSTraverser) Glob(root string) ([]string, error) {
	ext := t.Ext
	if ext == "" {
		ext = config.RouteExtension
	}

	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(path, ext) {
			return nil
		}
		if strings.HasSuffix(path, "_test"+ext) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

// Collector builds the route table for one bundling run.
type Collector struct {
	basePath  string
	traverser Traverser
}

// NewCollector creates a Collector rooted at the project directory.
// A nil traverser selects the filesystem walker.
func NewCollector(basePath string, traverser Traverser) *Collector {
	if traverser == nil {
		traverser = FSTraverser{}
	}
	return &Collector{basePath: basePath, traverser: traverser}
}

// Collect discovers every route source file under <base>/src/routes and
// resolves it into a fresh table. Any traversal error or undecodable path
// aborts the whole collection; no partial table is returned.
func (c *Collector) Collect() (RouteTable, error) {
	root := filepath.Join(c.basePath, filepath.FromSlash(config.RoutesFolder))

	paths, err := c.traverser.Glob(root)
	if err != nil {
		return nil, errors.New("E101").Wrap(err)
	}

	table := make(RouteTable, len(paths))
	for _, p := range paths {
		if !utf8.ValidString(p) {
			return nil, errors.New("E102").
				WithDetail("offending path: " + strconv.Quote(p))
		}
		rel := strings.TrimPrefix(filepath.ToSlash(p), filepath.ToSlash(root))
		table[rel] = ResolveRoute(rel)
	}

	return table, nil
}
