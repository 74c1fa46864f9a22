package bundler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasDynamicSegments(t *testing.T) {
	tests := []struct {
		path    string
		dynamic bool
	}{
		{"/about.go", false},
		{"/index.go", false},
		{"/posts/index.go", false},
		{"/posts/any-post.go", false},
		{"/posts/[post].go", true},
		{"/users/[id]/posts/[postId].go", true},
		// Empty bracket contents are still dynamic.
		{"/posts/[].go", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.dynamic, HasDynamicSegments(tt.path), "path %s", tt.path)
	}
}

func TestResolveRouteModuleImport(t *testing.T) {
	tests := []struct {
		path   string
		module string
	}{
		{"/index.go", "index"},
		{"/about.go", "about"},
		{"/posts/index.go", "posts_index"},
		{"/posts/[post].go", "posts_dyn_post"},
		{"/users/[id]/posts/[postId].go", "users_dyn_id_posts_dyn_postId"},
	}

	for _, tt := range tests {
		route := ResolveRoute(tt.path)
		assert.Equal(t, tt.module, route.ModuleImport, "path %s", tt.path)
	}
}

func TestResolveRoutePattern(t *testing.T) {
	tests := []struct {
		path    string
		pattern string
	}{
		{"/index.go", "/"},
		{"/about.go", "/about"},
		{"/posts/index.go", "/posts"},
		{"/posts/any-post.go", "/posts/any-post"},
		{"/posts/[post].go", "/posts/:post"},
		{"/users/[id]/posts/[postId].go", "/users/:id/posts/:postId"},
	}

	for _, tt := range tests {
		route := ResolveRoute(tt.path)
		assert.Equal(t, tt.pattern, route.Pattern, "path %s", tt.path)
	}
}

func TestStaticRouteIdentifierShape(t *testing.T) {
	// A path with no brackets keeps its segments verbatim: separators
	// become underscores, nothing else changes.
	route := ResolveRoute("/docs/getting-started.go")

	assert.Equal(t, "docs_getting-started", route.ModuleImport)
	assert.NotContains(t, route.ModuleImport, "/")
	assert.NotContains(t, route.ModuleImport, "[")
	assert.NotContains(t, route.ModuleImport, "]")
	assert.False(t, strings.Contains(route.Pattern, ":"))
}

func TestNestedIndexCollapsesOnlyTrailingSegment(t *testing.T) {
	// Only a trailing index segment is removed from the pattern.
	route := ResolveRoute("/index/about.go")

	assert.Equal(t, "/index/about", route.Pattern)
	assert.Equal(t, "index_about", route.ModuleImport)
}
