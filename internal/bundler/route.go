package bundler

import (
	"path"
	"regexp"
	"strings"
)

// dynamicSegmentRe matches a bracket-delimited dynamic segment anywhere in
// a route path. Non-greedy, so adjacent segments match individually.
var dynamicSegmentRe = regexp.MustCompile(`\[(.*?)\]`)

// Route is the derived (module identifier, URL pattern) pair for one
// discovered route source file.
type Route struct {
	// ModuleImport is the identifier the generated code binds the route's
	// handler module to. Path separators become underscores, brackets
	// become the dyn_ prefix.
	ModuleImport string

	// Pattern is the URL pattern, starting with "/". Dynamic segments
	// render as ":name"; the root index collapses to exactly "/".
	Pattern string
}

// HasDynamicSegments reports whether a route path contains at least one
// bracket pair. Empty bracket contents still count as dynamic.
func HasDynamicSegments(routePath string) bool {
	return dynamicSegmentRe.MatchString(routePath)
}

// ResolveRoute derives a Route from a route file path relative to the
// routes directory (e.g. "/posts/[post].go"). It is total: every
// recognized route source path resolves to a Route.
func ResolveRoute(relPath string) Route {
	ext := path.Ext(relPath)
	routeName := strings.TrimSuffix(relPath, ext)

	// Collapse a trailing index segment, then drop the extension.
	pattern := strings.TrimSuffix(relPath, "/index"+ext)
	pattern = strings.TrimSuffix(pattern, ext)

	module := strings.ReplaceAll(strings.TrimPrefix(routeName, "/"), "/", "_")

	if pattern == "" {
		return Route{ModuleImport: module, Pattern: "/"}
	}

	if HasDynamicSegments(routeName) {
		return Route{
			ModuleImport: strings.NewReplacer("[", "dyn_", "]", "").Replace(module),
			Pattern:      strings.NewReplacer("[", ":", "]", "").Replace(pattern),
		}
	}

	return Route{ModuleImport: module, Pattern: pattern}
}
