package bundler

import (
	"fmt"
	"sort"
	"strings"

	"github.com/NayanVR/tuono/internal/config"
)

const (
	// RouteBuilderMarker is the template line replaced by the
	// route-registrations block.
	RouteBuilderMarker = "// ROUTE_BUILDER"

	// ModuleImportsMarker is the template line replaced by the
	// module-imports block.
	ModuleImportsMarker = "// MODULE_IMPORTS"

	// DataEndpointPrefix prefixes every route's companion data endpoint.
	DataEndpointPrefix = "/__tuono/data"
)

// Generator assembles the server entry source by splicing the generated
// route blocks into a static template. It has no side effects.
type Generator struct {
	table    RouteTable
	template string
}

// NewGenerator creates a Generator over the collected table and the
// template text to splice into.
func NewGenerator(table RouteTable, template string) *Generator {
	return &Generator{table: table, template: template}
}

// Generate returns the assembled server entry source. Entries are emitted
// sorted by relative route path, so identical inputs always produce
// identical output.
//
// Splice contract: only the first occurrence of each marker is replaced,
// and each generated block begins with a copy of its marker line so the
// output stays diffable against the template. A template without a marker
// keeps its text unchanged and that block is omitted; this is not an
// error. Further marker occurrences are left untouched.
func (g *Generator) Generate() string {
	out := spliceOnce(g.template, RouteBuilderMarker, g.routesBlock())
	out = spliceOnce(out, ModuleImportsMarker, g.modulesBlock())
	return out
}

// routesBlock renders one page registration and one data registration per
// table entry, both referencing the entry's module import.
func (g *Generator) routesBlock() string {
	var b strings.Builder
	b.WriteString(RouteBuilderMarker)
	for _, key := range g.sortedKeys() {
		route := g.table[key]
		fmt.Fprintf(&b, "\n\tapp.Page(%q, %q)", route.Pattern, route.ModuleImport)
		fmt.Fprintf(&b, "\n\tapp.Data(%q, %q)", DataEndpointPrefix+route.Pattern, route.ModuleImport)
	}
	return b.String()
}

// modulesBlock renders one module declaration per table entry, binding the
// module import to its source file. The path is relative to the generated
// file's own directory, which sits one level below the project root.
func (g *Generator) modulesBlock() string {
	var b strings.Builder
	b.WriteString(ModuleImportsMarker)
	for _, key := range g.sortedKeys() {
		route := g.table[key]
		fmt.Fprintf(&b, "\n\tapp.Module(%q, %q)", route.ModuleImport, "../"+config.RoutesFolder+key)
	}
	return b.String()
}

// sortedKeys returns the table keys ordered by relative path.
func (g *Generator) sortedKeys() []string {
	keys := make([]string, 0, len(g.table))
	for k := range g.table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// spliceOnce replaces the first occurrence of marker with block. A missing
// marker returns the template unchanged.
func spliceOnce(template, marker, block string) string {
	return strings.Replace(template, marker, block, 1)
}
