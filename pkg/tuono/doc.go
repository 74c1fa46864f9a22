// Package tuono is the small runtime driven by the generated server entry
// point. The generated .tuono/main.go declares the route modules it was
// built from and binds URL patterns to their page and data handlers; the
// application supplies the handler implementations with App.Handle.
//
// Dynamic segments use the ":name" notation of the route compiler and are
// read back with Param. Requests are instrumented with Prometheus metrics
// and OpenTelemetry spans.
package tuono
