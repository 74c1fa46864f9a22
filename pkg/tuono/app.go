package tuono

import (
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler serves one route module: Page renders the HTML document, Data
// serves the route's payload on the companion data endpoint.
type Handler interface {
	Page(w http.ResponseWriter, r *http.Request)
	Data(w http.ResponseWriter, r *http.Request)
}

// HandlerFuncs adapts two plain functions to a Handler. A nil function
// answers 404 for its endpoint.
type HandlerFuncs struct {
	PageFunc func(w http.ResponseWriter, r *http.Request)
	DataFunc func(w http.ResponseWriter, r *http.Request)
}

// Page implements Handler.
func (h HandlerFuncs) Page(w http.ResponseWriter, r *http.Request) {
	if h.PageFunc == nil {
		http.NotFound(w, r)
		return
	}
	h.PageFunc(w, r)
}

// Data implements Handler.
func (h HandlerFuncs) Data(w http.ResponseWriter, r *http.Request) {
	if h.DataFunc == nil {
		http.NotFound(w, r)
		return
	}
	h.DataFunc(w, r)
}

// App is the runtime driven by the generated .tuono/main.go. The
// generated code declares modules and binds URL patterns to them; the
// application registers its Handler implementations per module with
// Handle before serving.
type App struct {
	mux *chi.Mux

	mu       sync.RWMutex
	modules  map[string]string
	handlers map[string]Handler
}

// New creates an App with metrics and tracing middleware installed and a
// Prometheus endpoint mounted at /metrics.
func New() *App {
	app := &App{
		mux:      chi.NewRouter(),
		modules:  make(map[string]string),
		handlers: make(map[string]Handler),
	}
	app.mux.Use(Metrics())
	app.mux.Use(Tracing())
	app.mux.Handle("/metrics", promhttp.Handler())
	return app
}

// Module records the source file a module import was generated from.
func (a *App) Module(name, sourcePath string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.modules[name] = sourcePath
}

// ModuleSource returns the recorded source path for a module import.
func (a *App) ModuleSource(name string) (string, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	src, ok := a.modules[name]
	return src, ok
}

// Handle registers the handler implementation for a module import.
func (a *App) Handle(name string, h Handler) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.handlers[name] = h
}

// Page binds a URL pattern to the module's page handler.
func (a *App) Page(pattern, module string) {
	a.mux.Get(chiPattern(pattern), a.dispatch(module, Handler.Page))
}

// Data binds a URL pattern to the module's data handler.
func (a *App) Data(pattern, module string) {
	a.mux.Get(chiPattern(pattern), a.dispatch(module, Handler.Data))
}

// dispatch resolves the module's handler at request time, so Handle may
// run after the generated registration code.
func (a *App) dispatch(module string, serve func(Handler, http.ResponseWriter, *http.Request)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a.mu.RLock()
		h, ok := a.handlers[module]
		a.mu.RUnlock()

		if !ok {
			http.Error(w, "no handler registered for module "+module, http.StatusNotImplemented)
			return
		}
		serve(h, w, r)
	}
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.mux.ServeHTTP(w, r)
}

// Serve listens on addr and serves the app until the listener fails.
func (a *App) Serve(addr string) error {
	return http.ListenAndServe(addr, a.mux)
}

// Param returns the value of a dynamic path segment for the current
// request (the ":name" part of the route pattern).
func Param(r *http.Request, name string) string {
	return chi.URLParam(r, name)
}

// chiPattern converts ":name" dynamic segments to chi's "{name}" syntax.
func chiPattern(pattern string) string {
	if !strings.Contains(pattern, ":") {
		return pattern
	}
	segs := strings.Split(pattern, "/")
	for i, s := range segs {
		if strings.HasPrefix(s, ":") && len(s) > 1 {
			segs[i] = "{" + s[1:] + "}"
		}
	}
	return strings.Join(segs, "/")
}
