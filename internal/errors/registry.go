package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Config Errors (E001-E099)
	// ============================================

	"E001": {
		Category: CategoryConfig,
		Message:  "Invalid tuono.json",
		Detail:   "The tuono.json file could not be parsed. Check for JSON syntax errors.",
		DocURL:   "https://tuono.dev/docs/errors/E001",
	},
	"E002": {
		Category: CategoryConfig,
		Message:  "Cannot read tuono.json",
		Detail:   "The tuono.json file exists but could not be read.",
		DocURL:   "https://tuono.dev/docs/errors/E002",
	},

	// ============================================
	// Bundle Errors (E101-E109)
	// ============================================

	"E101": {
		Category: CategoryBundle,
		Message:  "Route traversal failed",
		Detail:   "The routes directory could not be scanned. The route table is discarded; no output was generated.",
		DocURL:   "https://tuono.dev/docs/errors/E101",
	},
	"E102": {
		Category: CategoryBundle,
		Message:  "Route path is not valid text",
		Detail:   "A discovered route file path is not valid UTF-8 and cannot be turned into a route. Rename the file and re-run the bundle.",
		DocURL:   "https://tuono.dev/docs/errors/E102",
	},

	// ============================================
	// IO Errors (E110-E119)
	// ============================================

	"E110": {
		Category: CategoryIO,
		Message:  "Cannot create output directory",
		Detail:   "The .tuono output directory could not be created. Check filesystem permissions.",
		DocURL:   "https://tuono.dev/docs/errors/E110",
	},
	"E111": {
		Category: CategoryIO,
		Message:  "Cannot write output file",
		Detail:   "An output file could not be written. Files written earlier in the run are left in place.",
		DocURL:   "https://tuono.dev/docs/errors/E111",
	},

	// ============================================
	// Dev Server Errors (E120-E129)
	// ============================================

	"E120": {
		Category: CategoryDev,
		Message:  "File watcher failed",
		Detail:   "The route file watcher could not be started.",
		DocURL:   "https://tuono.dev/docs/errors/E120",
	},
	"E121": {
		Category: CategoryDev,
		Message:  "Dev server failed",
		Detail:   "The development server stopped unexpectedly.",
		DocURL:   "https://tuono.dev/docs/errors/E121",
	},

	// ============================================
	// CLI Errors (E130-E139)
	// ============================================

	"E130": {
		Category: CategoryCLI,
		Message:  "Not a tuono project",
		Detail:   "The current directory does not contain a src/routes directory.",
		DocURL:   "https://tuono.dev/docs/errors/E130",
	},
}
