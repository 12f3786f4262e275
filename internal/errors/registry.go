package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Config Errors (W100-W199)
	// ============================================

	"W101": {
		Category:   CategoryConfig,
		Message:    "Config file not found",
		Detail:     "The configuration file passed with --config does not exist.",
		Suggestion: "Run `weblib config init` to create one.",
	},
	"W102": {
		Category: CategoryConfig,
		Message:  "Invalid config file",
		Detail:   "The configuration file could not be parsed as YAML.",
	},
	"W103": {
		Category: CategoryConfig,
		Message:  "Invalid config value",
		Detail:   "A configuration value is outside its allowed range.",
	},
	"W104": {
		Category: CategoryConfig,
		Message:  "Cannot write config file",
		Detail:   "The starter configuration file could not be written.",
	},
	"W105": {
		Category:   CategoryConfig,
		Message:    "Config file already exists",
		Suggestion: "Pass --force to overwrite it.",
	},

	// ============================================
	// Server Errors (W200-W299)
	// ============================================

	"W201": {
		Category:   CategoryServer,
		Message:    "Server failed to start",
		Detail:     "The HTTP listener could not be opened.",
		Suggestion: "Check that the address is free or choose another with --addr.",
	},
	"W202": {
		Category: CategoryServer,
		Message:  "Invalid server configuration",
	},
	"W203": {
		Category: CategoryServer,
		Message:  "Server stopped unexpectedly",
	},

	// ============================================
	// Export Errors (W300-W399)
	// ============================================

	"W301": {
		Category: CategoryExport,
		Message:  "Page failed to render",
		Detail:   "Every page must render with status 200 before anything is published.",
	},
	"W302": {
		Category: CategoryExport,
		Message:  "Publish failed",
		Detail:   "A rendered page could not be written to the export target.",
	},
	"W303": {
		Category:   CategoryExport,
		Message:    "No export target",
		Suggestion: "Pass --out DIR or --s3-bucket NAME.",
	},
	"W304": {
		Category:   CategoryExport,
		Message:    "Missing AWS credentials",
		Suggestion: "Set AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY.",
	},

	// ============================================
	// Render Errors (W400-W499)
	// ============================================

	"W401": {
		Category:   CategoryRender,
		Message:    "Page not found",
		Suggestion: "Paths look like /, /category/1, /product/3 or /cart.",
	},
	"W402": {
		Category: CategoryRender,
		Message:  "Render failed",
	},
	"W403": {
		Category:   CategoryRender,
		Message:    "Unknown CSS framework",
		Suggestion: "Use bootstrap, bulma or tailwind.",
	},
	"W404": {
		Category:   CategoryRender,
		Message:    "Unknown component",
		Suggestion: "Run `weblib components` to list the registered names.",
	},
}

// GetAllCodes returns all registered error codes in order.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
