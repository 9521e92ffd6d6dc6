package errors

import "sort"

// Template defines a registered error type.
type Template struct {
	Category Category
	Message  string
}

// registry maps error codes to their templates.
var registry = map[string]Template{
	// Configuration (E100-E199)
	"E120": {Category: CategoryConfig, Message: "Invalid configuration file"},
	"E121": {Category: CategoryConfig, Message: "Invalid environment override"},
	"E122": {Category: CategoryConfig, Message: "Invalid port"},
	"E123": {Category: CategoryConfig, Message: "Invalid log level"},
	"E124": {Category: CategoryConfig, Message: "Incomplete asset bucket settings"},
	"E141": {Category: CategoryConfig, Message: "Configuration file not found"},

	// Route table (E200-E299)
	"E201": {Category: CategoryRouting, Message: "Duplicate sibling route path"},
	"E202": {Category: CategoryRouting, Message: "Route table has no root"},
	"E203": {Category: CategoryRouting, Message: "Root route path must be \"/\""},
	"E204": {Category: CategoryRouting, Message: "Nested route path is empty"},
	"E205": {Category: CategoryRouting, Message: "Nested route path is outside its parent"},
	"E206": {Category: CategoryRouting, Message: "Navigation link selects no route"},

	// Navigation (E300-E399)
	"E301": {Category: CategoryNavigation, Message: "Invalid navigation path"},
	"E302": {Category: CategoryNavigation, Message: "Malformed navigation frame"},
	"E303": {Category: CategoryNavigation, Message: "Unknown navigation frame type"},

	// Assets (E400-E499)
	"E401": {Category: CategoryAsset, Message: "Asset not found"},
	"E402": {Category: CategoryAsset, Message: "Remote asset fetch failed"},

	// CLI (E500-E599)
	"E501": {Category: CategoryCLI, Message: "Server failed"},
}

// Codes returns all registered error codes in sorted order.
func Codes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Lookup returns the template for an error code.
func Lookup(code string) (Template, bool) {
	t, ok := registry[code]
	return t, ok
}
