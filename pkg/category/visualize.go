package category

import "strings"

// VisualizeURL returns the policy server page that renders the taxonomy for
// resourceType. vizType is "graphs" or "text".
func VisualizeURL(serverURL, resourceType, vizType string) string {
	return strings.TrimRight(serverURL, "/") + "/" + resourceType + "/visualize/" + vizType
}
