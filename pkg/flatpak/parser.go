// pkg/flatpak/parser.go
package flatpak

import "strings"

// parseColumn splits single-column flatpak output (--columns=...) into a
// trimmed, empty-line-free list
func parseColumn(out string) []string {
	var items []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			items = append(items, line)
		}
	}
	return items
}

// containsFold reports whether list has item, ignoring case. Remote names
// are case-insensitive in flatpak.
func containsFold(list []string, item string) bool {
	for _, s := range list {
		if strings.EqualFold(s, item) {
			return true
		}
	}
	return false
}
