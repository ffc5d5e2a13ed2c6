package handlers

import (
	"strings"

	"github.com/BlackZ36/Meibeichi/internal/models"
)

// validateProduct returns a user-facing message when a required product
// field is blank, or "" when the record is acceptable.
func validateProduct(p models.Product) string {
	switch {
	case strings.TrimSpace(p.Name) == "":
		return "product name is required"
	case strings.TrimSpace(p.Price) == "":
		return "product price is required"
	case strings.TrimSpace(p.Type) == "":
		return "product category is required"
	}
	return ""
}

// cleanLinks drops rows where either the label or the URL is blank.
// Half-filled rows are treated as abandoned input, not errors.
func cleanLinks(links []models.LinkRow) []models.LinkRow {
	out := make([]models.LinkRow, 0, len(links))
	for _, l := range links {
		if strings.TrimSpace(l.Label) == "" || strings.TrimSpace(l.URL) == "" {
			continue
		}
		out = append(out, l)
	}
	return out
}

// cleanLines trims chat reply lines and drops the blank ones.
func cleanLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		out = append(out, l)
	}
	return out
}
