package pipeline

import (
	"strings"

	"github.com/alnah/go-md2html/internal/templates"
)

// AssemblePage joins fragments with newlines and wraps the body with the
// page prologue and epilogue. The title replaces {title} in both.
func AssemblePage(fragments []string, title string, s *templates.Store) string {
	return s.Page(escapeHTML(title), strings.Join(fragments, "\n"))
}
