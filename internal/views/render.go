package views

import (
	"embed"
	"fmt"
	"io"
	"strings"
	"text/template"
	"time"
	"unicode/utf8"
)

//go:embed templates/*
var templateFS embed.FS

const (
	shortDateLayout = "Jan 2, 2006"
	longDateLayout  = "January 2, 2006"
)

var templates = template.Must(template.New("views").Funcs(template.FuncMap{
	"truncate":  truncate,
	"shortDate": func(t time.Time) string { return t.Format(shortDateLayout) },
	"longDate":  func(t time.Time) string { return t.Format(longDateLayout) },
	"indent":    indent,
}).ParseFS(templateFS, "templates/*.tmpl"))

func render(w io.Writer, name string, data any) error {
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}

// truncate cuts s to max runes and marks the cut with "...".
func truncate(max int, s string) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max]) + "..."
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}

func indent(prefix, s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
