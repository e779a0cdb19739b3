package devserver

import "regexp"

var scriptTagRX = regexp.MustCompile(`(?is)<\s*script[^>]*>(.*?)<\s*/\s*script\s*>`)

// sanitizeContent strips script elements from post bodies.
func sanitizeContent(content string) string {
	return scriptTagRX.ReplaceAllString(content, "")
}
