// Package htmlsanitize strips unsafe markup from user-supplied task text
// before it is persisted. Titles are plain text; descriptions keep basic
// formatting but lose scripts, event handlers, and javascript: URLs.
package htmlsanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strict = bluemonday.StrictPolicy()
	ugc    = bluemonday.UGCPolicy()
)

// Plain strips all markup, returning trimmed plain text. Used for titles.
func Plain(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}

// Sanitize keeps user-generated-content-safe markup and strips the rest.
// Used for descriptions.
func Sanitize(s string) string {
	return strings.TrimSpace(ugc.Sanitize(s))
}
