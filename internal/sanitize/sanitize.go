// Package sanitize escapes untrusted text before it reaches the render
// target. Wishlist titles and links come from the other member of the pair,
// so they must not be able to smuggle terminal escape sequences into the
// screen buffer.
package sanitize

import (
	"net/url"
	"regexp"
	"strings"
)

// CSI/OSC and other ESC-introduced sequences.
var ansiPattern = regexp.MustCompile(`\x1b(\[[0-9;?]*[a-zA-Z]|\][^\x07\x1b]*(\x07|\x1b\\)|[@-Z\\-_])`)

// Text strips escape sequences and control characters from untrusted text.
// Newlines and tabs collapse to single spaces so a title always stays on
// one display line.
func Text(s string) string {
	if s == "" {
		return ""
	}
	cleaned := ansiPattern.ReplaceAllString(s, "")
	var b strings.Builder
	b.Grow(len(cleaned))
	for _, r := range cleaned {
		switch {
		case r == '\n' || r == '\t' || r == '\r':
			b.WriteRune(' ')
		case r < 0x20 || r == 0x7f:
			// drop
		default:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// URL percent-encodes a link target the way a browser address bar would:
// the URL is parsed and re-serialized, which escapes what needs escaping
// while leaving the structure alone. No further validation happens here;
// a malformed link simply fails at open time.
func URL(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return Text(trimmed)
	}
	return u.String()
}
