// Package pathutil normalizes user-supplied names into safe path segments.
package pathutil

import (
	"strings"
	"time"
	"unicode/utf8"
)

// maxNameLength caps sanitized names at the common filesystem limit.
const maxNameLength = 255

// reservedChars are stripped from names entirely. They are either path
// separators or reserved on at least one supported platform.
const reservedChars = `<>:"/\|?*`

// Sanitize converts raw into a string safe to use as a file or folder name.
// Spaces become underscores, reserved and control characters are removed,
// and the result is capped at 255 characters. Sanitize is idempotent and an
// empty input yields an empty output rather than an error.
func Sanitize(raw string) string {
	raw = strings.ReplaceAll(raw, " ", "_")

	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r < 0x20 || strings.ContainsRune(reservedChars, r) {
			continue
		}
		b.WriteRune(r)
	}

	name := b.String()
	if utf8.RuneCountInString(name) > maxNameLength {
		name = string([]rune(name)[:maxNameLength])
	}
	return name
}

// AppendTimestamp appends a second-resolution timestamp to name, producing
// name_YYYYMMDD_HHMMSS. Uniqueness holds for the calling instant only; the
// result is not checked against existing names.
func AppendTimestamp(name string) string {
	return name + time.Now().Format("_20060102_150405")
}

// SplitChain splits a slash-separated relative path into its folder names,
// dropping empty segments. Both separator styles are accepted so paths can
// be pasted from any platform. A bare name yields a one-element chain.
func SplitChain(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == '\\'
	})
}
