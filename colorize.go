package img2text

import (
	"strconv"
	"strings"
)

const (
	ESC = "\u001b"

	// Reset clears all SGR attributes.
	Reset = ESC + "[0m"

	fgTrueColor = ESC + "[38;2;"
)

// Colorize wraps text in an ANSI 24-bit foreground color escape for
// (r, g, b) followed by a reset. The components are written verbatim; no
// range check is done.
func Colorize(r, g, b int, text string) string {
	var sb strings.Builder
	sb.Grow(glyphSize(len(text)))
	writeColorized(&sb, r, g, b, text)
	return sb.String()
}

// writeColorized appends one colorized glyph to sb.
func writeColorized(sb *strings.Builder, r, g, b int, text string) {
	sb.WriteString(fgTrueColor)
	sb.WriteString(strconv.Itoa(r))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(g))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(b))
	sb.WriteByte('m')
	sb.WriteString(text)
	sb.WriteString(Reset)
}

// glyphSize is the upper bound of one colorized glyph in bytes for
// components in [0, 255].
func glyphSize(textLen int) int {
	return len(fgTrueColor) + len("255;255;255m") + textLen + len(Reset)
}
