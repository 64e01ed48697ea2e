package providers

import (
	"strings"

	"github.com/femtoclaw/femtoclaw/pkg/markers"
)

// overflowSignature is what the backend prints (as ordinary successful
// output) when the conversation exceeded its context window.
const overflowSignature = "context window has overflowed"

// SanitizeOutput normalizes raw CLI output: terminal escape sequences
// are removed, per-line rendering artifacts are stripped, and attachment
// references are rewritten into [IMAGE:...] marker form.
func SanitizeOutput(raw string) string {
	return markers.Synthesize(cleanLineArtifacts(stripANSI(raw)))
}

// IsContextOverflow reports whether sanitized output indicates the
// backend hit its context window, which is a failure even though the
// process exited successfully.
func IsContextOverflow(output string) bool {
	return strings.Contains(strings.ToLower(output), overflowSignature)
}

// stripANSI removes CSI escape sequences with a two-state scanner:
// normal copying, or consuming an escape span. On ESC followed by '[',
// everything through the first ASCII alphabetic terminator byte is
// discarded; every other byte is copied unchanged. Deliberately not a
// full terminal-sequence grammar; color and cursor codes are all the
// target CLI emits.
func stripANSI(s string) string {
	var out strings.Builder
	out.Grow(len(s))

	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '[' {
			i += 2
			for i < len(s) && !isASCIIAlpha(s[i]) {
				i++
			}
			// Loop increment skips the terminator byte itself.
			continue
		}
		out.WriteByte(s[i])
	}
	return out.String()
}

func isASCIIAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// cleanLineArtifacts strips residue certain terminal rendering
// libraries leave after escape removal: a "> " line prefix and a
// trailing "mm" or "m" on each line.
func cleanLineArtifacts(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		line = strings.TrimPrefix(line, "> ")
		if strings.HasSuffix(line, "mm") {
			line = line[:len(line)-2]
		} else if strings.HasSuffix(line, "m") {
			line = line[:len(line)-1]
		}
		lines[i] = line
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
