package markers

import (
	"regexp"
	"strings"
)

// markdownImageRe matches markdown image syntax ![alt](url).
var markdownImageRe = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)

// imageExts are the extensions bare-path detection recognizes.
var imageExts = []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".bmp"}

// tokenPunct is the punctuation stripped from around a candidate token
// before extension matching.
const tokenPunct = "()<>{}\"'`,.;:!?"

// Synthesize converts attachment references in raw model output into
// marker form: markdown image spans first, then bare absolute image
// paths in the remainder. This is the last sanitization stage.
func Synthesize(text string) string {
	return WrapBareImagePaths(ConvertMarkdownImages(text))
}

// ConvertMarkdownImages rewrites markdown image spans ![alt](url) as
// [IMAGE:url] markers. A file:// prefix is stripped from the URL first.
// Absolute paths always convert; relative targets convert only when the
// alt text is non-empty, a heuristic that avoids treating arbitrary
// relative strings as attachments. Spans that fail the heuristic are
// left untouched.
func ConvertMarkdownImages(text string) string {
	return markdownImageRe.ReplaceAllStringFunc(text, func(span string) string {
		m := markdownImageRe.FindStringSubmatch(span)
		alt := strings.TrimSpace(m[1])
		url := strings.TrimSpace(m[2])
		url = strings.TrimPrefix(url, "file://")

		if strings.HasPrefix(url, "/") || alt != "" {
			return "[IMAGE:" + url + "]"
		}
		return span
	})
}

// WrapBareImagePaths wraps bare absolute image paths as [IMAGE:path]
// markers. It is a single forward pass, and already-emitted text is
// never re-scanned, so applying it twice is the same as applying it
// once. Tokens that already contain a bracket
// (existing markers, markdown leftovers) are skipped.
func WrapBareImagePaths(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		words := strings.Split(line, " ")
		changed := false
		for j, word := range words {
			if wrapped, ok := wrapImageToken(word); ok {
				words[j] = wrapped
				changed = true
			}
		}
		if changed {
			lines[i] = strings.Join(words, " ")
		}
	}
	return strings.Join(lines, "\n")
}

// wrapImageToken wraps a single token if it is an unwrapped absolute
// image path. Surrounding punctuation is preserved outside the marker;
// the marker target is the cleaned token.
func wrapImageToken(word string) (string, bool) {
	if word == "" || strings.ContainsAny(word, "[]") {
		return word, false
	}

	core := strings.TrimLeft(word, tokenPunct)
	core = strings.TrimRight(core, tokenPunct)
	if !strings.HasPrefix(core, "/") {
		return word, false
	}
	if !hasImageExt(core) {
		return word, false
	}

	prefix := word[:len(word)-len(strings.TrimLeft(word, tokenPunct))]
	suffix := word[len(prefix)+len(core):]
	return prefix + "[IMAGE:" + core + "]" + suffix, true
}

func hasImageExt(path string) bool {
	lower := strings.ToLower(path)
	for _, ext := range imageExts {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
