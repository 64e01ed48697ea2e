// Package markers implements the [KIND:target] attachment-marker grammar
// shared by channel adapters and providers.
//
// A marker is a bracketed span like [IMAGE:/tmp/chart.png] embedded in
// otherwise plain message text. Parse extracts markers from outgoing
// text; Synthesize converts raw model output (markdown images, bare
// image paths) into markers.
package markers

import "strings"

// Kind identifies the media type of an attachment marker.
type Kind int

const (
	KindImage Kind = iota
	KindDocument
	KindVideo
	KindAudio
	KindVoice
)

// KindFromMarker resolves a marker name to a Kind. Matching is
// case-insensitive and accepts the synonyms PHOTO (image) and FILE
// (document).
func KindFromMarker(marker string) (Kind, bool) {
	switch strings.ToUpper(strings.TrimSpace(marker)) {
	case "IMAGE", "PHOTO":
		return KindImage, true
	case "DOCUMENT", "FILE":
		return KindDocument, true
	case "VIDEO":
		return KindVideo, true
	case "AUDIO":
		return KindAudio, true
	case "VOICE":
		return KindVoice, true
	default:
		return 0, false
	}
}

// MarkerName returns the canonical uppercase name emitted for this kind,
// regardless of which synonym was parsed.
func (k Kind) MarkerName() string {
	switch k {
	case KindImage:
		return "IMAGE"
	case KindDocument:
		return "DOCUMENT"
	case KindVideo:
		return "VIDEO"
	case KindAudio:
		return "AUDIO"
	case KindVoice:
		return "VOICE"
	default:
		return "UNKNOWN"
	}
}

// Attachment is one parsed marker. Target is a local filesystem path or
// a URL; it is never resolved or validated here.
type Attachment struct {
	Kind   Kind
	Target string
}

// Parse extracts attachment markers from message text and returns the
// cleaned text plus the attachments in left-to-right source order.
//
// A span parses only when the kind is recognized and the target, after
// trimming, is non-empty. Anything else (unknown kind, missing colon,
// empty target, unmatched bracket) is copied through verbatim so that
// ordinary bracketed text is never corrupted.
//
// The first ']' after a '[' always closes the marker, so a target
// containing ']' cannot be represented. Accepted limitation.
func Parse(message string) (string, []Attachment) {
	var cleaned strings.Builder
	cleaned.Grow(len(message))
	var attachments []Attachment

	cursor := 0
	for cursor < len(message) {
		openRel := strings.IndexByte(message[cursor:], '[')
		if openRel < 0 {
			cleaned.WriteString(message[cursor:])
			break
		}

		open := cursor + openRel
		cleaned.WriteString(message[cursor:open])

		closeRel := strings.IndexByte(message[open:], ']')
		if closeRel < 0 {
			cleaned.WriteString(message[open:])
			break
		}

		close := open + closeRel
		marker := message[open+1 : close]

		if att, ok := parseMarker(marker); ok {
			attachments = append(attachments, att)
		} else {
			cleaned.WriteString(message[open : close+1])
		}

		cursor = close + 1
	}

	return strings.TrimSpace(cleaned.String()), attachments
}

func parseMarker(marker string) (Attachment, bool) {
	name, target, found := strings.Cut(marker, ":")
	if !found {
		return Attachment{}, false
	}
	kind, ok := KindFromMarker(name)
	if !ok {
		return Attachment{}, false
	}
	target = strings.TrimSpace(target)
	if target == "" {
		return Attachment{}, false
	}
	return Attachment{Kind: kind, Target: target}, true
}

// IsLocalPath reports whether target is a local file path rather than a
// remote URL. Only exact http:// and https:// prefixes count as remote;
// every other form (~/, ./, bare absolute paths, other URI schemes)
// is treated as local.
func IsLocalPath(target string) bool {
	return !strings.HasPrefix(target, "http://") && !strings.HasPrefix(target, "https://")
}
