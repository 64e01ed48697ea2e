package markers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSingleImage(t *testing.T) {
	text, attachments := Parse("Check this [IMAGE:/tmp/a.png]")

	assert.Equal(t, "Check this", text)
	require.Len(t, attachments, 1)
	assert.Equal(t, KindImage, attachments[0].Kind)
	assert.Equal(t, "/tmp/a.png", attachments[0].Target)
}

func TestParseMultipleAttachmentsInOrder(t *testing.T) {
	text, attachments := Parse("Report\n[IMAGE:https://example.com/a.png]\n[DOCUMENT:/tmp/report.pdf]")

	assert.Equal(t, "Report", text)
	require.Len(t, attachments, 2)
	assert.Equal(t, KindImage, attachments[0].Kind)
	assert.Equal(t, "https://example.com/a.png", attachments[0].Target)
	assert.Equal(t, KindDocument, attachments[1].Kind)
	assert.Equal(t, "/tmp/report.pdf", attachments[1].Target)
}

func TestParsePreservesNonMarkers(t *testing.T) {
	text, attachments := Parse("Hello [world] and [not:a:marker]")

	assert.Equal(t, "Hello [world] and [not:a:marker]", text)
	assert.Empty(t, attachments)
}

func TestParseNoBracketsReturnsInputTrimmed(t *testing.T) {
	text, attachments := Parse("  plain message, no markers  ")

	assert.Equal(t, "plain message, no markers", text)
	assert.Empty(t, attachments)
}

func TestParseUnmatchedOpenBracket(t *testing.T) {
	text, attachments := Parse("dangling [IMAGE:/tmp/a.png")

	assert.Equal(t, "dangling [IMAGE:/tmp/a.png", text)
	assert.Empty(t, attachments)
}

func TestParseEmptyTargetPreserved(t *testing.T) {
	text, attachments := Parse("see [IMAGE:  ] here")

	assert.Equal(t, "see [IMAGE:  ] here", text)
	assert.Empty(t, attachments)
}

func TestParseSynonymsNormalize(t *testing.T) {
	_, attachments := Parse("[photo:/tmp/a.jpg] [file:/tmp/b.pdf]")

	require.Len(t, attachments, 2)
	assert.Equal(t, KindImage, attachments[0].Kind)
	assert.Equal(t, KindDocument, attachments[1].Kind)
}

func TestParseTrimsTargetWhitespace(t *testing.T) {
	_, attachments := Parse("[VOICE: /tmp/note.ogg ]")

	require.Len(t, attachments, 1)
	assert.Equal(t, "/tmp/note.ogg", attachments[0].Target)
}

func TestParseFirstCloseBracketWins(t *testing.T) {
	// A ']' inside a target cannot be represented; the first ']' closes.
	text, attachments := Parse("[IMAGE:/tmp/a]b.png]")

	require.Len(t, attachments, 1)
	assert.Equal(t, "/tmp/a", attachments[0].Target)
	assert.Equal(t, "b.png]", text)
}

func TestKindMarkerNameRoundTrip(t *testing.T) {
	kinds := []Kind{KindImage, KindDocument, KindVideo, KindAudio, KindVoice}
	for _, k := range kinds {
		got, ok := KindFromMarker(k.MarkerName())
		require.True(t, ok, "KindFromMarker(%s)", k.MarkerName())
		assert.Equal(t, k, got)
	}
}

func TestKindMarkerNames(t *testing.T) {
	assert.Equal(t, "IMAGE", KindImage.MarkerName())
	assert.Equal(t, "DOCUMENT", KindDocument.MarkerName())
	assert.Equal(t, "VIDEO", KindVideo.MarkerName())
	assert.Equal(t, "AUDIO", KindAudio.MarkerName())
	assert.Equal(t, "VOICE", KindVoice.MarkerName())
}

func TestIsLocalPath(t *testing.T) {
	assert.True(t, IsLocalPath("/tmp/file.png"))
	assert.True(t, IsLocalPath("~/file.png"))
	assert.True(t, IsLocalPath("./file.png"))
	assert.True(t, IsLocalPath("ftp://example.com/file.png"))
	assert.True(t, IsLocalPath("HTTP://example.com/file.png")) // prefix match is case-sensitive
	assert.False(t, IsLocalPath("http://example.com/file.png"))
	assert.False(t, IsLocalPath("https://example.com/file.png"))
}
