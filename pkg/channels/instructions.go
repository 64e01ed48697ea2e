// Package channels holds what the core needs to know about messaging
// channels: the static delivery-instruction text handed to the model so
// it produces output the channel adapters can deliver. The adapters
// themselves live outside this module; they consume the cleaned text
// and attachment list produced by pkg/markers.
package channels

// defaultInstructions documents the attachment-marker dialect and the
// house style for chat responses. The core never parses this text; it
// is configuration handed verbatim to the model.
const defaultInstructions = `You are replying inside a chat application.

Response style:
- Be concise and direct. Skip filler phrases and preambles.
- Use tool results silently: incorporate what they returned, do not narrate that you ran them.

To send media, place a marker on its own line:
- [IMAGE:<path-or-url>] for pictures
- [DOCUMENT:<path-or-url>] for files
- [VIDEO:<path-or-url>] for video clips
- [AUDIO:<path-or-url>] for audio files
- [VOICE:<path-or-url>] for voice notes

Use a local file path or an http(s) URL as the target. The marker is
removed from the visible text and the media is delivered natively.`

// telegramInstructions layers Telegram-specific formatting guidance on
// top of the shared block.
const telegramInstructions = defaultInstructions + `

Telegram formatting:
- Markdown is supported: **bold**, _italic_ and inline code render natively in Telegram.
- Keep individual messages under the Telegram length limit; long answers are split for you.`

// instructionChannels are the channel identifiers that receive the
// shared default block. Channels absent from this set (cli, dummy, test
// harnesses) get no instructions at all.
var instructionChannels = map[string]bool{
	"discord":    true,
	"slack":      true,
	"mattermost": true,
	"matrix":     true,
	"dingtalk":   true,
	"lark":       true,
	"feishu":     true,
	"signal":     true,
	"whatsapp":   true,
	"qq":         true,
}

// DeliveryInstructions returns the instruction block for a channel
// identifier, or ok=false when the channel needs none.
func DeliveryInstructions(channel string) (string, bool) {
	switch {
	case channel == "telegram":
		return telegramInstructions, true
	case instructionChannels[channel]:
		return defaultInstructions, true
	default:
		return "", false
	}
}
