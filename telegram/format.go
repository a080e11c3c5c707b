package telegram

import (
	"fmt"
	"strings"

	"filmgram/tmdb"
)

// Characters Telegram's MarkdownV2 renderer treats as significant, plus
// whitespace. Each occurrence gets a single backslash prefix.
const markdownReserved = "-[]{}()*+!?.,\\^$|# \t\n\r"

// EscapeMarkdown prefixes every reserved character with a backslash so free
// text from TMDB survives the MarkdownV2 renderer. Text with no reserved
// characters passes through unchanged.
func EscapeMarkdown(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if strings.ContainsRune(markdownReserved, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// InlineResult is one display-ready entry of an inline answer.
type InlineResult struct {
	ID          string
	Title       string
	Description string
	Message     string
}

// ComposeTitle renders the "<title> (<year>)" header. A title with no
// confirmed date renders as "<title> ()".
func ComposeTitle(m tmdb.Media) string {
	return fmt.Sprintf("%s (%s)", m.DisplayTitle(), m.Year())
}

// FormatInlineResult builds the display record for one search result. The
// streaming block is omitted entirely when the title has no
// subscription-streaming provider in the configured region.
func FormatInlineResult(m tmdb.Media, streaming []string) InlineResult {
	title := ComposeTitle(m)

	var body strings.Builder
	body.WriteString(EscapeMarkdown(title))
	body.WriteString("\n\n")
	if len(streaming) > 0 {
		body.WriteString("Streaming on:\n")
		for _, name := range streaming {
			body.WriteString(EscapeMarkdown(name))
			body.WriteString("\n")
		}
	}

	return InlineResult{
		ID:          fmt.Sprintf("%s-%d", m.Type, m.ID),
		Title:       title,
		Description: m.Overview,
		Message:     body.String(),
	}
}
