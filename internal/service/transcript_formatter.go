package service

import (
	"strings"

	"github.com/lshigami/intervu/internal/model"
)

// FormatTranscript renders each turn as "- role: content\n", keeping the
// order of the input. An empty transcript renders as "".
func FormatTranscript(transcript []model.TranscriptMessage) string {
	var b strings.Builder
	for _, msg := range transcript {
		b.WriteString("- ")
		b.WriteString(msg.Role)
		b.WriteString(": ")
		b.WriteString(msg.Content)
		b.WriteString("\n")
	}
	return b.String()
}
