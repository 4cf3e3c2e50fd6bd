package model

// TranscriptMessage is one speaker turn as produced by the voice agent.
type TranscriptMessage struct {
	Role    string `json:"role" binding:"required"`
	Content string `json:"content"`
}
