package dto

import "github.com/lshigami/intervu/internal/model"

// CreateFeedbackRequest submits a finished transcript for evaluation.
// FeedbackID, when set, re-evaluates that record in place instead of
// recording a new attempt.
type CreateFeedbackRequest struct {
	InterviewID string                    `json:"interviewId" binding:"required"`
	UserID      string                    `json:"userId" binding:"required"`
	Transcript  []model.TranscriptMessage `json:"transcript" binding:"required,dive"`
	FeedbackID  string                    `json:"feedbackId,omitempty"`
}

// CreateInterviewRequest is sent by the interview generation step once an
// interview is fully formed.
type CreateInterviewRequest struct {
	UserID    string   `json:"userId" binding:"required"`
	Role      string   `json:"role" binding:"required"`
	Type      string   `json:"type" binding:"required"`
	Techstack []string `json:"techstack"`
	Level     string   `json:"level" binding:"required"`
	Questions []string `json:"questions" binding:"required,min=1"`
	Finalized bool     `json:"finalized"`
}
