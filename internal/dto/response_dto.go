package dto

import "time"

type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// CreateFeedbackResult reports the outcome of an evaluation. Failures are
// reported through Success=false rather than as an HTTP error.
type CreateFeedbackResult struct {
	Success    bool   `json:"success"`
	FeedbackID string `json:"feedbackId,omitempty"`
	Error      string `json:"error,omitempty"`
}

type CategoryScoreDTO struct {
	Name    string  `json:"name"`
	Score   float64 `json:"score"`
	Comment string  `json:"comment"`
}

type FeedbackResponseDTO struct {
	ID                  string             `json:"id"`
	InterviewID         string             `json:"interviewId"`
	UserID              string             `json:"userId"`
	AttemptTimestamp    time.Time          `json:"attemptTimestamp"`
	TotalScore          int                `json:"totalScore"`
	CategoryScores      []CategoryScoreDTO `json:"categoryScores"`
	Strengths           []string           `json:"strengths"`
	AreasForImprovement []string           `json:"areasForImprovement"`
	FinalAssessment     string             `json:"finalAssessment"`
	CreatedAt           time.Time          `json:"createdAt"`
}

type InterviewResponseDTO struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Role      string    `json:"role"`
	Type      string    `json:"type"`
	Techstack []string  `json:"techstack"`
	Level     string    `json:"level"`
	Questions []string  `json:"questions"`
	Finalized bool      `json:"finalized"`
	CreatedAt time.Time `json:"createdAt"`
}

// InterviewHistoryDTO summarises a user's attempts at one interview.
type InterviewHistoryDTO struct {
	Interview       InterviewResponseDTO `json:"interview"`
	AttemptCount    int                  `json:"attemptCount"`
	LatestScore     int                  `json:"latestScore"`
	LatestAttemptAt time.Time            `json:"latestAttemptAt"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Detail   string `json:"detail,omitempty"`
}
