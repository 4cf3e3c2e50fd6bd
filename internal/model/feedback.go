package model

import (
	"time"
)

// Evaluation categories, in the order every feedback record stores them.
const (
	CategoryCommunication = "Communication Skills"
	CategoryTechnical     = "Technical Knowledge"
	CategoryProblemSolve  = "Problem Solving"
	CategoryCulturalFit   = "Cultural Fit"
	CategoryConfidence    = "Confidence and Clarity"
)

var CategoryNames = [5]string{
	CategoryCommunication,
	CategoryTechnical,
	CategoryProblemSolve,
	CategoryCulturalFit,
	CategoryConfidence,
}

type CategoryScore struct {
	Name    string  `bson:"name" json:"name" validate:"required"`
	Score   float64 `bson:"score" json:"score" validate:"gte=0,lte=100"`
	Comment string  `bson:"comment" json:"comment"`
}

// Feedback is one scored attempt at an interview. A user may hold several
// per interview; attempt_timestamp orders them.
type Feedback struct {
	ID                  string          `gorm:"primaryKey;size:64" bson:"_id" json:"id"`
	InterviewID         string          `gorm:"not null;index:idx_feedback_pair_attempt,priority:1" bson:"interview_id" json:"interviewId"`
	UserID              string          `gorm:"not null;index:idx_feedback_pair_attempt,priority:2" bson:"user_id" json:"userId"`
	AttemptTimestamp    time.Time       `gorm:"not null;index:idx_feedback_pair_attempt,priority:3" bson:"attempt_timestamp" json:"attemptTimestamp"`
	TotalScore          int             `gorm:"not null" bson:"total_score" json:"totalScore"`
	CategoryScores      []CategoryScore `gorm:"serializer:json;type:text" bson:"category_scores" json:"categoryScores"`
	Strengths           []string        `gorm:"serializer:json;type:text" bson:"strengths" json:"strengths"`
	AreasForImprovement []string        `gorm:"serializer:json;type:text" bson:"areas_for_improvement" json:"areasForImprovement"`
	FinalAssessment     string          `gorm:"type:text" bson:"final_assessment" json:"finalAssessment"`
	CreatedAt           time.Time       `gorm:"not null;autoCreateTime:false" bson:"created_at" json:"createdAt"`
}

// TableName keeps the collection name shared with the document store layout.
func (Feedback) TableName() string { return "feedback" }

// Evaluation is what the evaluator returns for one transcript.
type Evaluation struct {
	TotalScore          int             `json:"totalScore" validate:"gte=0,lte=100"`
	CategoryScores      []CategoryScore `json:"categoryScores" validate:"len=5,dive"`
	Strengths           []string        `json:"strengths" validate:"required"`
	AreasForImprovement []string        `json:"areasForImprovement" validate:"required"`
	FinalAssessment     string          `json:"finalAssessment" validate:"required"`
}
