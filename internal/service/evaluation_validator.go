package service

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/lshigami/intervu/internal/model"
)

var ErrInvalidEvaluation = errors.New("evaluator returned a malformed evaluation")

var validate = validator.New()

// ValidateEvaluation rejects anything that is not exactly the five fixed
// categories, in order, with scores in range.
func ValidateEvaluation(ev *model.Evaluation) error {
	if ev == nil {
		return fmt.Errorf("%w: empty result", ErrInvalidEvaluation)
	}
	if err := validate.Struct(ev); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEvaluation, err)
	}
	for i, want := range model.CategoryNames {
		if got := ev.CategoryScores[i].Name; got != want {
			return fmt.Errorf("%w: category %d is %q, want %q", ErrInvalidEvaluation, i, got, want)
		}
	}
	return nil
}

// evaluationPayload is the raw evaluator output. Scores are pointers so a
// missing or null score is rejected instead of decoding to zero.
type evaluationPayload struct {
	TotalScore          *int                   `json:"totalScore" validate:"required,gte=0,lte=100"`
	CategoryScores      []categoryScorePayload `json:"categoryScores" validate:"required,dive"`
	Strengths           []string               `json:"strengths" validate:"required"`
	AreasForImprovement []string               `json:"areasForImprovement" validate:"required"`
	FinalAssessment     string                 `json:"finalAssessment" validate:"required"`
}

type categoryScorePayload struct {
	Name    string   `json:"name" validate:"required"`
	Score   *float64 `json:"score" validate:"required,gte=0,lte=100"`
	Comment string   `json:"comment"`
}

// toEvaluation expects a payload that already passed validation.
func (p *evaluationPayload) toEvaluation() *model.Evaluation {
	scores := make([]model.CategoryScore, 0, len(p.CategoryScores))
	for _, c := range p.CategoryScores {
		scores = append(scores, model.CategoryScore{Name: c.Name, Score: *c.Score, Comment: c.Comment})
	}
	return &model.Evaluation{
		TotalScore:          *p.TotalScore,
		CategoryScores:      scores,
		Strengths:           p.Strengths,
		AreasForImprovement: p.AreasForImprovement,
		FinalAssessment:     p.FinalAssessment,
	}
}
