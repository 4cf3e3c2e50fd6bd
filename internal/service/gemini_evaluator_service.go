package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/intervu/config"
	"github.com/lshigami/intervu/internal/model"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

var ErrEvaluatorUnavailable = errors.New("evaluator is not configured")

// FeedbackEvaluator scores a formatted interview transcript.
type FeedbackEvaluator interface {
	Evaluate(ctx context.Context, transcript string) (*model.Evaluation, error)
}

const evaluatorSystemPrompt = "You are a professional interviewer analyzing a mock interview. " +
	"Your task is to evaluate the candidate based on structured categories."

const evaluatorPromptTemplate = `You are an AI interviewer analyzing a mock interview. Evaluate the candidate based on structured categories. Be thorough and detailed. Do not be lenient with the candidate: if there are mistakes or areas for improvement, point them out.
Transcript:
%s
Score the candidate from 0 to 100 in the following areas, in this order. Do not add categories other than the ones provided:
- Communication Skills: Clarity, articulation, structured responses.
- Technical Knowledge: Understanding of key concepts for the role.
- Problem Solving: Ability to analyze problems and propose solutions.
- Cultural Fit: Alignment with company values and job role.
- Confidence and Clarity: Confidence in responses, engagement, and clarity.
Also give a totalScore from 0 to 100, the candidate's strengths, the areas for improvement and a final assessment.`

type geminiEvaluator struct {
	model *genai.GenerativeModel
}

func NewGeminiEvaluator(cfg *config.Config) (FeedbackEvaluator, error) {
	if cfg.Gemini.APIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Feedback evaluation will be non-functional.")
		return &geminiEvaluator{}, nil
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.Gemini.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}

	m := client.GenerativeModel(cfg.Gemini.Model)
	m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(evaluatorSystemPrompt)}}
	m.ResponseMIMEType = "application/json"
	m.ResponseSchema = evaluationSchema()
	return &geminiEvaluator{model: m}, nil
}

func (e *geminiEvaluator) Evaluate(ctx context.Context, transcript string) (*model.Evaluation, error) {
	if e.model == nil {
		return nil, ErrEvaluatorUnavailable
	}

	resp, err := e.model.GenerateContent(ctx, genai.Text(fmt.Sprintf(evaluatorPromptTemplate, transcript)))
	if err != nil {
		return nil, fmt.Errorf("gemini generate content: %w", err)
	}
	raw, err := responseText(resp)
	if err != nil {
		return nil, err
	}
	return ParseEvaluation(raw)
}

// responseText joins the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: gemini returned no content", ErrInvalidEvaluation)
	}

	var raw strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			raw.WriteString(string(txt))
		}
	}
	if strings.TrimSpace(raw.String()) == "" {
		return "", fmt.Errorf("%w: gemini returned no text", ErrInvalidEvaluation)
	}
	return raw.String(), nil
}

// ParseEvaluation decodes the evaluator's JSON output and validates it.
func ParseEvaluation(raw string) (*model.Evaluation, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimSuffix(strings.TrimSpace(strings.TrimPrefix(raw, "```")), "```")

	var payload evaluationPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEvaluation, err)
	}
	if err := validate.Struct(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEvaluation, err)
	}

	ev := payload.toEvaluation()
	if err := ValidateEvaluation(ev); err != nil {
		return nil, err
	}
	return ev, nil
}

func evaluationSchema() *genai.Schema {
	category := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":    {Type: genai.TypeString, Enum: model.CategoryNames[:]},
			"score":   {Type: genai.TypeNumber},
			"comment": {Type: genai.TypeString},
		},
		Required: []string{"name", "score", "comment"},
	}
	stringList := &genai.Schema{Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"totalScore":          {Type: genai.TypeInteger},
			"categoryScores":      {Type: genai.TypeArray, Items: category},
			"strengths":           stringList,
			"areasForImprovement": stringList,
			"finalAssessment":     {Type: genai.TypeString},
		},
		Required: []string{"totalScore", "categoryScores", "strengths", "areasForImprovement", "finalAssessment"},
	}
}
