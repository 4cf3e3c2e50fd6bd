package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/lshigami/intervu/internal/model"
	"github.com/lshigami/intervu/internal/repository"
	"github.com/lshigami/intervu/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFeedback(repo repository.FeedbackRepository, interviewID, userID string, score int, at time.Time) *model.Feedback {
	return &model.Feedback{
		ID:               repo.NewID(),
		InterviewID:      interviewID,
		UserID:           userID,
		AttemptTimestamp: at,
		TotalScore:       score,
		CategoryScores: []model.CategoryScore{
			{Name: model.CategoryCommunication, Score: 70, Comment: "Clear"},
			{Name: model.CategoryTechnical, Score: 65, Comment: "Gaps in indexing"},
			{Name: model.CategoryProblemSolve, Score: 80, Comment: "Structured"},
			{Name: model.CategoryCulturalFit, Score: 75, Comment: "Good"},
			{Name: model.CategoryConfidence, Score: 60, Comment: "Hesitant"},
		},
		Strengths:           []string{"Structured"},
		AreasForImprovement: []string{"Indexing"},
		FinalAssessment:     "Keep practicing.",
		CreatedAt:           at,
	}
}

func TestFeedbackRepository_SaveAndFind(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := repository.NewFeedbackRepository(db)
	ctx := context.Background()
	at := time.Date(2026, 4, 2, 10, 30, 0, 0, time.UTC)

	fb := newFeedback(repo, "i1", "u1", 70, at)
	require.NoError(t, repo.Save(ctx, fb))

	got, err := repo.FindByID(ctx, fb.ID)
	require.NoError(t, err)
	assert.Equal(t, fb.CategoryScores, got.CategoryScores)
	assert.Equal(t, fb.Strengths, got.Strengths)
	assert.Equal(t, fb.AreasForImprovement, got.AreasForImprovement)
	assert.WithinDuration(t, at, got.AttemptTimestamp, time.Millisecond)

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestFeedbackRepository_SaveRequiresID(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := repository.NewFeedbackRepository(db)

	fb := newFeedback(repo, "i1", "u1", 70, time.Now().UTC())
	fb.ID = ""
	assert.Error(t, repo.Save(context.Background(), fb))
}

func TestFeedbackRepository_SaveOverwritesWholeRecord(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := repository.NewFeedbackRepository(db)
	ctx := context.Background()
	first := time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)

	fb := newFeedback(repo, "i1", "u1", 40, first)
	require.NoError(t, repo.Save(ctx, fb))

	replacement := newFeedback(repo, "i1", "u1", 95, second)
	replacement.ID = fb.ID
	replacement.Strengths = []string{"Everything"}
	replacement.AreasForImprovement = []string{}
	require.NoError(t, repo.Save(ctx, replacement))

	all, err := repo.FindAllByInterviewAndUser(ctx, "i1", "u1")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 95, all[0].TotalScore)
	assert.Equal(t, []string{"Everything"}, all[0].Strengths)
	assert.Empty(t, all[0].AreasForImprovement)
	assert.WithinDuration(t, second, all[0].AttemptTimestamp, time.Millisecond)
	assert.WithinDuration(t, second, all[0].CreatedAt, time.Millisecond)
}

func TestFeedbackRepository_HistoryOrderAndLatest(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := repository.NewFeedbackRepository(db)
	ctx := context.Background()
	base := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)

	// Insert out of order so the result order comes from the query.
	middle := newFeedback(repo, "i1", "u1", 60, base.Add(2*time.Hour))
	oldest := newFeedback(repo, "i1", "u1", 50, base)
	newest := newFeedback(repo, "i1", "u1", 70, base.Add(4*time.Hour))
	for _, fb := range []*model.Feedback{middle, oldest, newest} {
		require.NoError(t, repo.Save(ctx, fb))
	}
	// Other pairs must not leak in.
	require.NoError(t, repo.Save(ctx, newFeedback(repo, "i1", "u2", 99, base.Add(5*time.Hour))))
	require.NoError(t, repo.Save(ctx, newFeedback(repo, "i2", "u1", 99, base.Add(6*time.Hour))))

	all, err := repo.FindAllByInterviewAndUser(ctx, "i1", "u1")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{newest.ID, middle.ID, oldest.ID}, []string{all[0].ID, all[1].ID, all[2].ID})

	latest, err := repo.FindLatest(ctx, "i1", "u1")
	require.NoError(t, err)
	assert.Equal(t, newest.ID, latest.ID)
	assert.Equal(t, all[0].ID, latest.ID)
}

func TestFeedbackRepository_EmptyPair(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := repository.NewFeedbackRepository(db)

	all, err := repo.FindAllByInterviewAndUser(context.Background(), "i1", "u1")
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	_, err = repo.FindLatest(context.Background(), "i1", "u1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestFeedbackRepository_StoreFailure(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := repository.NewFeedbackRepository(db)
	testhelpers.DropFeedbackTable(t, db)

	_, err := repo.FindAllByInterviewAndUser(context.Background(), "i1", "u1")
	assert.Error(t, err)

	_, err = repo.FindLatest(context.Background(), "i1", "u1")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrNotFound)
}

func TestFeedbackRepository_NewIDIsUnique(t *testing.T) {
	repo := repository.NewFeedbackRepository(nil)
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := repo.NewID()
		assert.False(t, seen[id])
		seen[id] = true
	}
}
