package usecase

import (
	"context"
	"fmt"
	"strings"

	"marketsim/internal/core/domain"
	"marketsim/internal/core/port"
)

// Upper bounds for learning input, well inside the INTEGER columns.
const (
	maxQuizQuestions = 1000
	maxTutorialStep  = 1000
)

// LearningUseCase validates and stores personas, tutorial progress and quiz
// attempts.
type LearningUseCase struct {
	repo port.LearningRepository
}

func NewLearningUseCase(repo port.LearningRepository) *LearningUseCase {
	return &LearningUseCase{repo: repo}
}

func (u *LearningUseCase) CreatePersona(ctx context.Context, userID int64, p domain.Persona) (*domain.Persona, error) {
	p.UserID = userID
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return nil, fmt.Errorf("%w: persona name is required", domain.ErrInvalidInput)
	}
	p.Goals = compact(p.Goals)
	p.PainPoints = compact(p.PainPoints)
	p.Channels = compact(p.Channels)
	if err := u.repo.CreatePersona(ctx, &p); err != nil {
		return nil, fmt.Errorf("create persona: %w", err)
	}
	return &p, nil
}

func (u *LearningUseCase) ListPersonas(ctx context.Context, userID int64) ([]domain.Persona, error) {
	return u.repo.ListPersonas(ctx, userID)
}

// SaveProgress upserts the user's position in a tutorial.
func (u *LearningUseCase) SaveProgress(ctx context.Context, userID int64, p domain.TutorialProgress) (*domain.TutorialProgress, error) {
	p.UserID = userID
	p.TutorialID = strings.TrimSpace(p.TutorialID)
	if p.TutorialID == "" {
		return nil, fmt.Errorf("%w: tutorial id is required", domain.ErrInvalidInput)
	}
	if p.StepIndex < 0 || p.StepIndex > maxTutorialStep {
		return nil, fmt.Errorf("%w: step index %d outside [0,%d]", domain.ErrInvalidInput, p.StepIndex, maxTutorialStep)
	}
	if err := u.repo.SaveProgress(ctx, &p); err != nil {
		return nil, fmt.Errorf("save progress: %w", err)
	}
	return &p, nil
}

func (u *LearningUseCase) ListProgress(ctx context.Context, userID int64) ([]domain.TutorialProgress, error) {
	return u.repo.ListProgress(ctx, userID)
}

// RecordQuizAttempt stores a graded quiz. The score must lie within
// [0, total] and total within [1, maxQuizQuestions].
func (u *LearningUseCase) RecordQuizAttempt(ctx context.Context, userID int64, a domain.QuizAttempt) (*domain.QuizAttempt, error) {
	a.UserID = userID
	a.QuizID = strings.TrimSpace(a.QuizID)
	switch {
	case a.QuizID == "":
		return nil, fmt.Errorf("%w: quiz id is required", domain.ErrInvalidInput)
	case a.Total <= 0 || a.Total > maxQuizQuestions:
		return nil, fmt.Errorf("%w: total %d outside [1,%d]", domain.ErrInvalidInput, a.Total, maxQuizQuestions)
	case a.Score < 0 || a.Score > a.Total:
		return nil, fmt.Errorf("%w: score %d outside [0,%d]", domain.ErrInvalidInput, a.Score, a.Total)
	}
	if err := u.repo.CreateQuizAttempt(ctx, &a); err != nil {
		return nil, fmt.Errorf("record quiz attempt: %w", err)
	}
	return &a, nil
}

func (u *LearningUseCase) ListQuizAttempts(ctx context.Context, userID int64, quizID string) ([]domain.QuizAttempt, error) {
	return u.repo.ListQuizAttempts(ctx, userID, quizID)
}

// compact trims entries and drops blank ones.
func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
