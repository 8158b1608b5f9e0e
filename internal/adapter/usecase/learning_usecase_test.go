package usecase

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"marketsim/internal/core/domain"
	"marketsim/internal/core/port/mocks"
)

func TestCreatePersona(t *testing.T) {
	repo := mocks.NewMockLearningRepository(t)
	repo.EXPECT().
		CreatePersona(mock.Anything, mock.MatchedBy(func(p *domain.Persona) bool {
			return p.UserID == 1 && p.Name == "Runner Rita" && len(p.Goals) == 1 && len(p.Channels) == 2
		})).
		Return(nil)

	svc := NewLearningUseCase(repo)
	p, err := svc.CreatePersona(context.Background(), 1, domain.Persona{
		Name:     " Runner Rita ",
		Goals:    []string{"finish a marathon", "  "},
		Channels: []string{"instagram", "search"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"finish a marathon"}, p.Goals)
	assert.Empty(t, p.PainPoints)

	_, err = svc.CreatePersona(context.Background(), 1, domain.Persona{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSaveProgress(t *testing.T) {
	repo := mocks.NewMockLearningRepository(t)
	repo.EXPECT().SaveProgress(mock.Anything, &domain.TutorialProgress{UserID: 1, TutorialID: "keywords-101", StepIndex: 2}).Return(nil)

	svc := NewLearningUseCase(repo)
	_, err := svc.SaveProgress(context.Background(), 1, domain.TutorialProgress{TutorialID: "keywords-101", StepIndex: 2})
	require.NoError(t, err)

	_, err = svc.SaveProgress(context.Background(), 1, domain.TutorialProgress{TutorialID: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = svc.SaveProgress(context.Background(), 1, domain.TutorialProgress{TutorialID: "x", StepIndex: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = svc.SaveProgress(context.Background(), 1, domain.TutorialProgress{TutorialID: "x", StepIndex: math.MaxInt})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecordQuizAttempt(t *testing.T) {
	repo := mocks.NewMockLearningRepository(t)
	repo.EXPECT().CreateQuizAttempt(mock.Anything, mock.AnythingOfType("*domain.QuizAttempt")).Return(nil)

	svc := NewLearningUseCase(repo)
	a, err := svc.RecordQuizAttempt(context.Background(), 1, domain.QuizAttempt{QuizID: "ppc-basics", Score: 4, Total: 5})
	require.NoError(t, err)
	assert.InDelta(t, 80.0, a.Percent(), 1e-9)

	for _, bad := range []domain.QuizAttempt{
		{QuizID: "", Score: 1, Total: 2},
		{QuizID: "q", Score: 1, Total: 0},
		{QuizID: "q", Score: 3, Total: 2},
		{QuizID: "q", Score: -1, Total: 2},
		{QuizID: "q", Score: 1, Total: maxQuizQuestions + 1},
		{QuizID: "q", Score: math.MaxInt, Total: math.MaxInt},
	} {
		_, err = svc.RecordQuizAttempt(context.Background(), 1, bad)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}
