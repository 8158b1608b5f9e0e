package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"marketsim/internal/core/domain"
)

// LearningRepository implements port.LearningRepository.
type LearningRepository struct {
	pool *pgxpool.Pool
}

func NewLearningRepository(pool *pgxpool.Pool) *LearningRepository {
	return &LearningRepository{pool: pool}
}

func (r *LearningRepository) CreatePersona(ctx context.Context, p *domain.Persona) error {
	return r.pool.QueryRow(ctx, `INSERT INTO personas
    (user_id, name, age_range, occupation, goals, pain_points, channels, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,now()) RETURNING id, created_at`,
		p.UserID, p.Name, p.AgeRange, p.Occupation, p.Goals, p.PainPoints, p.Channels).
		Scan(&p.ID, &p.CreatedAt)
}

func (r *LearningRepository) ListPersonas(ctx context.Context, userID int64) ([]domain.Persona, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, user_id, name, age_range, occupation, goals, pain_points, channels, created_at
        FROM personas WHERE user_id = $1 ORDER BY created_at, id`, userID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Persona, error) {
		var p domain.Persona
		err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.AgeRange, &p.Occupation, &p.Goals, &p.PainPoints, &p.Channels, &p.CreatedAt)
		return p, err
	})
}

// SaveProgress upserts the progress row of (user, tutorial).
func (r *LearningRepository) SaveProgress(ctx context.Context, p *domain.TutorialProgress) error {
	return r.pool.QueryRow(ctx, `INSERT INTO tutorial_progress (user_id, tutorial_id, step_index, completed, updated_at)
VALUES ($1,$2,$3,$4,now())
ON CONFLICT (user_id, tutorial_id) DO UPDATE SET
    step_index = EXCLUDED.step_index,
    completed  = EXCLUDED.completed,
    updated_at = EXCLUDED.updated_at
RETURNING updated_at`,
		p.UserID, p.TutorialID, p.StepIndex, p.Completed).
		Scan(&p.UpdatedAt)
}

func (r *LearningRepository) ListProgress(ctx context.Context, userID int64) ([]domain.TutorialProgress, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT user_id, tutorial_id, step_index, completed, updated_at
        FROM tutorial_progress WHERE user_id = $1 ORDER BY tutorial_id`, userID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.TutorialProgress, error) {
		var p domain.TutorialProgress
		err := row.Scan(&p.UserID, &p.TutorialID, &p.StepIndex, &p.Completed, &p.UpdatedAt)
		return p, err
	})
}

func (r *LearningRepository) CreateQuizAttempt(ctx context.Context, a *domain.QuizAttempt) error {
	return r.pool.QueryRow(ctx, `INSERT INTO quiz_attempts (user_id, quiz_id, score, total, created_at)
VALUES ($1,$2,$3,$4,now()) RETURNING id, created_at`,
		a.UserID, a.QuizID, a.Score, a.Total).
		Scan(&a.ID, &a.CreatedAt)
}

// ListQuizAttempts returns the user's attempts at a quiz, oldest first.
func (r *LearningRepository) ListQuizAttempts(ctx context.Context, userID int64, quizID string) ([]domain.QuizAttempt, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, user_id, quiz_id, score, total, created_at
        FROM quiz_attempts WHERE user_id = $1 AND quiz_id = $2 ORDER BY created_at, id`, userID, quizID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.QuizAttempt, error) {
		var a domain.QuizAttempt
		err := row.Scan(&a.ID, &a.UserID, &a.QuizID, &a.Score, &a.Total, &a.CreatedAt)
		return a, err
	})
}
