package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edulab/elearning-api/internal/domain/entity"
	"github.com/edulab/elearning-api/internal/domain/repository"
)

// QuizRepository stores the question list as a jsonb document, mirroring
// the embedded-array shape of the legacy collection.
type QuizRepository struct {
	pool *pgxpool.Pool
}

func NewQuizRepository(pool *pgxpool.Pool) *QuizRepository {
	return &QuizRepository{pool: pool}
}

func (r *QuizRepository) Create(q *entity.Quiz) error {
	ctx := context.Background()
	if q.Questions == nil {
		q.Questions = []entity.Question{}
	}
	doc, err := json.Marshal(q.Questions)
	if err != nil {
		return err
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO quizzes (course_id, questions)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`, q.CourseID, doc)

	return row.Scan(&q.ID, &q.CreatedAt, &q.UpdatedAt)
}

func (r *QuizRepository) GetByID(id string) (*entity.Quiz, error) {
	ctx := context.Background()
	q := &entity.Quiz{}
	var doc []byte

	row := r.pool.QueryRow(ctx, `
		SELECT id, course_id, questions, created_at, updated_at
		FROM quizzes
		WHERE id = $1
	`, id)

	if err := row.Scan(&q.ID, &q.CourseID, &doc, &q.CreatedAt, &q.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(doc, &q.Questions); err != nil {
		return nil, err
	}

	return q, nil
}

func (r *QuizRepository) Update(id string, upd entity.QuizUpdate) (*entity.Quiz, error) {
	ctx := context.Background()
	q := &entity.Quiz{}
	var doc []byte

	var questions []byte
	if upd.Questions != nil {
		b, err := json.Marshal(*upd.Questions)
		if err != nil {
			return nil, err
		}
		questions = b
	}

	row := r.pool.QueryRow(ctx, `
		UPDATE quizzes
		SET course_id  = COALESCE($1, course_id),
		    questions  = COALESCE($2::jsonb, questions),
		    updated_at = $3
		WHERE id = $4
		RETURNING id, course_id, questions, created_at, updated_at
	`, upd.CourseID, questions, time.Now(), id)

	if err := row.Scan(&q.ID, &q.CourseID, &doc, &q.CreatedAt, &q.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(doc, &q.Questions); err != nil {
		return nil, err
	}

	return q, nil
}

func (r *QuizRepository) Delete(id string) error {
	ctx := context.Background()
	_, err := r.pool.Exec(ctx, `DELETE FROM quizzes WHERE id = $1`, id)
	return err
}

var _ repository.QuizRepository = (*QuizRepository)(nil)
