package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edulab/elearning-api/internal/domain/entity"
	"github.com/edulab/elearning-api/internal/domain/repository"
)

type CourseRepository struct {
	pool *pgxpool.Pool
}

func NewCourseRepository(pool *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{pool: pool}
}

func (r *CourseRepository) Create(c *entity.Course) error {
	ctx := context.Background()
	if c.Content == nil {
		c.Content = []string{}
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO courses (title, description, formateur, content, price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, c.Title, c.Description, c.Formateur, c.Content, c.Price)

	return row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *CourseRepository) GetByID(id string) (*entity.Course, error) {
	ctx := context.Background()
	c := &entity.Course{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, title, description, formateur, content, price, created_at, updated_at
		FROM courses
		WHERE id = $1
	`, id)

	if err := scanCourse(row, c); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return c, nil
}

func (r *CourseRepository) GetAll() ([]entity.Course, error) {
	ctx := context.Background()

	rows, err := r.pool.Query(ctx, `
		SELECT id, title, description, formateur, content, price, created_at, updated_at
		FROM courses
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Course, 0)
	for rows.Next() {
		var c entity.Course
		if err := scanCourse(rows, &c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CourseRepository) Update(id string, upd entity.CourseUpdate) (*entity.Course, error) {
	ctx := context.Background()
	c := &entity.Course{}

	// COALESCE keeps the stored value for fields absent from the payload.
	row := r.pool.QueryRow(ctx, `
		UPDATE courses
		SET title       = COALESCE($1, title),
		    description = COALESCE($2, description),
		    formateur   = COALESCE($3, formateur),
		    content     = COALESCE($4::text[], content),
		    price       = COALESCE($5, price),
		    updated_at  = $6
		WHERE id = $7
		RETURNING id, title, description, formateur, content, price, created_at, updated_at
	`, upd.Title, upd.Description, upd.Formateur, upd.Content, upd.Price, time.Now(), id)

	if err := scanCourse(row, c); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return c, nil
}

func (r *CourseRepository) Delete(id string) error {
	ctx := context.Background()
	// idempotent by id: zero rows affected is still success
	_, err := r.pool.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	return err
}

func scanCourse(row pgx.Row, c *entity.Course) error {
	return row.Scan(&c.ID, &c.Title, &c.Description, &c.Formateur, &c.Content,
		&c.Price, &c.CreatedAt, &c.UpdatedAt)
}

var _ repository.CourseRepository = (*CourseRepository)(nil)
