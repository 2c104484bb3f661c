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

type ModuleRepository struct {
	pool *pgxpool.Pool
}

func NewModuleRepository(pool *pgxpool.Pool) *ModuleRepository {
	return &ModuleRepository{pool: pool}
}

func (r *ModuleRepository) Create(m *entity.Module) error {
	ctx := context.Background()
	if m.Resources == nil {
		m.Resources = []string{}
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO modules (title, content, course_id, resources)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, m.Title, m.Content, m.CourseID, m.Resources)

	return row.Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
}

func (r *ModuleRepository) GetByID(id string) (*entity.Module, error) {
	ctx := context.Background()
	m := &entity.Module{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, title, content, course_id, resources, created_at, updated_at
		FROM modules
		WHERE id = $1
	`, id)

	if err := row.Scan(&m.ID, &m.Title, &m.Content, &m.CourseID, &m.Resources,
		&m.CreatedAt, &m.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return m, nil
}

func (r *ModuleRepository) Update(id string, upd entity.ModuleUpdate) (*entity.Module, error) {
	ctx := context.Background()
	m := &entity.Module{}

	row := r.pool.QueryRow(ctx, `
		UPDATE modules
		SET title      = COALESCE($1, title),
		    content    = COALESCE($2, content),
		    course_id  = COALESCE($3, course_id),
		    resources  = COALESCE($4::text[], resources),
		    updated_at = $5
		WHERE id = $6
		RETURNING id, title, content, course_id, resources, created_at, updated_at
	`, upd.Title, upd.Content, upd.CourseID, upd.Resources, time.Now(), id)

	if err := row.Scan(&m.ID, &m.Title, &m.Content, &m.CourseID, &m.Resources,
		&m.CreatedAt, &m.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return m, nil
}

func (r *ModuleRepository) Delete(id string) error {
	ctx := context.Background()
	_, err := r.pool.Exec(ctx, `DELETE FROM modules WHERE id = $1`, id)
	return err
}

var _ repository.ModuleRepository = (*ModuleRepository)(nil)
