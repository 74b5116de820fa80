package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/utafrali/ReviewDeskGo/internal/domain"
	"github.com/utafrali/ReviewDeskGo/internal/repository"
	apperrors "github.com/utafrali/ReviewDeskGo/pkg/errors"
)

// TemplateRepository stores response templates in the templates table.
type TemplateRepository struct {
	db DB
}

func NewTemplateRepository(db DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

func (r *TemplateRepository) Create(ctx context.Context, template *domain.Template) error {
	query := `
		INSERT INTO templates (name, content, category, is_default)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err := r.db.QueryRow(ctx, query, template.Name, template.Content, template.Category, template.IsDefault).
		Scan(&template.ID)
	if err != nil {
		return fmt.Errorf("insert template: %w", err)
	}
	return nil
}

func (r *TemplateRepository) GetByID(ctx context.Context, id int64) (*domain.Template, error) {
	query := `SELECT id, name, content, category, is_default FROM templates WHERE id = $1`

	var t domain.Template
	err := r.db.QueryRow(ctx, query, id).Scan(&t.ID, &t.Name, &t.Content, &t.Category, &t.IsDefault)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("template", id)
		}
		return nil, fmt.Errorf("get template: %w", err)
	}
	return &t, nil
}

func (r *TemplateRepository) List(ctx context.Context) ([]domain.Template, error) {
	query := `SELECT id, name, content, category, is_default FROM templates ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	templates := make([]domain.Template, 0)
	for rows.Next() {
		var t domain.Template
		if err := rows.Scan(&t.ID, &t.Name, &t.Content, &t.Category, &t.IsDefault); err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate templates: %w", err)
	}
	return templates, nil
}

func (r *TemplateRepository) Update(ctx context.Context, id int64, update repository.TemplateUpdate) (*domain.Template, error) {
	query := `
		UPDATE templates
		SET name = COALESCE($1, name),
		    content = COALESCE($2, content),
		    category = COALESCE($3, category)
		WHERE id = $4
		RETURNING id, name, content, category, is_default`

	var t domain.Template
	err := r.db.QueryRow(ctx, query, update.Name, update.Content, update.Category, id).
		Scan(&t.ID, &t.Name, &t.Content, &t.Category, &t.IsDefault)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("template", id)
		}
		return nil, fmt.Errorf("update template: %w", err)
	}
	return &t, nil
}

func (r *TemplateRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM templates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("template", id)
	}
	return nil
}
