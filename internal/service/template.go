package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/utafrali/ReviewDeskGo/internal/domain"
	"github.com/utafrali/ReviewDeskGo/internal/repository"
	apperrors "github.com/utafrali/ReviewDeskGo/pkg/errors"
)

// CreateTemplateInput carries the fields for a new response template.
type CreateTemplateInput struct {
	Name     string `json:"name" validate:"required,max=200"`
	Content  string `json:"content" validate:"required"`
	Category string `json:"category" validate:"required,oneof=positive neutral negative special"`
}

// UpdateTemplateInput carries partial template changes.
type UpdateTemplateInput struct {
	Name     *string `json:"name" validate:"omitempty,max=200"`
	Content  *string `json:"content"`
	Category *string `json:"category" validate:"omitempty,oneof=positive neutral negative special"`
}

// TemplateService manages response templates. Default templates are
// protected from deletion.
type TemplateService struct {
	templates repository.TemplateRepository
}

func NewTemplateService(templates repository.TemplateRepository) *TemplateService {
	return &TemplateService{templates: templates}
}

func (s *TemplateService) List(ctx context.Context) ([]domain.Template, error) {
	templates, err := s.templates.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	return templates, nil
}

func (s *TemplateService) Get(ctx context.Context, id int64) (*domain.Template, error) {
	return s.templates.GetByID(ctx, id)
}

func (s *TemplateService) Create(ctx context.Context, input CreateTemplateInput) (*domain.Template, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Content) == "" {
		return nil, apperrors.InvalidInput("template name and content must not be empty")
	}

	template := &domain.Template{
		Name:     strings.TrimSpace(input.Name),
		Content:  input.Content,
		Category: input.Category,
	}
	if err := s.templates.Create(ctx, template); err != nil {
		return nil, fmt.Errorf("create template: %w", err)
	}
	return template, nil
}

func (s *TemplateService) Update(ctx context.Context, id int64, input UpdateTemplateInput) (*domain.Template, error) {
	if input.Name == nil && input.Content == nil && input.Category == nil {
		return nil, apperrors.InvalidInput("no template fields to update")
	}
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, apperrors.InvalidInput("template name must not be empty")
	}
	if input.Content != nil && strings.TrimSpace(*input.Content) == "" {
		return nil, apperrors.InvalidInput("template content must not be empty")
	}

	template, err := s.templates.Update(ctx, id, repository.TemplateUpdate{
		Name:     input.Name,
		Content:  input.Content,
		Category: input.Category,
	})
	if err != nil {
		return nil, err
	}
	return template, nil
}

// Delete removes a template. Templates that ship with the system are
// refused.
func (s *TemplateService) Delete(ctx context.Context, id int64) error {
	template, err := s.templates.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if template.IsDefault {
		return apperrors.Forbidden("default templates cannot be deleted")
	}
	return s.templates.Delete(ctx, id)
}
