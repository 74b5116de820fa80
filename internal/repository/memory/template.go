package memory

import (
	"context"
	"sort"

	"github.com/utafrali/ReviewDeskGo/internal/domain"
	"github.com/utafrali/ReviewDeskGo/internal/repository"
	apperrors "github.com/utafrali/ReviewDeskGo/pkg/errors"
)

type templateRepo struct {
	store *Store
}

func (r *templateRepo) Create(ctx context.Context, template *domain.Template) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextTemplateID++
	template.ID = r.store.nextTemplateID
	r.store.templates[template.ID] = *template
	return nil
}

func (r *templateRepo) GetByID(ctx context.Context, id int64) (*domain.Template, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	template, ok := r.store.templates[id]
	if !ok {
		return nil, apperrors.NotFound("template", id)
	}
	return &template, nil
}

func (r *templateRepo) List(ctx context.Context) ([]domain.Template, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	templates := make([]domain.Template, 0, len(r.store.templates))
	for _, template := range r.store.templates {
		templates = append(templates, template)
	}
	sort.Slice(templates, func(i, j int) bool { return templates[i].ID < templates[j].ID })
	return templates, nil
}

func (r *templateRepo) Update(ctx context.Context, id int64, update repository.TemplateUpdate) (*domain.Template, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	template, ok := r.store.templates[id]
	if !ok {
		return nil, apperrors.NotFound("template", id)
	}

	if update.Name != nil {
		template.Name = *update.Name
	}
	if update.Content != nil {
		template.Content = *update.Content
	}
	if update.Category != nil {
		template.Category = *update.Category
	}
	r.store.templates[id] = template
	return &template, nil
}

func (r *templateRepo) Delete(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.templates[id]; !ok {
		return apperrors.NotFound("template", id)
	}
	delete(r.store.templates, id)
	return nil
}
