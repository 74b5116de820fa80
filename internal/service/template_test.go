package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/utafrali/ReviewDeskGo/internal/domain"
	"github.com/utafrali/ReviewDeskGo/internal/repository"
	apperrors "github.com/utafrali/ReviewDeskGo/pkg/errors"
)

func TestTemplateService_Delete_RefusesDefault(t *testing.T) {
	templates := new(mockTemplateRepo)
	templates.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Template{ID: 1, Name: "Thank You Response", IsDefault: true}, nil)

	svc := NewTemplateService(templates)
	err := svc.Delete(context.Background(), 1)

	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	templates.AssertNotCalled(t, "Delete")
}

func TestTemplateService_Delete_RemovesCustom(t *testing.T) {
	templates := new(mockTemplateRepo)
	templates.On("GetByID", mock.Anything, int64(5)).
		Return(&domain.Template{ID: 5, Name: "Weekend Special", IsDefault: false}, nil)
	templates.On("Delete", mock.Anything, int64(5)).Return(nil)

	svc := NewTemplateService(templates)
	assert.NoError(t, svc.Delete(context.Background(), 5))
	templates.AssertExpectations(t)
}

func TestTemplateService_Delete_NotFound(t *testing.T) {
	templates := new(mockTemplateRepo)
	templates.On("GetByID", mock.Anything, int64(42)).Return(nil, apperrors.NotFound("template", 42))

	svc := NewTemplateService(templates)
	assert.ErrorIs(t, svc.Delete(context.Background(), 42), apperrors.ErrNotFound)
}

func TestTemplateService_Create_RejectsBlankFields(t *testing.T) {
	templates := new(mockTemplateRepo)
	svc := NewTemplateService(templates)

	_, err := svc.Create(context.Background(), CreateTemplateInput{Name: "  ", Content: "text", Category: "positive"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	_, err = svc.Create(context.Background(), CreateTemplateInput{Name: "Name", Content: " ", Category: "positive"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	templates.AssertNotCalled(t, "Create")
}

func TestTemplateService_Update_RequiresAtLeastOneField(t *testing.T) {
	templates := new(mockTemplateRepo)
	svc := NewTemplateService(templates)

	_, err := svc.Update(context.Background(), 1, UpdateTemplateInput{})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	templates.AssertNotCalled(t, "Update")
}

func TestTemplateService_Update_PassesPartialFields(t *testing.T) {
	templates := new(mockTemplateRepo)
	newName := "Renamed"
	templates.On("Update", mock.Anything, int64(3), repository.TemplateUpdate{Name: &newName}).
		Return(&domain.Template{ID: 3, Name: "Renamed", Content: "body", Category: "neutral"}, nil)

	svc := NewTemplateService(templates)
	got, err := svc.Update(context.Background(), 3, UpdateTemplateInput{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
	templates.AssertExpectations(t)
}
