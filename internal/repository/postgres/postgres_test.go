package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utafrali/ReviewDeskGo/internal/domain"
	"github.com/utafrali/ReviewDeskGo/internal/repository"
	"github.com/utafrali/ReviewDeskGo/pkg/database"
	apperrors "github.com/utafrali/ReviewDeskGo/pkg/errors"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := database.NewMockPool()
	require.NoError(t, err)
	return mock
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

var now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

var reviewCols = []string{
	"id", "customer_name", "customer_initials", "rating", "content", "date_posted",
	"status", "response", "response_date", "platform", "category", "source_id",
}

func sampleReview() domain.Review {
	return domain.Review{
		ID:               1,
		CustomerName:     "Sarah Miller",
		CustomerInitials: "SM",
		Rating:           5,
		Content:          "Excellent service!",
		DatePosted:       now,
		Status:           domain.StatusPending,
		Platform:         "google",
		Category:         strPtr("positive"),
		SourceID:         strPtr("accounts/1/locations/2/reviews/abc"),
	}
}

func reviewRow(r domain.Review) []any {
	return []any{
		r.ID, r.CustomerName, r.CustomerInitials, r.Rating, r.Content, r.DatePosted,
		r.Status, r.Response, r.ResponseDate, r.Platform, r.Category, r.SourceID,
	}
}

func TestReviewRepository_Create_Success(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewReviewRepository(mock)

	r := sampleReview()
	r.ID = 0

	mock.ExpectQuery("INSERT INTO reviews").
		WithArgs(
			r.CustomerName, r.CustomerInitials, r.Rating, r.Content, r.DatePosted,
			r.Status, r.Response, r.ResponseDate, r.Platform, r.Category, r.SourceID,
		).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))

	err := repo.Create(context.Background(), &r)
	require.NoError(t, err)
	assert.Equal(t, int64(7), r.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_GetByID_Success(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewReviewRepository(mock)

	r := sampleReview()
	mock.ExpectQuery("SELECT .+ FROM reviews WHERE id").
		WithArgs(r.ID).
		WillReturnRows(pgxmock.NewRows(reviewCols).AddRow(reviewRow(r)...))

	result, err := repo.GetByID(context.Background(), r.ID)
	require.NoError(t, err)
	assert.Equal(t, r.CustomerName, result.CustomerName)
	assert.Equal(t, r.SourceID, result.SourceID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_GetByID_NotFound(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewReviewRepository(mock)

	mock.ExpectQuery("SELECT .+ FROM reviews WHERE id").
		WithArgs(int64(99)).
		WillReturnError(pgx.ErrNoRows)

	result, err := repo.GetByID(context.Background(), 99)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_GetBySourceID_NotFound(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewReviewRepository(mock)

	mock.ExpectQuery("SELECT .+ FROM reviews WHERE source_id").
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	result, err := repo.GetBySourceID(context.Background(), "missing")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_List_NoFilter(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewReviewRepository(mock)

	r := sampleReview()
	mock.ExpectQuery("SELECT .+ FROM reviews ORDER BY date_posted DESC").
		WillReturnRows(pgxmock.NewRows(reviewCols).AddRow(reviewRow(r)...))

	result, err := repo.List(context.Background(), repository.ReviewFilter{})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, r.ID, result[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_List_AllFilters(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewReviewRepository(mock)

	r := sampleReview()
	mock.ExpectQuery("SELECT .+ FROM reviews WHERE rating = .+ AND status = .+ AND .+ILIKE.+ AND date_posted >=").
		WithArgs(5, domain.StatusPending, "%sarah%", pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(reviewCols).AddRow(reviewRow(r)...))

	result, err := repo.List(context.Background(), repository.ReviewFilter{
		Rating:    intPtr(5),
		Status:    domain.StatusPending,
		Search:    "sarah",
		DateRange: "last-30-days",
	})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_UpdateResponse_Success(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewReviewRepository(mock)

	r := sampleReview()
	r.Status = domain.StatusResponded
	r.Response = strPtr("Thank you!")
	r.ResponseDate = &now

	mock.ExpectQuery("UPDATE reviews").
		WithArgs("Thank you!", domain.StatusResponded, &now, r.ID).
		WillReturnRows(pgxmock.NewRows(reviewCols).AddRow(reviewRow(r)...))

	result, err := repo.UpdateResponse(context.Background(), r.ID, repository.ResponseUpdate{
		Response:     "Thank you!",
		Status:       domain.StatusResponded,
		ResponseDate: &now,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusResponded, result.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_UpdateResponse_NotFound(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewReviewRepository(mock)

	mock.ExpectQuery("UPDATE reviews").
		WithArgs("x", domain.StatusDraft, (*time.Time)(nil), int64(404)).
		WillReturnError(pgx.ErrNoRows)

	result, err := repo.UpdateResponse(context.Background(), 404, repository.ResponseUpdate{
		Response: "x",
		Status:   domain.StatusDraft,
	})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResponseRepository_Create_Success(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewResponseRepository(mock)

	sent := now
	resp := domain.Response{ReviewID: 3, Content: "Thanks!", Tone: domain.ToneFriendly, IsAIGenerated: true, SentAt: &sent, CreatedAt: now}

	mock.ExpectQuery("INSERT INTO responses").
		WithArgs(resp.ReviewID, resp.Content, resp.Tone, resp.IsAIGenerated, resp.SentAt, resp.CreatedAt).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(11)))

	err := repo.Create(context.Background(), &resp)
	require.NoError(t, err)
	assert.Equal(t, int64(11), resp.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResponseRepository_ListByReview_Success(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewResponseRepository(mock)

	cols := []string{"id", "review_id", "content", "tone", "is_ai_generated", "sent_at", "created_at"}
	mock.ExpectQuery("SELECT .+ FROM responses WHERE review_id .+ ORDER BY created_at ASC").
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows(cols).
			AddRow(int64(1), int64(3), "Older", domain.ToneFriendly, false, (*time.Time)(nil), now.Add(-time.Hour)).
			AddRow(int64(2), int64(3), "Newer", domain.ToneProfessional, true, &now, now))

	result, err := repo.ListByReview(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "Older", result[0].Content)
	assert.False(t, result[0].IsAIGenerated)
	assert.Nil(t, result[0].SentAt)
	assert.True(t, result[1].IsAIGenerated)
	require.NotNil(t, result[1].SentAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTemplateRepository_Delete_NotFound(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewTemplateRepository(mock)

	mock.ExpectExec("DELETE FROM templates").
		WithArgs(int64(42)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTemplateRepository_Update_PartialFields(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewTemplateRepository(mock)

	cols := []string{"id", "name", "content", "category", "is_default"}
	newName := "Weekend Thanks"

	mock.ExpectQuery("UPDATE templates").
		WithArgs(&newName, (*string)(nil), (*string)(nil), int64(5)).
		WillReturnRows(pgxmock.NewRows(cols).
			AddRow(int64(5), "Weekend Thanks", "Original content", "positive", false))

	result, err := repo.Update(context.Background(), 5, repository.TemplateUpdate{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Weekend Thanks", result.Name)
	assert.Equal(t, "Original content", result.Content)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByUsername_NotFound(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewUserRepository(mock)

	mock.ExpectQuery("SELECT .+ FROM users WHERE username").
		WithArgs("ghost").
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "password"}))

	result, err := repo.GetByUsername(context.Background(), "ghost")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
