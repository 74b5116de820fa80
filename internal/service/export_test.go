package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/utafrali/ReviewDeskGo/internal/domain"
	"github.com/utafrali/ReviewDeskGo/internal/repository"
)

func TestExportService_WriteCSV(t *testing.T) {
	posted := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	responded := time.Date(2026, 2, 2, 9, 30, 0, 0, time.UTC)
	response := `Thanks for the "kind" words!`

	reviews := new(mockReviewRepo)
	reviews.On("List", mock.Anything, repository.ReviewFilter{}).Return([]domain.Review{
		{
			ID: 1, CustomerName: "Sarah Miller", Rating: 5,
			Content:    `Said it was "the best", will return`,
			DatePosted: posted, Status: domain.StatusResponded,
			Response: &response, ResponseDate: &responded,
		},
		{
			ID: 2, CustomerName: "John Davis", Rating: 4,
			Content: "Good food", DatePosted: posted, Status: domain.StatusPending,
		},
	}, nil)

	var buf bytes.Buffer
	svc := NewExportService(reviews)
	require.NoError(t, svc.WriteCSV(context.Background(), &buf, repository.ReviewFilter{}))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, exportHeader, records[0])
	assert.Equal(t, "2026-02-01T10:00:00Z", records[1][0])
	assert.Equal(t, "Sarah Miller", records[1][1])
	assert.Equal(t, "5", records[1][2])
	assert.Equal(t, `Said it was "the best", will return`, records[1][3])
	assert.Equal(t, domain.StatusResponded, records[1][4])
	assert.Equal(t, response, records[1][5])
	assert.Equal(t, "2026-02-02T09:30:00Z", records[1][6])

	// pending review has empty response fields
	assert.Equal(t, "", records[2][5])
	assert.Equal(t, "", records[2][6])
}

func TestExportService_WriteCSV_QuotesEmbeddedQuotes(t *testing.T) {
	reviews := new(mockReviewRepo)
	reviews.On("List", mock.Anything, repository.ReviewFilter{}).Return([]domain.Review{
		{ID: 1, CustomerName: "Q", Rating: 3, Content: `he said "wow"`, DatePosted: time.Now(), Status: domain.StatusPending},
	}, nil)

	var buf bytes.Buffer
	svc := NewExportService(reviews)
	require.NoError(t, svc.WriteCSV(context.Background(), &buf, repository.ReviewFilter{}))

	assert.Contains(t, buf.String(), `"he said ""wow"""`)
}

func TestExportService_WriteCSV_EmptyStoreStillWritesHeader(t *testing.T) {
	reviews := new(mockReviewRepo)
	reviews.On("List", mock.Anything, repository.ReviewFilter{}).Return([]domain.Review{}, nil)

	var buf bytes.Buffer
	svc := NewExportService(reviews)
	require.NoError(t, svc.WriteCSV(context.Background(), &buf, repository.ReviewFilter{}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 1)
	assert.Contains(t, lines[0], "Response Status")
}
