package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/utafrali/ReviewDeskGo/internal/repository"
)

// ExportService writes filtered reviews as CSV.
type ExportService struct {
	reviews repository.ReviewRepository
}

func NewExportService(reviews repository.ReviewRepository) *ExportService {
	return &ExportService{reviews: reviews}
}

var exportHeader = []string{"Date", "Customer", "Rating", "Review", "Response Status", "Response", "Response Date"}

// WriteCSV streams matching reviews to w, newest first. Quoting and
// escaping follow RFC 4180.
func (s *ExportService) WriteCSV(ctx context.Context, w io.Writer, filter repository.ReviewFilter) error {
	reviews, err := s.reviews.List(ctx, filter)
	if err != nil {
		return fmt.Errorf("list reviews for export: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, r := range reviews {
		response := ""
		if r.Response != nil {
			response = *r.Response
		}
		responseDate := ""
		if r.ResponseDate != nil {
			responseDate = r.ResponseDate.UTC().Format(time.RFC3339)
		}

		record := []string{
			r.DatePosted.UTC().Format(time.RFC3339),
			r.CustomerName,
			strconv.Itoa(r.Rating),
			r.Content,
			r.Status,
			response,
			responseDate,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
