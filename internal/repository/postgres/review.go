package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/utafrali/ReviewDeskGo/internal/domain"
	"github.com/utafrali/ReviewDeskGo/internal/repository"
	apperrors "github.com/utafrali/ReviewDeskGo/pkg/errors"
)

// ReviewRepository stores reviews in the reviews table.
type ReviewRepository struct {
	db DB
}

func NewReviewRepository(db DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

const reviewColumns = `id, customer_name, customer_initials, rating, content, date_posted, status, response, response_date, platform, category, source_id`

func scanReview(row pgx.Row) (*domain.Review, error) {
	var r domain.Review
	err := row.Scan(&r.ID, &r.CustomerName, &r.CustomerInitials, &r.Rating, &r.Content, &r.DatePosted,
		&r.Status, &r.Response, &r.ResponseDate, &r.Platform, &r.Category, &r.SourceID)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	if review.Status == "" {
		review.Status = domain.StatusPending
	}
	if review.DatePosted.IsZero() {
		review.DatePosted = time.Now().UTC()
	}

	query := `
		INSERT INTO reviews (customer_name, customer_initials, rating, content, date_posted, status, response, response_date, platform, category, source_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	err := r.db.QueryRow(ctx, query,
		review.CustomerName, review.CustomerInitials, review.Rating, review.Content,
		review.DatePosted, review.Status, review.Response, review.ResponseDate,
		review.Platform, review.Category, review.SourceID,
	).Scan(&review.ID)
	if err != nil {
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE id = $1`

	review, err := scanReview(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("review", id)
		}
		return nil, fmt.Errorf("get review: %w", err)
	}
	return review, nil
}

func (r *ReviewRepository) GetBySourceID(ctx context.Context, sourceID string) (*domain.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE source_id = $1`

	review, err := scanReview(r.db.QueryRow(ctx, query, sourceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFoundMsg("review with source id " + sourceID + " not found")
		}
		return nil, fmt.Errorf("get review by source id: %w", err)
	}
	return review, nil
}

func (r *ReviewRepository) List(ctx context.Context, filter repository.ReviewFilter) ([]domain.Review, error) {
	var conditions []string
	var args []any

	if filter.Rating != nil {
		args = append(args, *filter.Rating)
		conditions = append(conditions, fmt.Sprintf("rating = $%d", len(args)))
	}
	if filter.Status != "" && filter.Status != "all" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		args = append(args, "%"+search+"%")
		conditions = append(conditions, fmt.Sprintf("(customer_name ILIKE $%d OR content ILIKE $%d)", len(args), len(args)))
	}
	if cutoff, ok := rangeCutoff(filter.DateRange); ok {
		args = append(args, cutoff)
		conditions = append(conditions, fmt.Sprintf("date_posted >= $%d", len(args)))
	}

	query := `SELECT ` + reviewColumns + ` FROM reviews`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY date_posted DESC, id DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	reviews := make([]domain.Review, 0)
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, *review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reviews: %w", err)
	}
	return reviews, nil
}

func (r *ReviewRepository) UpdateResponse(ctx context.Context, id int64, update repository.ResponseUpdate) (*domain.Review, error) {
	query := `
		UPDATE reviews
		SET response = $1, status = $2, response_date = $3
		WHERE id = $4
		RETURNING ` + reviewColumns

	review, err := scanReview(r.db.QueryRow(ctx, query, update.Response, update.Status, update.ResponseDate, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("review", id)
		}
		return nil, fmt.Errorf("update review response: %w", err)
	}
	return review, nil
}

func rangeCutoff(dateRange string) (time.Time, bool) {
	now := time.Now().UTC()
	switch dateRange {
	case "last-7-days":
		return now.AddDate(0, 0, -7), true
	case "last-30-days":
		return now.AddDate(0, 0, -30), true
	case "last-3-months":
		return now.AddDate(0, 0, -90), true
	default:
		return time.Time{}, false
	}
}
