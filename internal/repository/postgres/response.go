package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/utafrali/ReviewDeskGo/internal/domain"
)

// ResponseRepository stores response history in the responses table.
type ResponseRepository struct {
	db DB
}

func NewResponseRepository(db DB) *ResponseRepository {
	return &ResponseRepository{db: db}
}

func (r *ResponseRepository) Create(ctx context.Context, response *domain.Response) error {
	if response.CreatedAt.IsZero() {
		response.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO responses (review_id, content, tone, is_ai_generated, sent_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	err := r.db.QueryRow(ctx, query,
		response.ReviewID, response.Content, response.Tone,
		response.IsAIGenerated, response.SentAt, response.CreatedAt,
	).Scan(&response.ID)
	if err != nil {
		return fmt.Errorf("insert response: %w", err)
	}
	return nil
}

// ListByReview returns the response history for a review in the order the
// replies were recorded, oldest first.
func (r *ResponseRepository) ListByReview(ctx context.Context, reviewID int64) ([]domain.Response, error) {
	query := `
		SELECT id, review_id, content, tone, is_ai_generated, sent_at, created_at
		FROM responses
		WHERE review_id = $1
		ORDER BY created_at ASC, id ASC`

	rows, err := r.db.Query(ctx, query, reviewID)
	if err != nil {
		return nil, fmt.Errorf("list responses: %w", err)
	}
	defer rows.Close()

	responses := make([]domain.Response, 0)
	for rows.Next() {
		var resp domain.Response
		if err := rows.Scan(&resp.ID, &resp.ReviewID, &resp.Content, &resp.Tone,
			&resp.IsAIGenerated, &resp.SentAt, &resp.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan response: %w", err)
		}
		responses = append(responses, resp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate responses: %w", err)
	}
	return responses, nil
}
