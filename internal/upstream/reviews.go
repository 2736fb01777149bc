package upstream

import (
	"context"
	"fmt"
	"net/http"

	"revshop-web/internal/domain"
)

// MyReviews fetches all of the buyer's product reviews
func (c *Client) MyReviews(ctx context.Context, token string) ([]domain.Review, error) {
	var reviews []domain.Review
	if err := c.do(ctx, token, http.MethodGet, "/reviews/my", nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// CreateReview creates the buyer's review for a product
func (c *Client) CreateReview(ctx context.Context, token string, draft domain.ReviewDraft) (*domain.Review, error) {
	var review domain.Review
	if err := c.do(ctx, token, http.MethodPost, "/reviews", draft, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

// UpdateReview replaces an existing review, keyed by its id
func (c *Client) UpdateReview(ctx context.Context, token string, reviewID int64, update domain.ReviewUpdate) (*domain.Review, error) {
	path := fmt.Sprintf("/reviews/%d", reviewID)
	var review domain.Review
	if err := c.do(ctx, token, http.MethodPut, path, update, &review); err != nil {
		return nil, err
	}
	return &review, nil
}
