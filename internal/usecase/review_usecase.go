package usecase

import (
	"context"
	"strings"
	"time"

	"revshop-web/internal/domain"
	"revshop-web/pkg/cache"
	"revshop-web/pkg/logger"
)

const defaultRating = 5

// ReviewUsecase drives the review composer: it snapshots any existing review
// at open time, decides create-vs-update from that snapshot, and reloads the
// order list on success so review button labels flip from Add to Edit.
//
// The snapshot is deliberately not re-checked at submit time: a review changed
// elsewhere between open and submit is still updated under the id captured at
// open. Last write wins.
type ReviewUsecase struct {
	gateway   domain.MarketplaceGateway
	views     *OrderViewUsecase
	composers cache.CacheService
	ttl       time.Duration
}

func NewReviewUsecase(gateway domain.MarketplaceGateway, views *OrderViewUsecase, composers cache.CacheService, ttl time.Duration) *ReviewUsecase {
	return &ReviewUsecase{
		gateway:   gateway,
		views:     views,
		composers: composers,
		ttl:       ttl,
	}
}

// reviewComposerState is the open-composer context for a review, including the
// existing-review snapshot taken at open time
type reviewComposerState struct {
	ProductID   int64
	ProductName string
	Existing    *domain.Review
}

// OpenComposer looks up the buyer's existing review for the product and
// returns the pre-filled composer. Any previously open composer state for this
// session is discarded. A failed review fetch degrades to create mode.
func (u *ReviewUsecase) OpenComposer(ctx context.Context, token string, session *domain.Session, productID int64, productName string) *domain.ReviewComposerView {
	index, err := u.views.ReviewIndex(ctx, token)
	if err != nil {
		logger.Warn().Err(err).Msg("Review fetch failed, opening composer in create mode")
		index = map[int64]domain.Review{}
	}

	state := reviewComposerState{
		ProductID:   productID,
		ProductName: productName,
	}
	view := &domain.ReviewComposerView{
		ProductID:   productID,
		ProductName: productName,
		Mode:        "create",
		Rating:      defaultRating,
	}

	if existing, ok := index[productID]; ok {
		snapshot := existing
		state.Existing = &snapshot
		view.Mode = "update"
		view.Rating = existing.Rating
		if existing.Title != nil {
			view.Title = *existing.Title
		}
		if existing.Comment != nil {
			view.Comment = *existing.Comment
		}
	}

	u.composers.Set(composerKey(session), state, u.ttl)
	return view
}

// Submit validates and sends the review, then reloads the order list.
// The rating must be an integer in [1,5]; violations never reach the network.
// Blank title and comment are normalized to absent, not empty strings.
func (u *ReviewUsecase) Submit(ctx context.Context, token string, session *domain.Session, rating int, title, comment string) (*domain.OrderListView, error) {
	raw, ok := u.composers.Get(composerKey(session))
	if !ok {
		return nil, domain.ErrNoOpenComposer
	}
	state, ok := raw.(reviewComposerState)
	if !ok {
		return nil, domain.ErrNoOpenComposer
	}

	if rating < 1 || rating > 5 {
		return nil, domain.ErrInvalidRating
	}

	var titlePtr, commentPtr *string
	if trimmed := strings.TrimSpace(title); trimmed != "" {
		titlePtr = &trimmed
	}
	if trimmed := strings.TrimSpace(comment); trimmed != "" {
		commentPtr = &trimmed
	}

	var err error
	if state.Existing != nil {
		_, err = u.gateway.UpdateReview(ctx, token, state.Existing.ReviewID, domain.ReviewUpdate{
			Rating:  rating,
			Title:   titlePtr,
			Comment: commentPtr,
		})
	} else {
		_, err = u.gateway.CreateReview(ctx, token, domain.ReviewDraft{
			ProductID: state.ProductID,
			Rating:    rating,
			Title:     titlePtr,
			Comment:   commentPtr,
		})
	}
	if err != nil {
		return nil, err
	}

	u.composers.Delete(composerKey(session))
	return u.views.LoadOrders(ctx, token)
}
