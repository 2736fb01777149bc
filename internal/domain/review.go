package domain

// Review is the buyer's review of a product as reported by the marketplace
// API. At most one active review per product per buyer is assumed.
type Review struct {
	ReviewID    int64     `json:"reviewId"`
	ProductID   int64     `json:"productId"`
	ProductName string    `json:"productName"`
	Rating      int       `json:"rating"`
	Title       *string   `json:"title"`
	Comment     *string   `json:"comment"`
	CreatedAt   Timestamp `json:"createdAt"`
	UpdatedAt   Timestamp `json:"updatedAt"`
}

// ReviewDraft is the upstream create body
type ReviewDraft struct {
	ProductID int64   `json:"productId"`
	Rating    int     `json:"rating"`
	Title     *string `json:"title"`
	Comment   *string `json:"comment"`
}

// ReviewUpdate is the upstream update body, keyed by review id in the path
type ReviewUpdate struct {
	Rating  int     `json:"rating"`
	Title   *string `json:"title"`
	Comment *string `json:"comment"`
}
