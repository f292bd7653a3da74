package models

// Offer statuses as reported by the backend. New offers start as pending.
const (
	OfferStatusPending  = "pending"
	OfferStatusAccepted = "accepted"
	OfferStatusRejected = "rejected"
)

// OfferUser identifies the user who submitted an offer.
type OfferUser struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

// Offer is a bid submitted against a product request. Amount is always
// positive; whether it is shown to a given viewer is decided by the
// workflow layer, not here.
type Offer struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId,omitempty"`
	User      OfferUser `json:"user"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status,omitempty"`
	CreatedAt string    `json:"created_at"`
}
