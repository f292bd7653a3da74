// Package workflow implements the offer lifecycle for a product-request
// view: loading the request and its offers, gating offer visibility by
// viewer role, and submitting new offers with an optimistic local update
// followed by a reconciling refetch.
package workflow

import (
	"github.com/mertsakar/wantmart/internal/client/models"
)

// Phase is the state of a product-request view.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseLoaded
	PhaseNotFound
	PhaseDialogOpen
	PhaseSubmitting
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseNotFound:
		return "not_found"
	case PhaseDialogOpen:
		return "dialog_open"
	case PhaseSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}

// View is the per-product-request state. All mutation happens through
// Workflow methods on the single UI goroutine; the generation counter
// lets a late reconciliation detect that the view has moved on.
type View struct {
	phase   Phase
	product *models.Product
	offers  []models.Offer
	draft   float64
	gen     int
}

func (v *View) Phase() Phase             { return v.phase }
func (v *View) Product() *models.Product { return v.product }

// Offers returns the currently visible offer list. Between a submission
// and its reconciliation this includes the optimistic local entry.
func (v *View) Offers() []models.Offer { return v.offers }

// DraftAmount is the prefilled proposed amount while the dialog is open.
func (v *View) DraftAmount() float64 { return v.draft }

// OwnerID returns the product request owner's user id, or "" before the
// view is loaded.
func (v *View) OwnerID() string {
	if v.product == nil {
		return ""
	}
	return v.product.User.ID
}
