package workflow

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/mertsakar/wantmart/internal/client/api"
	"github.com/mertsakar/wantmart/internal/client/models"
	"github.com/mertsakar/wantmart/internal/logging"
)

var (
	// ErrOwnRequest means the viewer owns the product request; owners
	// cannot offer against their own requests.
	ErrOwnRequest = errors.New("cannot offer on your own request")

	// ErrInvalidAmount means the proposed amount is not a finite number
	// greater than zero. Checked before any network call.
	ErrInvalidAmount = errors.New("offer amount must be greater than zero")

	// ErrDialogNotOpen means Submit was called outside the dialog flow.
	ErrDialogNotOpen = errors.New("offer dialog is not open")
)

const createdAtLayout = "2006-01-02 15:04:05"

// ProductAPI is the slice of the product client the workflow needs.
type ProductAPI interface {
	GetProduct(ctx context.Context, id string) (*models.Product, error)
}

// OfferAPI is the slice of the offer client the workflow needs.
type OfferAPI interface {
	CreateOffer(ctx context.Context, productID string, amount float64) (*models.Offer, error)
	ListOffersForOwner(ctx context.Context, ownerID string) ([]models.Offer, error)
}

// ViewerSource yields the currently authenticated user, or nil.
// The session store satisfies it.
type ViewerSource interface {
	User() *models.User
}

// Workflow drives product-request views. It is not safe for concurrent
// use; all calls are expected on the UI goroutine.
type Workflow struct {
	products ProductAPI
	offers   OfferAPI
	viewer   ViewerSource
	log      logging.Logger

	// test seams
	now   func() time.Time
	newID func() string
}

func New(products ProductAPI, offers OfferAPI, viewer ViewerSource, log logging.Logger) *Workflow {
	return &Workflow{
		products: products,
		offers:   offers,
		viewer:   viewer,
		log:      log,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Load fetches the product request and, when a viewer is authenticated
// and the owner is known, the offers scoped to the owning user. A missing
// product yields a NotFound view, not an error.
//
// The offer listing is keyed by the owner's user id rather than the
// product id, matching the backend contract; see ListOffersForOwner.
func (w *Workflow) Load(ctx context.Context, productID string) (*View, error) {
	v := &View{phase: PhaseLoading}

	p, err := w.products.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			v.phase = PhaseNotFound
			return v, nil
		}
		return nil, err
	}
	v.product = p

	if w.viewer.User() != nil && p.User.ID != "" {
		offers, err := w.offers.ListOffersForOwner(ctx, p.User.ID)
		if err != nil {
			w.log.Warn(ctx, "offer list fetch failed", "owner_id", p.User.ID, "error", err)
		} else {
			v.offers = offers
		}
	}

	v.phase = PhaseLoaded
	return v, nil
}

// IsOwner reports whether the current viewer owns the viewed request.
func (w *Workflow) IsOwner(v *View) bool {
	u := w.viewer.User()
	return u != nil && v.product != nil && u.ID == v.product.User.ID
}

// OpenDialog transitions the view into the offer dialog and returns the
// prefilled amount: 90% of the listed price, floored to an integer. The
// prefill is a convenience default, not a constraint on the submission.
//
// Returns api.ErrAuthRequired for an unauthenticated viewer (the caller
// should redirect to the auth entry point) and ErrOwnRequest for the
// request owner, whose offer affordance is disabled outright.
func (w *Workflow) OpenDialog(v *View) (float64, error) {
	if v.phase != PhaseLoaded {
		return 0, ErrDialogNotOpen
	}
	if w.viewer.User() == nil {
		return 0, api.ErrAuthRequired
	}
	if w.IsOwner(v) {
		return 0, ErrOwnRequest
	}

	v.draft = math.Floor(v.product.Price * 0.9)
	v.phase = PhaseDialogOpen
	return v.draft, nil
}

// CloseDialog abandons the dialog without submitting.
func (w *Workflow) CloseDialog(v *View) {
	if v.phase == PhaseDialogOpen {
		v.phase = PhaseLoaded
	}
}

// Submit sends the offer and applies the two-phase update: the locally
// constructed offer is appended immediately, then the owner-scoped list
// is refetched and replaces local state. A reconciliation failure is
// logged and the optimistic entry stands.
//
// On error the dialog stays open so the viewer can retry; the submitting
// state is always cleared in the deferred step.
func (w *Workflow) Submit(ctx context.Context, v *View, amount float64) (err error) {
	if v.phase != PhaseDialogOpen {
		return ErrDialogNotOpen
	}

	u := w.viewer.User()
	if u == nil {
		return api.ErrAuthRequired
	}
	if w.IsOwner(v) {
		return ErrOwnRequest
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return ErrInvalidAmount
	}

	v.phase = PhaseSubmitting
	defer func() {
		if err != nil {
			v.phase = PhaseDialogOpen
		} else {
			v.phase = PhaseLoaded
		}
	}()

	gen := v.gen

	if _, err = w.offers.CreateOffer(ctx, v.product.ID, amount); err != nil {
		return err
	}

	v.offers = append(v.offers, models.Offer{
		ID:        w.newID(),
		ProductID: v.product.ID,
		User:      models.OfferUser{ID: u.ID, Username: u.DisplayName()},
		Amount:    amount,
		Status:    models.OfferStatusPending,
		CreatedAt: w.now().Format(createdAtLayout),
	})

	fresh, listErr := w.offers.ListOffersForOwner(ctx, v.product.User.ID)
	if listErr != nil {
		w.log.Warn(ctx, "offer reconciliation failed, keeping optimistic entry",
			"product_id", v.product.ID, "error", listErr)
		return nil
	}
	if v.gen == gen {
		v.offers = fresh
	}
	return nil
}

// Refresh refetches the owner-scoped offer list and invalidates any
// in-flight reconciliation from an earlier submission.
func (w *Workflow) Refresh(ctx context.Context, v *View) error {
	if v.product == nil || w.viewer.User() == nil {
		return nil
	}
	v.gen++
	offers, err := w.offers.ListOffersForOwner(ctx, v.product.User.ID)
	if err != nil {
		return err
	}
	v.offers = offers
	return nil
}
