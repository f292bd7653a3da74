package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/mertsakar/wantmart/internal/client/api"
	"github.com/mertsakar/wantmart/internal/client/workflow"
)

// MakeOffer runs the dialog flow for one product request: open (with the
// 90% prefill), prompt for the amount, submit, and show the merged list.
// An unauthenticated viewer is redirected into the login flow before any
// offer call is made.
func (a *App) MakeOffer(ctx context.Context, productID string) error {
	v, err := a.flow.Load(ctx, productID)
	if err != nil {
		log.Printf("error loading product: %v", err)
		return err
	}
	if v.Phase() == workflow.PhaseNotFound {
		fmt.Println("Product not found.")
		return nil
	}

	prefill, err := a.flow.OpenDialog(v)
	if err != nil {
		switch {
		case errors.Is(err, api.ErrAuthRequired):
			a.redirectToAuth(ctx)
		case errors.Is(err, workflow.ErrOwnRequest):
			fmt.Println("You cannot offer on your own request.")
		default:
			log.Printf("error: %v", err)
		}
		return err
	}

	for {
		amount, err := GetFloat(a.reader, "Offer amount", prefill, os.Stdout)
		if err != nil {
			var numErr *strconv.NumError
			if errors.As(err, &numErr) {
				fmt.Println("Please enter a valid number.")
				continue
			}
			// Read failure, not a typo; the input is gone.
			a.flow.CloseDialog(v)
			return err
		}

		if err := a.flow.Submit(ctx, v, amount); err != nil {
			if errors.Is(err, workflow.ErrInvalidAmount) {
				fmt.Println(err.Error())
				continue
			}
			// The dialog stays open; let the user decide whether to retry.
			fmt.Printf("Offer failed: %v\n", err)
			retry, rerr := getSimpleText(a.reader, "Try again? (y/n)", os.Stdout)
			if rerr != nil || retry != "y" {
				a.flow.CloseDialog(v)
				return err
			}
			continue
		}
		break
	}

	fmt.Println("Offer submitted!")
	for _, row := range a.flow.Rows(v) {
		fmt.Printf("  %-20s  %s  %s\n", row.Username, row.Amount, row.CreatedAt)
	}
	return nil
}

// MyOffers lists the offers received on the viewer's own requests,
// including their status.
func (a *App) MyOffers(ctx context.Context) error {
	u := a.session.User()
	if u == nil {
		a.redirectToAuth(ctx)
		return api.ErrAuthRequired
	}

	offers, err := a.offers.ListOffersForOwner(ctx, u.ID)
	if err != nil {
		log.Printf("error loading offers: %v", err)
		return err
	}
	if len(offers) == 0 {
		fmt.Println("No offers on your requests yet.")
		return nil
	}
	for _, o := range offers {
		fmt.Printf("  %-20s  %.2f  %-8s  %s\n", o.User.Username, o.Amount, o.Status, o.CreatedAt)
	}
	return nil
}
