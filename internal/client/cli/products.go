package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/mertsakar/wantmart/internal/client/workflow"
)

// ListProducts prints the open product requests, optionally filtered by
// category slug.
func (a *App) ListProducts(ctx context.Context, category string) {
	products, err := a.products.ListProducts(ctx, category)
	if err != nil {
		log.Printf("error loading products: %v", err)
		return
	}
	if len(products) == 0 {
		fmt.Println("No product requests found.")
		return
	}
	for _, p := range products {
		fmt.Printf("%s  %-30s  %s  qty %d  wants %.2f\n",
			p.ID, p.Title, p.Category.Name, p.Quantity, p.Price)
	}
}

// ViewProduct shows a single product request and its offers with the
// visibility rules applied for the current viewer.
func (a *App) ViewProduct(ctx context.Context, id string) {
	v, err := a.flow.Load(ctx, id)
	if err != nil {
		log.Printf("error loading product: %v", err)
		return
	}
	if v.Phase() == workflow.PhaseNotFound {
		fmt.Println("Product not found.")
		return
	}

	p := v.Product()
	fmt.Printf("%s\nRequested by: %s\nCategory: %s\nQuantity: %d\nTarget price: %.2f\n%s\n",
		p.Title, p.User.Username, p.Category.Name, p.Quantity, p.Price, p.Description)

	rows := a.flow.Rows(v)
	if len(rows) == 0 {
		fmt.Println("\nNo offers yet.")
	} else {
		fmt.Printf("\nOffers (%d):\n", len(rows))
		for _, row := range rows {
			line := fmt.Sprintf("  %-20s  %s  %s", row.Username, row.Amount, row.CreatedAt)
			if row.CanAccept {
				line += "  [accept available]"
			}
			fmt.Println(line)
		}
	}

	if a.flow.IsOwner(v) {
		fmt.Println("\nThis is your request; you cannot offer on it.")
	} else {
		fmt.Printf("\nRun 'offer %s' to make an offer.\n", p.ID)
	}
}
