package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/mertsakar/wantmart/internal/client/api"
	"github.com/mertsakar/wantmart/internal/client/request"
)

// CreateRequest runs the product-request creation form. Validation is
// field-scoped and happens before submission; the first invalid field
// blocks the submit and the entered values are kept for correction.
func (a *App) CreateRequest(ctx context.Context) error {
	if a.session.User() == nil {
		a.redirectToAuth(ctx)
		return api.ErrAuthRequired
	}

	var f request.Form
	var err error

	if f.Title, err = getSimpleText(a.reader, "Title", os.Stdout); err != nil {
		return err
	}
	if f.Description, err = getSimpleText(a.reader, "Describe what you are looking for", os.Stdout); err != nil {
		return err
	}

	fmt.Println("Categories:")
	for _, c := range request.Categories {
		fmt.Printf("  %d. %s\n", c.ID, c.Name)
	}
	if f.CategoryID, err = GetInt(a.reader, "Category", 1, os.Stdout); err != nil {
		fmt.Println("Please enter a category number.")
		return err
	}
	if f.Quantity, err = GetInt(a.reader, "Quantity", 1, os.Stdout); err != nil {
		fmt.Println("Please enter a whole number.")
		return err
	}
	if f.Price, err = GetFloat(a.reader, "Target price", 0, os.Stdout); err != nil {
		fmt.Println("Please enter a number.")
		return err
	}
	if f.Image, err = getSimpleText(a.reader, "Image URL", os.Stdout); err != nil {
		return err
	}

	for {
		created, err := a.requests.Create(ctx, f)
		if err == nil {
			fmt.Printf("Request created: %s (%s)\n", created.Title, created.ID)
			// Back to the listing, same as the web flow.
			a.ListProducts(ctx, "")
			return nil
		}

		var verr *request.ValidationError
		if errors.As(err, &verr) {
			fmt.Printf("%s: %s\n", verr.Field, verr.Fields[verr.Field])
			fixed, rerr := a.fixField(verr.Field, &f)
			if rerr != nil || !fixed {
				return err
			}
			continue
		}
		log.Printf("Could not create the request: %v", err)
		return err
	}
}

// fixField re-prompts for a single invalid field, leaving the rest of
// the form intact.
func (a *App) fixField(field string, f *request.Form) (bool, error) {
	var err error
	switch field {
	case "title":
		f.Title, err = getSimpleText(a.reader, "Title", os.Stdout)
	case "description":
		f.Description, err = getSimpleText(a.reader, "Describe what you are looking for", os.Stdout)
	case "category":
		f.CategoryID, err = GetInt(a.reader, "Category", 1, os.Stdout)
	case "quantity":
		f.Quantity, err = GetInt(a.reader, "Quantity", 1, os.Stdout)
	case "price":
		f.Price, err = GetFloat(a.reader, "Target price", 0, os.Stdout)
	case "image":
		f.Image, err = getSimpleText(a.reader, "Image URL", os.Stdout)
	default:
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
