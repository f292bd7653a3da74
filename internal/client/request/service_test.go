package request

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mertsakar/wantmart/internal/client/api"
	"github.com/mertsakar/wantmart/internal/client/models"
)

type fakeProducts struct {
	calls  int
	fields api.ProductFields
	err    error
}

func (f *fakeProducts) CreateProduct(_ context.Context, fields api.ProductFields) (*models.Product, error) {
	f.calls++
	f.fields = fields
	if f.err != nil {
		return nil, f.err
	}
	return &models.Product{ID: "p1", Title: fields.Title}, nil
}

type fakeViewer struct {
	user *models.User
}

func (f *fakeViewer) User() *models.User { return f.user }

func TestCreate_Unauthenticated(t *testing.T) {
	products := &fakeProducts{}
	s := NewService(products, &fakeViewer{})

	_, err := s.Create(context.Background(), validForm())
	require.ErrorIs(t, err, api.ErrAuthRequired)
	assert.Zero(t, products.calls, "no network call without a viewer")
}

func TestCreate_InvalidFormBlocksSubmission(t *testing.T) {
	products := &fakeProducts{}
	s := NewService(products, &fakeViewer{user: &models.User{ID: "u1"}})

	f := validForm()
	f.Title = "abc"
	f.Price = 0

	_, err := s.Create(context.Background(), f)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "title", verr.Field, "the first field in form order blocks")
	assert.Contains(t, verr.Fields, "price")
	assert.Zero(t, products.calls)
}

func TestCreate_SubmitsValidForm(t *testing.T) {
	products := &fakeProducts{}
	s := NewService(products, &fakeViewer{user: &models.User{ID: "u1"}})

	p, err := s.Create(context.Background(), validForm())
	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)

	assert.Equal(t, 1, products.calls)
	assert.Equal(t, "iPhone 14 Pro Max", products.fields.Title)
	assert.Equal(t, 1, products.fields.CategoryID)
	assert.Equal(t, float64(5500), products.fields.Price)
}
