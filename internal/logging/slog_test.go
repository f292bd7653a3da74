package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "warn")
	ctx := context.Background()

	log.Info(ctx, "should not appear")
	assert.Zero(t, buf.Len())

	log.Warn(ctx, "should appear")
	assert.Contains(t, buf.String(), "should appear")
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "verbose")
	ctx := context.Background()

	log.Debug(ctx, "hidden")
	assert.Zero(t, buf.Len())

	log.Info(ctx, "visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestWith_CarriesAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "info").With("handler", "offer_create")

	log.Info(context.Background(), "offer_created", "amount", 850)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "offer_create", entry["handler"])
	assert.Equal(t, float64(850), entry["amount"])
	assert.Equal(t, "offer_created", entry["msg"])
}
