package utils

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUserIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, "alice@example.com")

	userID, ok := GetUserIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "alice@example.com", userID)
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	_, ok := GetUserIDFromContext(context.Background())
	assert.False(t, ok)
}

func TestGetUserIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, 42)

	_, ok := GetUserIDFromContext(ctx)
	assert.False(t, ok)
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	payload := map[string]string{"message": "ok"}
	_, err := WriteJSON(rec, payload, 201)
	require.NoError(t, err)

	assert.Equal(t, 201, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, payload, got)
}

func TestWriteJSON_MarshalError(t *testing.T) {
	rec := httptest.NewRecorder()

	// channels are not JSON-serialisable
	_, err := WriteJSON(rec, make(chan int), 200)
	require.Error(t, err)
	assert.Equal(t, 500, rec.Code)
}
