package submission

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"claim-engine/internal/model"
)

func TestClientSubmit(t *testing.T) {
	var got model.SubmissionPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	payload := Build(completedForm())
	err := NewClient(srv.URL, nil).Submit(context.Background(), payload)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestClientSubmitRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := NewClient(srv.URL, nil).Submit(context.Background(), Build(completedForm()))
	assert.ErrorIs(t, err, ErrSubmissionFailed)
}

func TestClientSubmitTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	err := NewClient(srv.URL, nil).Submit(context.Background(), Build(completedForm()))
	assert.ErrorIs(t, err, ErrSubmissionFailed)
}
