package errorx

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"strategycoach/internal/types"
	"strategycoach/pkg/coach"
	"strategycoach/pkg/entry"
)

func TestHandler(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"code error", NewCodeError(http.StatusTeapot, "teapot"), http.StatusTeapot},
		{"bad request", BadRequest(errors.New("bad")), http.StatusBadRequest},
		{"disabled", coach.ErrDisabled, http.StatusServiceUnavailable},
		{"empty situation", coach.ErrEmptySituation, http.StatusBadRequest},
		{"empty name", entry.ErrEmptyName, http.StatusBadRequest},
		{"wrapped empty text", fmt.Errorf("add: %w", entry.ErrEmptyText), http.StatusBadRequest},
		{"generation", &coach.GenerationError{Err: errors.New("timeout")}, http.StatusBadGateway},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := Handler(context.Background(), tt.err)
			assert.Equal(t, tt.status, status)
			resp, ok := body.(types.ErrorResponse)
			assert.True(t, ok)
			assert.Equal(t, tt.status, resp.Code)
			assert.NotEmpty(t, resp.Message)
		})
	}
}
