package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NotFound("food", 7), http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("load: %w", NotFound("food", 7)), http.StatusNotFound},
		{"validation", Validation("name is required"), http.StatusBadRequest},
		{"conflict", Conflict("food %d already on the menu", 3), http.StatusConflict},
		{"configuration", Configuration("no pending status"), http.StatusInternalServerError},
		{"internal", Internal("compose menu", errors.New("boom")), http.StatusInternalServerError},
		{"internal around not found", Internal("compose menu", NotFound("food", 7)), http.StatusInternalServerError},
		{"plain", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(NotFound("food", 1)))
	assert.False(t, IsNotFound(Internal("compose menu", NotFound("food", 1))))
	assert.False(t, IsNotFound(errors.New("food 1 not found")))
}

func TestPublicMessageHidesInternals(t *testing.T) {
	err := Internal("price order", errors.New("pq: connection refused"))
	assert.NotContains(t, PublicMessage(err), "connection refused")
	assert.Equal(t, "food 4 not found", PublicMessage(NotFound("food", 4)))
}
