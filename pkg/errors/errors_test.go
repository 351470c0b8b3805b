package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	t.Run("with status code", func(t *testing.T) {
		err := NewStatus(404, "https://example.com/x")
		assert.Equal(t, "http_status error (code 404): unexpected status 404 for https://example.com/x", err.Error())
	})

	t.Run("without status code", func(t *testing.T) {
		err := New(ErrorTypeNetwork, "dial failed", nil)
		assert.Equal(t, "network error: dial failed", err.Error())
	})
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := New(ErrorTypeNetwork, "request failed", cause)

	assert.ErrorIs(t, err, cause)

	var typed *Error
	wrapped := fmt.Errorf("fetch profile: %w", err)
	assert.ErrorAs(t, wrapped, &typed)
	assert.Equal(t, ErrorTypeNetwork, typed.Type)
}

func TestTypeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{"nil", nil, ErrorTypeUnknown},
		{"plain", stderrors.New("boom"), ErrorTypeUnknown},
		{"typed", New(ErrorTypeParsing, "bad", nil), ErrorTypeParsing},
		{"wrapped", fmt.Errorf("outer: %w", NewStatus(500, "u")), ErrorTypeHTTPStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TypeOf(tt.err))
		})
	}
}

func TestIsSuccessStatus(t *testing.T) {
	assert.True(t, IsSuccessStatus(200))
	assert.True(t, IsSuccessStatus(204))
	assert.False(t, IsSuccessStatus(199))
	assert.False(t, IsSuccessStatus(301))
	assert.False(t, IsSuccessStatus(404))
	assert.False(t, IsSuccessStatus(503))
}
