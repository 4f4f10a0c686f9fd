package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	ve := &ValidationError{}
	assert.NoError(t, ve.Err())

	ve.Add("a", "first")
	ve.AddWithData("b", "second", map[string]any{"Slot": "x"})

	err := fmt.Errorf("create room: %w", ve.Err())
	assert.True(t, errors.Is(err, ErrValidation))

	var got *ValidationError
	assert.True(t, errors.As(err, &got))
	assert.Equal(t, []string{"first", "second"}, got.Messages())
	assert.True(t, got.Has("b"))
	assert.False(t, got.Has("c"))
	assert.Equal(t, "first; second", got.Error())
}

func TestPaginationParams(t *testing.T) {
	tests := []struct {
		params     PaginationParams
		wantOffset int
		wantLimit  int
	}{
		{PaginationParams{Page: 1, PageSize: 20}, 0, 20},
		{PaginationParams{Page: 3, PageSize: 20}, 40, 20},
		{PaginationParams{Page: 0, PageSize: 10}, 0, 10},
		{PaginationParams{Page: 2, PageSize: -1}, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.wantOffset, tt.params.Offset(), "offset for %+v", tt.params)
		assert.Equal(t, tt.wantLimit, tt.params.Limit(), "limit for %+v", tt.params)
	}
}
