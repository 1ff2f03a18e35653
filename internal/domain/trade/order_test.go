package trade

import (
	"errors"
	"strings"
	"testing"

	"github.com/shoplytics/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrder_UnitPrice(t *testing.T) {
	t.Run("divides total price by quantity", func(t *testing.T) {
		o := Order{Quantity: 4, TotalPrice: decimal.NewFromInt(100)}
		assert.True(t, decimal.NewFromInt(25).Equal(o.UnitPrice()))
	})

	t.Run("returns zero for zero quantity", func(t *testing.T) {
		o := Order{Quantity: 0, TotalPrice: decimal.NewFromInt(100)}
		assert.True(t, o.UnitPrice().IsZero())
	})
}

func TestNewSearchTerm(t *testing.T) {
	t.Run("numeric token carries an id", func(t *testing.T) {
		term, err := NewSearchTerm(" 42 ")
		require.NoError(t, err)
		assert.Equal(t, "42", term.Text)
		require.NotNil(t, term.ID)
		assert.Equal(t, int64(42), *term.ID)
	})

	t.Run("text token has no id", func(t *testing.T) {
		term, err := NewSearchTerm("Laptop")
		require.NoError(t, err)
		assert.Equal(t, "Laptop", term.Text)
		assert.Nil(t, term.ID)
	})

	t.Run("blank token is invalid", func(t *testing.T) {
		_, err := NewSearchTerm("   ")
		assert.True(t, errors.Is(err, shared.ErrInvalidInput))
	})

	t.Run("token longer than 255 runes is invalid", func(t *testing.T) {
		_, err := NewSearchTerm(strings.Repeat("é", 256))
		assert.True(t, errors.Is(err, shared.ErrInvalidInput))

		_, err = NewSearchTerm(strings.Repeat("é", 255))
		assert.NoError(t, err)
	})
}
