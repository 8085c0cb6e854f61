package brand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adgenhq/adgen/internal/domain"
)

func TestNewBrand(t *testing.T) {
	b, err := NewBrand("Acme", "#FF8800")
	require.NoError(t, err)
	assert.Equal(t, "Acme", b.Name())
	assert.Equal(t, "#FF8800", b.PrimaryColorHex())
}

func TestNewBrandValidation(t *testing.T) {
	tests := []struct {
		name    string
		brand   string
		primary string
	}{
		{name: "empty name", brand: "", primary: "#FF8800"},
		{name: "missing hash", brand: "Acme", primary: "FF8800"},
		{name: "short hex", brand: "Acme", primary: "#F80"},
		{name: "not hex", brand: "Acme", primary: "#GGHHII"},
		{name: "empty color", brand: "Acme", primary: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBrand(tt.brand, tt.primary)
			require.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestWithSecondaryColorHex(t *testing.T) {
	b, err := NewBrand("Acme", "#FF8800")
	require.NoError(t, err)

	b, err = b.WithSecondaryColorHex("#00FF88")
	require.NoError(t, err)
	assert.Equal(t, "#00FF88", b.SecondaryColorHex())

	// Empty clears without error.
	b, err = b.WithSecondaryColorHex("")
	require.NoError(t, err)
	assert.Empty(t, b.SecondaryColorHex())

	_, err = b.WithSecondaryColorHex("cyan")
	require.ErrorIs(t, err, domain.ErrValidation)
}
