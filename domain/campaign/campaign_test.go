package campaign

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adgenhq/adgen/internal/domain"
)

func TestNewCampaign(t *testing.T) {
	c, err := NewCampaign(1, "Summer Launch", "US", "runners", "Run faster")
	require.NoError(t, err)
	assert.Equal(t, StatusDraft, c.Status())
	assert.Empty(t, c.LocalizedMessage())
}

func TestNewCampaignValidation(t *testing.T) {
	tests := []struct {
		name    string
		brandID int64
		cname   string
		region  string
		message string
	}{
		{name: "no brand", brandID: 0, cname: "x", region: "US", message: "m"},
		{name: "no name", brandID: 1, cname: "", region: "US", message: "m"},
		{name: "no region", brandID: 1, cname: "x", region: "", message: "m"},
		{name: "no message", brandID: 1, cname: "x", region: "US", message: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCampaign(tt.brandID, tt.cname, tt.region, "aud", tt.message)
			require.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestPostMessage(t *testing.T) {
	c, err := NewCampaign(1, "Launch", "FR", "runners", "Run faster")
	require.NoError(t, err)

	// Without a localized message the original is published.
	assert.Equal(t, "Run faster", c.PostMessage())

	localized := c.WithLocalizedMessage("Courez plus vite")
	assert.Equal(t, "Courez plus vite", localized.PostMessage())
	assert.Equal(t, "Run faster", localized.Message())
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "draft", StatusDraft.String())
	assert.Equal(t, "generated", StatusGenerated.String())
	assert.Equal(t, "failed", StatusFailed.String())
}
