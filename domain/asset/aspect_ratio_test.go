package asset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredAspectRatios(t *testing.T) {
	ratios := RequiredAspectRatios()
	require.Len(t, ratios, 3)
	assert.Equal(t, []AspectRatio{RatioSquare, RatioPortrait, RatioLandscape}, ratios)

	// Order must be stable across calls.
	assert.Equal(t, ratios, RequiredAspectRatios())
}

func TestParseAspectRatio(t *testing.T) {
	tests := []struct {
		input   string
		want    AspectRatio
		wantErr bool
	}{
		{input: "1:1", want: RatioSquare},
		{input: "9:16", want: RatioPortrait},
		{input: "16:9", want: RatioLandscape},
		{input: "4:3", wantErr: true},
		{input: "1x1", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAspectRatio(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPathSegment(t *testing.T) {
	assert.Equal(t, "1x1", RatioSquare.PathSegment())
	assert.Equal(t, "9x16", RatioPortrait.PathSegment())
	assert.Equal(t, "16x9", RatioLandscape.PathSegment())
}
