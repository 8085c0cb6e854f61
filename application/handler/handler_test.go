package handler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adgenhq/adgen/domain/task"
)

type noopHandler struct{}

func (noopHandler) Execute(context.Context, map[string]any) error { return nil }

func TestRegistry(t *testing.T) {
	registry := NewRegistry()
	op := task.OperationGenerateCampaign

	assert.False(t, registry.HasHandler(op))
	_, err := registry.Handler(op)
	require.ErrorIs(t, err, ErrNoHandler)

	registry.Register(op, noopHandler{})
	assert.True(t, registry.HasHandler(op))

	h, err := registry.Handler(op)
	require.NoError(t, err)
	assert.NotNil(t, h)
	assert.Equal(t, []task.Operation{op}, registry.Operations())
}

func TestExtractInt64(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]any
		want    int64
		wantErr bool
	}{
		{name: "int64", payload: map[string]any{"id": int64(7)}, want: 7},
		{name: "int", payload: map[string]any{"id": 7}, want: 7},
		{name: "float64 from json", payload: map[string]any{"id": float64(7)}, want: 7},
		{name: "missing", payload: map[string]any{}, wantErr: true},
		{name: "wrong type", payload: map[string]any{"id": "seven"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractInt64(tt.payload, "id")
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
