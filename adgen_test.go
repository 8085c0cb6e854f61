package adgen

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adgenhq/adgen/application/service"
	"github.com/adgenhq/adgen/domain/campaign"
	"github.com/adgenhq/adgen/domain/workflow"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	client, err := New(
		WithDataDir(t.TempDir()),
		WithDatabaseURL("sqlite:///:memory:"),
		WithLogger(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))),
		// Keep the polling workers idle so ProcessPending drives the queue
		// deterministically.
		WithWorkerPollPeriod(time.Hour),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestClientEndToEnd(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	b, err := client.Brands.Create(ctx, service.CreateBrandParams{
		Name:            "Acme",
		PrimaryColorHex: "#FF8800",
		ToneOfVoice:     "bold",
	})
	require.NoError(t, err)

	c, err := client.Campaigns.Create(ctx, service.CreateCampaignParams{
		BrandID:        b.ID(),
		Name:           "Summer Launch",
		TargetRegion:   "FR",
		TargetAudience: "urban runners",
		Message:        "Run the city",
		Products: []service.CreateProductParams{
			{Name: "Trail Shoe", Description: "lightweight"},
		},
	})
	require.NoError(t, err)

	wf, err := client.Workflows.Trigger(ctx, c.ID())
	require.NoError(t, err)
	assert.Equal(t, workflow.StatusStarted, wf.Status())

	require.NoError(t, client.ProcessPending(ctx))

	done, err := client.Workflows.Get(ctx, wf.ID())
	require.NoError(t, err)
	assert.Equal(t, workflow.StatusComplete, done.Status())

	detail, err := client.Campaigns.Detail(ctx, c.ID())
	require.NoError(t, err)
	assert.Equal(t, campaign.StatusGenerated, detail.Campaign.Status())
	assert.Equal(t, "Test output", detail.Campaign.LocalizedMessage())

	// One product crossed with the three required ratios.
	require.Len(t, detail.Assets, 3)
	for _, v := range detail.Assets {
		assert.NotEmpty(t, v.URL)
	}

	// Re-triggering finds nothing left to generate.
	wf2, err := client.Workflows.Trigger(ctx, c.ID())
	require.NoError(t, err)
	require.NoError(t, client.ProcessPending(ctx))

	done2, err := client.Workflows.Get(ctx, wf2.ID())
	require.NoError(t, err)
	assert.Equal(t, workflow.StatusComplete, done2.Status())

	detail, err = client.Campaigns.Detail(ctx, c.ID())
	require.NoError(t, err)
	assert.Len(t, detail.Assets, 3)

	bundle, err := client.Bundles.Build(ctx, c.ID())
	require.NoError(t, err)
	assert.NotEmpty(t, bundle)
	assert.Equal(t, fmt.Sprintf("campaign_%d.zip", c.ID()), client.Bundles.Filename(c.ID()))
}

func TestClientCloseTwice(t *testing.T) {
	client, err := New(
		WithDataDir(t.TempDir()),
		WithDatabaseURL("sqlite:///:memory:"),
		WithWorkerPollPeriod(time.Hour),
	)
	require.NoError(t, err)

	require.NoError(t, client.Close())
	require.ErrorIs(t, client.Close(), ErrClientClosed)
}
