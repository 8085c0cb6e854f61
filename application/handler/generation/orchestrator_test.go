package generation

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adgenhq/adgen/domain/asset"
	"github.com/adgenhq/adgen/domain/brand"
	"github.com/adgenhq/adgen/domain/campaign"
	"github.com/adgenhq/adgen/domain/product"
	"github.com/adgenhq/adgen/domain/workflow"
	"github.com/adgenhq/adgen/infrastructure/persistence"
	"github.com/adgenhq/adgen/infrastructure/provider"
	"github.com/adgenhq/adgen/infrastructure/storage"
	"github.com/adgenhq/adgen/internal/database"
	"github.com/adgenhq/adgen/internal/testdb"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// countingImageGenerator wraps an ImageGenerator and counts calls,
// optionally failing every unit at one aspect ratio.
type countingImageGenerator struct {
	inner     provider.ImageGenerator
	failRatio asset.AspectRatio

	mu    sync.Mutex
	calls int
}

func (g *countingImageGenerator) Generate(
	ctx context.Context,
	prompt string,
	ratio asset.AspectRatio,
	refImages [][]byte,
) (provider.ImageResult, error) {
	g.mu.Lock()
	g.calls++
	g.mu.Unlock()

	if g.failRatio != "" && ratio == g.failRatio {
		return provider.ImageResult{}, fmt.Errorf("backend rejected ratio %s", ratio)
	}
	return g.inner.Generate(ctx, prompt, ratio, refImages)
}

func (g *countingImageGenerator) Calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

type fixture struct {
	db         database.Database
	blobs      *storage.MemoryStore
	campaignID int64
	workflowID int64
	productIDs []int64
}

// newFixture seeds a brand, a campaign in the given region with
// productCount linked products, and a started workflow.
func newFixture(t *testing.T, region string, productCount int) fixture {
	t.Helper()
	ctx := context.Background()
	db := testdb.New(t)

	brands := persistence.NewBrandStore(db)
	products := persistence.NewProductStore(db)
	campaigns := persistence.NewCampaignStore(db)
	workflows := persistence.NewWorkflowStore(db)

	b, err := brand.NewBrand("Acme", "#FF8800")
	require.NoError(t, err)
	savedBrand, err := brands.Save(ctx, b.WithToneOfVoice("bold"))
	require.NoError(t, err)

	var productIDs []int64
	for i := range productCount {
		p, err := product.NewProduct(fmt.Sprintf("Product %d", i+1), "a fine product", nil)
		require.NoError(t, err)
		saved, err := products.Save(ctx, p)
		require.NoError(t, err)
		productIDs = append(productIDs, saved.ID())
	}

	c, err := campaign.NewCampaign(savedBrand.ID(), "Launch", region, "runners", "Run the city")
	require.NoError(t, err)
	savedCampaign, err := campaigns.Save(ctx, c)
	require.NoError(t, err)
	require.NoError(t, campaigns.LinkProducts(ctx, savedCampaign.ID(), productIDs))

	wf, err := workflow.NewWorkflow(savedCampaign.ID())
	require.NoError(t, err)
	savedWorkflow, err := workflows.Save(ctx, wf)
	require.NoError(t, err)

	return fixture{
		db:         db,
		blobs:      storage.NewMemoryStore(),
		campaignID: savedCampaign.ID(),
		workflowID: savedWorkflow.ID(),
		productIDs: productIDs,
	}
}

func TestResolverFullCrossProduct(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "US", 2)

	resolver := NewResolver(
		persistence.NewCampaignStore(f.db),
		persistence.NewProductStore(f.db),
		persistence.NewAssetStore(f.db),
	)

	units, err := resolver.Resolve(ctx, f.campaignID)
	require.NoError(t, err)
	assert.Len(t, units, 6)

	// Resolution is a pure read; a second pass yields the same set.
	again, err := resolver.Resolve(ctx, f.campaignID)
	require.NoError(t, err)
	assert.Equal(t, units, again)
}

func TestResolverExistingCreativeSatisfiesUnit(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "US", 2)
	assets := persistence.NewAssetStore(f.db)

	// An uploaded creative covers the pair as well as a generated one.
	uploaded, err := asset.NewUploadedAsset(asset.TypeCreative, "campaign/up.png")
	require.NoError(t, err)
	_, err = assets.Save(ctx, uploaded.
		WithOwners(0, f.campaignID, f.productIDs[0]).
		WithAspectRatio(asset.RatioSquare))
	require.NoError(t, err)

	resolver := NewResolver(
		persistence.NewCampaignStore(f.db),
		persistence.NewProductStore(f.db),
		assets,
	)

	units, err := resolver.Resolve(ctx, f.campaignID)
	require.NoError(t, err)
	assert.Len(t, units, 5)
	for _, u := range units {
		if u.Product.ID() == f.productIDs[0] {
			assert.NotEqual(t, asset.RatioSquare, u.Ratio)
		}
	}
}

func TestOrchestratorRunSuccess(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "FR", 2)

	image := &countingImageGenerator{inner: provider.NewPlaceholderImageGenerator()}
	orch := NewOrchestrator(f.db, f.blobs, provider.NewDummyTextGenerator(), image, testLogger())

	require.NoError(t, orch.Run(ctx, f.workflowID))

	wf, err := persistence.NewWorkflowStore(f.db).Get(ctx, f.workflowID)
	require.NoError(t, err)
	assert.Equal(t, workflow.StatusComplete, wf.Status())
	require.NotNil(t, wf.FinishedAt())

	c, err := persistence.NewCampaignStore(f.db).Get(ctx, f.campaignID)
	require.NoError(t, err)
	assert.Equal(t, campaign.StatusGenerated, c.Status())

	// FR campaigns get a localized message persisted before generation.
	assert.Equal(t, "Test output", c.LocalizedMessage())

	creatives, err := persistence.NewAssetStore(f.db).FindCreatives(ctx, f.campaignID)
	require.NoError(t, err)
	assert.Len(t, creatives, 6)
	assert.Equal(t, 6, image.Calls())
	assert.Equal(t, 6, f.blobs.Len())

	for _, a := range creatives {
		require.NotNil(t, a.Generation())
		assert.Equal(t, provider.PlaceholderModelName, a.Generation().ModelName)
	}
}

func TestOrchestratorRunPartialFailure(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "US", 2)

	image := &countingImageGenerator{
		inner:     provider.NewPlaceholderImageGenerator(),
		failRatio: asset.RatioLandscape,
	}
	orch := NewOrchestrator(f.db, f.blobs, provider.NewDummyTextGenerator(), image, testLogger())

	err := orch.Run(ctx, f.workflowID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not be generated")

	wf, werr := persistence.NewWorkflowStore(f.db).Get(ctx, f.workflowID)
	require.NoError(t, werr)
	assert.Equal(t, workflow.StatusFailed, wf.Status())
	assert.NotEmpty(t, wf.ErrorMessage())

	c, cerr := persistence.NewCampaignStore(f.db).Get(ctx, f.campaignID)
	require.NoError(t, cerr)
	assert.Equal(t, campaign.StatusFailed, c.Status())

	// Failures never cancel siblings: the other four units complete.
	creatives, aerr := persistence.NewAssetStore(f.db).FindCreatives(ctx, f.campaignID)
	require.NoError(t, aerr)
	assert.Len(t, creatives, 4)
	assert.Equal(t, 6, image.Calls())
}

func TestOrchestratorRunNothingPending(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "US", 0)

	image := &countingImageGenerator{inner: provider.NewPlaceholderImageGenerator()}
	orch := NewOrchestrator(f.db, f.blobs, provider.NewDummyTextGenerator(), image, testLogger())

	require.NoError(t, orch.Run(ctx, f.workflowID))

	wf, err := persistence.NewWorkflowStore(f.db).Get(ctx, f.workflowID)
	require.NoError(t, err)
	assert.Equal(t, workflow.StatusComplete, wf.Status())
	assert.Zero(t, image.Calls())
}

func TestOrchestratorRunUSCampaignNotLocalized(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "US", 1)

	image := &countingImageGenerator{inner: provider.NewPlaceholderImageGenerator()}
	orch := NewOrchestrator(f.db, f.blobs, provider.NewDummyTextGenerator(), image, testLogger())

	require.NoError(t, orch.Run(ctx, f.workflowID))

	c, err := persistence.NewCampaignStore(f.db).Get(ctx, f.campaignID)
	require.NoError(t, err)
	assert.Empty(t, c.LocalizedMessage())
}

func TestOrchestratorRunSetupFailure(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	workflows := persistence.NewWorkflowStore(db)

	// Workflow points at a campaign that does not exist.
	wf, err := workflow.NewWorkflow(999)
	require.NoError(t, err)
	saved, err := workflows.Save(ctx, wf)
	require.NoError(t, err)

	orch := NewOrchestrator(db, storage.NewMemoryStore(),
		provider.NewDummyTextGenerator(), provider.NewPlaceholderImageGenerator(), testLogger())

	err = orch.Run(ctx, saved.ID())
	require.Error(t, err)

	reloaded, err := workflows.Get(ctx, saved.ID())
	require.NoError(t, err)
	assert.Equal(t, workflow.StatusFailed, reloaded.Status())
	assert.NotEmpty(t, reloaded.ErrorMessage())
}
