package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adgenhq/adgen/domain/asset"
	"github.com/adgenhq/adgen/domain/brand"
	"github.com/adgenhq/adgen/domain/campaign"
	"github.com/adgenhq/adgen/domain/product"
	"github.com/adgenhq/adgen/domain/task"
	"github.com/adgenhq/adgen/domain/workflow"
	"github.com/adgenhq/adgen/infrastructure/persistence"
	"github.com/adgenhq/adgen/infrastructure/storage"
	"github.com/adgenhq/adgen/internal/database"
	"github.com/adgenhq/adgen/internal/domain"
	"github.com/adgenhq/adgen/internal/testdb"
)

type campaignFixture struct {
	db      database.Database
	blobs   *storage.MemoryStore
	svc     *Campaigns
	brandID int64
}

func newCampaignFixture(t *testing.T) campaignFixture {
	t.Helper()
	ctx := context.Background()
	db := testdb.New(t)
	blobs := storage.NewMemoryStore()

	brands := persistence.NewBrandStore(db)
	b, err := brand.NewBrand("Acme", "#FF8800")
	require.NoError(t, err)
	savedBrand, err := brands.Save(ctx, b)
	require.NoError(t, err)

	svc := NewCampaigns(
		persistence.NewCampaignStore(db),
		brands,
		persistence.NewProductStore(db),
		persistence.NewAssetStore(db),
		blobs,
		testLogger(),
	)
	return campaignFixture{db: db, blobs: blobs, svc: svc, brandID: savedBrand.ID()}
}

func TestCreateCampaignWithInlineProducts(t *testing.T) {
	ctx := context.Background()
	f := newCampaignFixture(t)

	c, err := f.svc.Create(ctx, CreateCampaignParams{
		BrandID:        f.brandID,
		Name:           "Launch",
		TargetRegion:   "US",
		TargetAudience: "runners",
		Message:        "Run the city",
		Products: []CreateProductParams{
			{Name: "Trail Shoe", Description: "lightweight"},
			{Name: "Road Shoe"},
		},
	})
	require.NoError(t, err)
	assert.NotZero(t, c.ID())
	assert.Equal(t, campaign.StatusDraft, c.Status())

	detail, err := f.svc.Detail(ctx, c.ID())
	require.NoError(t, err)
	require.Len(t, detail.Products, 2)
	assert.Equal(t, "Trail Shoe", detail.Products[0].Name())
	assert.Empty(t, detail.Assets)
}

func TestCreateCampaignLinksExistingProducts(t *testing.T) {
	ctx := context.Background()
	f := newCampaignFixture(t)
	products := persistence.NewProductStore(f.db)

	p, err := product.NewProduct("Existing", "", nil)
	require.NoError(t, err)
	saved, err := products.Save(ctx, p)
	require.NoError(t, err)

	c, err := f.svc.Create(ctx, CreateCampaignParams{
		BrandID:        f.brandID,
		Name:           "Launch",
		TargetRegion:   "US",
		TargetAudience: "runners",
		Message:        "Run",
		ProductIDs:     []int64{saved.ID()},
	})
	require.NoError(t, err)

	detail, err := f.svc.Detail(ctx, c.ID())
	require.NoError(t, err)
	require.Len(t, detail.Products, 1)
	assert.Equal(t, saved.ID(), detail.Products[0].ID())
}

func TestCreateCampaignUnknownBrand(t *testing.T) {
	f := newCampaignFixture(t)

	_, err := f.svc.Create(context.Background(), CreateCampaignParams{
		BrandID:        999,
		Name:           "Launch",
		TargetRegion:   "US",
		TargetAudience: "runners",
		Message:        "Run",
	})
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "brand 999")
}

func TestCreateCampaignUnknownLinkedProduct(t *testing.T) {
	f := newCampaignFixture(t)

	_, err := f.svc.Create(context.Background(), CreateCampaignParams{
		BrandID:        f.brandID,
		Name:           "Launch",
		TargetRegion:   "US",
		TargetAudience: "runners",
		Message:        "Run",
		ProductIDs:     []int64{12345},
	})
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestCampaignDetailIncludesAllAssets(t *testing.T) {
	ctx := context.Background()
	f := newCampaignFixture(t)
	assets := persistence.NewAssetStore(f.db)

	c, err := f.svc.Create(ctx, CreateCampaignParams{
		BrandID:        f.brandID,
		Name:           "Launch",
		TargetRegion:   "US",
		TargetAudience: "runners",
		Message:        "Run",
	})
	require.NoError(t, err)

	// Uploaded and generated assets both appear in the detail view.
	uploaded, err := asset.NewUploadedAsset(asset.TypeCreative, "campaign/up.png")
	require.NoError(t, err)
	_, err = assets.Save(ctx, uploaded.WithOwners(0, c.ID(), 0))
	require.NoError(t, err)

	generated, err := asset.NewGeneratedCreative(c.ID(), 1, f.brandID, asset.RatioSquare, 10, 10,
		"campaign/gen.png", asset.GenerationMetadata{Prompt: "p", ModelName: "m"})
	require.NoError(t, err)
	_, err = assets.Save(ctx, generated)
	require.NoError(t, err)

	detail, err := f.svc.Detail(ctx, c.ID())
	require.NoError(t, err)
	require.Len(t, detail.Assets, 2)
	for _, v := range detail.Assets {
		assert.Equal(t, "memory://"+v.Asset.StorageKey(), v.URL)
	}
}

func TestTriggerWorkflow(t *testing.T) {
	ctx := context.Background()
	f := newCampaignFixture(t)

	queue := NewQueue(persistence.NewTaskStore(f.db), testLogger())
	workflows := NewWorkflows(persistence.NewWorkflowStore(f.db), persistence.NewCampaignStore(f.db), queue, testLogger())

	c, err := f.svc.Create(ctx, CreateCampaignParams{
		BrandID:        f.brandID,
		Name:           "Launch",
		TargetRegion:   "US",
		TargetAudience: "runners",
		Message:        "Run",
	})
	require.NoError(t, err)

	wf, err := workflows.Trigger(ctx, c.ID())
	require.NoError(t, err)
	assert.NotZero(t, wf.ID())
	assert.Equal(t, workflow.StatusStarted, wf.Status())

	count, err := queue.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	pending, err := queue.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, task.OperationGenerateCampaign, pending[0].Operation())

	// Triggering twice creates a second workflow and a second task; the
	// dedup key includes the workflow ID.
	wf2, err := workflows.Trigger(ctx, c.ID())
	require.NoError(t, err)
	assert.NotEqual(t, wf.ID(), wf2.ID())

	count, err = queue.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestTriggerWorkflowUnknownCampaign(t *testing.T) {
	f := newCampaignFixture(t)

	queue := NewQueue(persistence.NewTaskStore(f.db), testLogger())
	workflows := NewWorkflows(persistence.NewWorkflowStore(f.db), persistence.NewCampaignStore(f.db), queue, testLogger())

	_, err := workflows.Trigger(context.Background(), 999)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}
