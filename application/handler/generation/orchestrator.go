package generation

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/adgenhq/adgen/domain/brand"
	"github.com/adgenhq/adgen/domain/campaign"
	"github.com/adgenhq/adgen/domain/workflow"
	"github.com/adgenhq/adgen/infrastructure/persistence"
	"github.com/adgenhq/adgen/infrastructure/provider"
	"github.com/adgenhq/adgen/infrastructure/storage"
	"github.com/adgenhq/adgen/internal/database"
)

// maxConcurrentUnits caps the generation fan-out per workflow.
const maxConcurrentUnits = 6

// Orchestrator runs the creative generation workflow for a campaign:
// mark the workflow running, localize the campaign message, resolve
// pending units, fan them out, and record the terminal state.
type Orchestrator struct {
	db        database.Database
	workflows persistence.WorkflowStore
	campaigns persistence.CampaignStore
	brands    persistence.BrandStore
	resolver  Resolver
	units     UnitRunner
	text      provider.TextGenerator
	logger    *slog.Logger
}

// NewOrchestrator creates an Orchestrator.
func NewOrchestrator(
	db database.Database,
	blobs storage.ObjectStore,
	text provider.TextGenerator,
	image provider.ImageGenerator,
	logger *slog.Logger,
) Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	campaigns := persistence.NewCampaignStore(db)
	products := persistence.NewProductStore(db)
	assets := persistence.NewAssetStore(db)
	return Orchestrator{
		db:        db,
		workflows: persistence.NewWorkflowStore(db),
		campaigns: campaigns,
		brands:    persistence.NewBrandStore(db),
		resolver:  NewResolver(campaigns, products, assets),
		units:     NewUnitRunner(db, blobs, text, image),
		text:      text,
		logger:    logger,
	}
}

// Run executes the workflow to completion. The terminal state is always
// persisted before an error is returned: a setup failure or any unit
// failure marks the workflow failed, and only an all-units-succeeded
// run is marked complete. Unit failures never cancel siblings.
func (o Orchestrator) Run(ctx context.Context, workflowID int64) error {
	wf, err := o.workflows.Get(ctx, workflowID)
	if err != nil {
		return fmt.Errorf("load workflow %d: %w", workflowID, err)
	}

	units, err := o.prepare(ctx, wf)
	if err != nil {
		o.failWorkflow(ctx, workflowID, err)
		return err
	}

	if len(units) == 0 {
		o.logger.Info("no new creatives to generate",
			"workflow_id", workflowID,
			"campaign_id", wf.CampaignID(),
		)
		return o.finalize(ctx, workflowID, wf.CampaignID(), nil)
	}

	errs := o.fanOut(ctx, wf, units)
	return o.finalize(ctx, workflowID, wf.CampaignID(), errs)
}

// prepare marks the workflow running, localizes the campaign message,
// and resolves the pending units.
func (o Orchestrator) prepare(ctx context.Context, wf workflow.Workflow) ([]Unit, error) {
	running, err := wf.Run()
	if err != nil {
		return nil, err
	}
	if _, err := o.workflows.Save(ctx, running); err != nil {
		return nil, fmt.Errorf("mark workflow running: %w", err)
	}

	c, err := o.campaigns.Get(ctx, wf.CampaignID())
	if err != nil {
		return nil, fmt.Errorf("load campaign %d: %w", wf.CampaignID(), err)
	}

	b, err := o.brands.Get(ctx, c.BrandID())
	if err != nil {
		return nil, fmt.Errorf("load brand %d: %w", c.BrandID(), err)
	}

	if err := o.localize(ctx, b, c); err != nil {
		return nil, err
	}

	units, err := o.resolver.Resolve(ctx, c.ID())
	if err != nil {
		return nil, err
	}
	return units, nil
}

// localize rewrites the campaign message for mapped regions and
// persists the result. US campaigns and unmapped regions are skipped.
func (o Orchestrator) localize(ctx context.Context, b brand.Brand, c campaign.Campaign) error {
	language, ok := LocalizationLanguage(c.TargetRegion())
	if !ok {
		return nil
	}

	prompt := BuildLocalizationPrompt(b, c, language)
	o.logger.Info("localizing campaign message",
		"campaign_id", c.ID(),
		"region", c.TargetRegion(),
		"language", language,
	)

	result, err := o.text.Generate(ctx, prompt)
	if err != nil {
		return fmt.Errorf("localize campaign %d: %w", c.ID(), err)
	}
	if result.Content == "" {
		return nil
	}

	if _, err := o.campaigns.Save(ctx, c.WithLocalizedMessage(result.Content)); err != nil {
		return fmt.Errorf("save localized message for campaign %d: %w", c.ID(), err)
	}
	return nil
}

// fanOut runs units concurrently with a bounded pool. Every unit error
// is collected; none cancels the siblings.
func (o Orchestrator) fanOut(ctx context.Context, wf workflow.Workflow, units []Unit) []error {
	var (
		mu   sync.Mutex
		errs []error
	)

	limit := len(units)
	if limit > maxConcurrentUnits {
		limit = maxConcurrentUnits
	}

	var g errgroup.Group
	g.SetLimit(limit)

	for _, unit := range units {
		g.Go(func() error {
			err := o.units.Run(ctx, wf.CampaignID(), unit.Product.ID(), unit.Ratio)
			if err != nil {
				o.logger.Error("creative generation failed",
					"workflow_id", wf.ID(),
					"campaign_id", wf.CampaignID(),
					"product_id", unit.Product.ID(),
					"ratio", unit.Ratio.String(),
					"error", err,
				)
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
			return nil
		})
	}

	_ = g.Wait()
	return errs
}

// finalize reloads the workflow fresh and records the terminal state,
// mirroring it onto the campaign's advisory status.
func (o Orchestrator) finalize(ctx context.Context, workflowID, campaignID int64, errs []error) error {
	wf, err := o.workflows.Get(ctx, workflowID)
	if err != nil {
		return fmt.Errorf("reload workflow %d: %w", workflowID, err)
	}

	if len(errs) > 0 {
		failed, ferr := wf.Fail(errs[0].Error())
		if ferr != nil {
			return ferr
		}
		if _, err := o.workflows.Save(ctx, failed); err != nil {
			return fmt.Errorf("mark workflow failed: %w", err)
		}
		o.setCampaignStatus(ctx, campaignID, campaign.StatusFailed)
		return fmt.Errorf("workflow %d failed: %d creative(s) could not be generated: %w",
			workflowID, len(errs), errs[0])
	}

	completed, cerr := wf.Complete()
	if cerr != nil {
		return cerr
	}
	if _, err := o.workflows.Save(ctx, completed); err != nil {
		return fmt.Errorf("mark workflow complete: %w", err)
	}
	o.setCampaignStatus(ctx, campaignID, campaign.StatusGenerated)

	o.logger.Info("workflow complete", "workflow_id", workflowID, "campaign_id", campaignID)
	return nil
}

// failWorkflow records a setup failure on a freshly loaded workflow.
// The workflow may still be in the started state if marking it running
// was the thing that failed.
func (o Orchestrator) failWorkflow(ctx context.Context, workflowID int64, cause error) {
	wf, err := o.workflows.Get(ctx, workflowID)
	if err != nil {
		o.logger.Error("reload workflow for failure record", "workflow_id", workflowID, "error", err)
		return
	}

	failed, err := wf.Fail(cause.Error())
	if err != nil {
		o.logger.Error("transition workflow to failed", "workflow_id", workflowID, "error", err)
		return
	}

	if _, err := o.workflows.Save(ctx, failed); err != nil {
		o.logger.Error("persist workflow failure", "workflow_id", workflowID, "error", err)
		return
	}
	o.setCampaignStatus(ctx, wf.CampaignID(), campaign.StatusFailed)
}

// setCampaignStatus updates the advisory status, logging rather than
// failing the workflow when the update cannot be persisted.
func (o Orchestrator) setCampaignStatus(ctx context.Context, campaignID int64, status campaign.Status) {
	c, err := o.campaigns.Get(ctx, campaignID)
	if err != nil {
		o.logger.Error("load campaign for status update", "campaign_id", campaignID, "error", err)
		return
	}
	if _, err := o.campaigns.Save(ctx, c.WithStatus(status)); err != nil {
		o.logger.Error("save campaign status", "campaign_id", campaignID, "error", err)
	}
}
