package persistence

import (
	"encoding/json"

	"github.com/adgenhq/adgen/domain/asset"
	"github.com/adgenhq/adgen/domain/brand"
	"github.com/adgenhq/adgen/domain/campaign"
	"github.com/adgenhq/adgen/domain/product"
	"github.com/adgenhq/adgen/domain/task"
	"github.com/adgenhq/adgen/domain/workflow"
)

// BrandMapper maps between domain Brand and BrandModel.
type BrandMapper struct{}

// ToDomain converts a BrandModel to a domain Brand.
func (m BrandMapper) ToDomain(e BrandModel) brand.Brand {
	return brand.ReconstructBrand(
		e.ID,
		e.Name,
		e.PrimaryColorHex,
		stringValue(e.SecondaryColorHex),
		stringValue(e.ToneOfVoice),
		stringValue(e.FontFamily),
		e.CreatedAt,
		e.UpdatedAt,
	)
}

// ToModel converts a domain Brand to a BrandModel.
func (m BrandMapper) ToModel(b brand.Brand) BrandModel {
	return BrandModel{
		ID:                b.ID(),
		Name:              b.Name(),
		PrimaryColorHex:   b.PrimaryColorHex(),
		SecondaryColorHex: stringPtr(b.SecondaryColorHex()),
		ToneOfVoice:       stringPtr(b.ToneOfVoice()),
		FontFamily:        stringPtr(b.FontFamily()),
		CreatedAt:         b.CreatedAt(),
		UpdatedAt:         b.UpdatedAt(),
	}
}

// ProductMapper maps between domain Product and ProductModel.
type ProductMapper struct{}

// ToDomain converts a ProductModel to a domain Product.
func (m ProductMapper) ToDomain(e ProductModel) product.Product {
	var metadata map[string]any
	if len(e.Metadata) > 0 {
		_ = json.Unmarshal(e.Metadata, &metadata)
	}
	return product.ReconstructProduct(
		e.ID,
		e.Name,
		stringValue(e.Description),
		metadata,
		e.CreatedAt,
		e.UpdatedAt,
	)
}

// ToModel converts a domain Product to a ProductModel.
func (m ProductMapper) ToModel(p product.Product) ProductModel {
	var metadata json.RawMessage
	if md := p.Metadata(); md != nil {
		metadata, _ = json.Marshal(md)
	}
	return ProductModel{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: stringPtr(p.Description()),
		Metadata:    metadata,
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

// CampaignMapper maps between domain Campaign and CampaignModel.
type CampaignMapper struct{}

// ToDomain converts a CampaignModel to a domain Campaign.
func (m CampaignMapper) ToDomain(e CampaignModel) campaign.Campaign {
	return campaign.ReconstructCampaign(
		e.ID,
		e.BrandID,
		e.Name,
		e.TargetRegion,
		e.TargetAudience,
		e.Message,
		stringValue(e.LocalizedMessage),
		campaign.Status(e.Status),
		e.CreatedAt,
		e.UpdatedAt,
	)
}

// ToModel converts a domain Campaign to a CampaignModel.
func (m CampaignMapper) ToModel(c campaign.Campaign) CampaignModel {
	return CampaignModel{
		ID:               c.ID(),
		BrandID:          c.BrandID(),
		Name:             c.Name(),
		TargetRegion:     c.TargetRegion(),
		TargetAudience:   c.TargetAudience(),
		Message:          c.Message(),
		LocalizedMessage: stringPtr(c.LocalizedMessage()),
		Status:           int(c.Status()),
		CreatedAt:        c.CreatedAt(),
		UpdatedAt:        c.UpdatedAt(),
	}
}

// AssetMapper maps between domain Asset and AssetModel.
type AssetMapper struct{}

// ToDomain converts an AssetModel to a domain Asset.
func (m AssetMapper) ToDomain(e AssetModel) asset.Asset {
	var generation *asset.GenerationMetadata
	if len(e.Generation) > 0 {
		var meta asset.GenerationMetadata
		if err := json.Unmarshal(e.Generation, &meta); err == nil {
			generation = &meta
		}
	}
	return asset.ReconstructAsset(
		e.ID,
		e.BrandID,
		e.CampaignID,
		e.ProductID,
		asset.Type(e.Type),
		asset.Source(e.Source),
		asset.AspectRatio(stringValue(e.AspectRatio)),
		intValue(e.Width),
		intValue(e.Height),
		e.StorageKey,
		generation,
		e.CreatedAt,
	)
}

// ToModel converts a domain Asset to an AssetModel.
func (m AssetMapper) ToModel(a asset.Asset) AssetModel {
	var generation json.RawMessage
	if meta := a.Generation(); meta != nil {
		generation, _ = json.Marshal(meta)
	}
	return AssetModel{
		ID:          a.ID(),
		BrandID:     a.BrandID(),
		CampaignID:  a.CampaignID(),
		ProductID:   a.ProductID(),
		Type:        int(a.Type()),
		Source:      int(a.Source()),
		AspectRatio: stringPtr(string(a.AspectRatio())),
		Width:       intPtr(a.Width()),
		Height:      intPtr(a.Height()),
		StorageKey:  a.StorageKey(),
		Generation:  generation,
		CreatedAt:   a.CreatedAt(),
	}
}

// WorkflowMapper maps between domain Workflow and WorkflowModel.
type WorkflowMapper struct{}

// ToDomain converts a WorkflowModel to a domain Workflow.
func (m WorkflowMapper) ToDomain(e WorkflowModel) workflow.Workflow {
	return workflow.ReconstructWorkflow(
		e.ID,
		e.CampaignID,
		workflow.Status(e.Status),
		e.StartedAt,
		e.FinishedAt,
		stringValue(e.ErrorMessage),
	)
}

// ToModel converts a domain Workflow to a WorkflowModel.
func (m WorkflowMapper) ToModel(w workflow.Workflow) WorkflowModel {
	return WorkflowModel{
		ID:           w.ID(),
		CampaignID:   w.CampaignID(),
		Status:       int(w.Status()),
		StartedAt:    w.StartedAt(),
		FinishedAt:   w.FinishedAt(),
		ErrorMessage: stringPtr(w.ErrorMessage()),
	}
}

// TaskMapper maps between domain Task and TaskModel.
type TaskMapper struct{}

// ToDomain converts a TaskModel to a domain Task.
func (m TaskMapper) ToDomain(e TaskModel) task.Task {
	var payload map[string]any
	if len(e.Payload) > 0 {
		_ = json.Unmarshal(e.Payload, &payload)
	}
	return task.ReconstructTask(
		e.ID,
		e.DedupKey,
		task.Operation(e.Type),
		e.Priority,
		payload,
		e.CreatedAt,
		e.UpdatedAt,
	)
}

// ToModel converts a domain Task to a TaskModel.
func (m TaskMapper) ToModel(t task.Task) TaskModel {
	payload, _ := t.PayloadJSON()
	return TaskModel{
		ID:        t.ID(),
		DedupKey:  t.DedupKey(),
		Type:      t.Operation().String(),
		Payload:   payload,
		Priority:  t.Priority(),
		CreatedAt: t.CreatedAt(),
		UpdatedAt: t.UpdatedAt(),
	}
}

func stringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intPtr(i int) *int {
	if i == 0 {
		return nil
	}
	return &i
}

func intValue(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}
