package service

import (
	"github.com/adgenhq/adgen/domain/asset"
	"github.com/adgenhq/adgen/domain/brand"
	"github.com/adgenhq/adgen/domain/campaign"
)

// CheckResult is the outcome of a single compliance check.
type CheckResult struct {
	CheckType string
	Result    string
	Details   map[string]any
}

// RunBrandChecks evaluates a generated creative against brand rules.
// TODO: implement color-palette and logo-presence checks.
func RunBrandChecks(a asset.Asset, b brand.Brand) []CheckResult {
	return nil
}

// RunLegalChecks evaluates a campaign against legal constraints for its
// target region.
// TODO: implement region-specific prohibited-claims checks.
func RunLegalChecks(c campaign.Campaign, b brand.Brand) []CheckResult {
	return nil
}
