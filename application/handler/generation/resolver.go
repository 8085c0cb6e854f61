// Package generation orchestrates creative generation workflows: it
// resolves which (product, aspect ratio) creatives a campaign still
// needs, builds prompts, runs the generators, and persists the results.
package generation

import (
	"context"
	"fmt"

	"github.com/adgenhq/adgen/domain/asset"
	"github.com/adgenhq/adgen/domain/campaign"
	"github.com/adgenhq/adgen/domain/product"
	"github.com/adgenhq/adgen/domain/store"
)

// Unit is one pending piece of work: a creative for a specific product
// at a specific aspect ratio.
type Unit struct {
	Product product.Product
	Ratio   asset.AspectRatio
}

// Resolver computes the pending generation units for a campaign.
type Resolver struct {
	campaigns campaign.Store
	products  product.Store
	assets    asset.Store
}

// NewResolver creates a Resolver.
func NewResolver(campaigns campaign.Store, products product.Store, assets asset.Store) Resolver {
	return Resolver{campaigns: campaigns, products: products, assets: assets}
}

// Resolve returns the units still missing a creative: every linked
// product crossed with every required aspect ratio, minus pairs that
// already have a generated or uploaded creative. Resolution is a pure
// read; running it twice without generating anything yields the same
// set.
func (r Resolver) Resolve(ctx context.Context, campaignID int64) ([]Unit, error) {
	productIDs, err := r.campaigns.ProductIDs(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("resolve campaign products: %w", err)
	}

	existing, err := r.existingRatios(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	var units []Unit
	for _, pid := range productIDs {
		prod, err := r.products.Get(ctx, pid)
		if err != nil {
			return nil, fmt.Errorf("resolve product %d: %w", pid, err)
		}
		for _, ratio := range asset.RequiredAspectRatios() {
			if existing[unitKey{pid, ratio}] {
				continue
			}
			units = append(units, Unit{Product: prod, Ratio: ratio})
		}
	}
	return units, nil
}

func campaignCreativeConditions(campaignID int64) []store.Option {
	return []store.Option{
		store.WithCampaignID(campaignID),
		store.WithCondition("type", int(asset.TypeCreative)),
	}
}

type unitKey struct {
	productID int64
	ratio     asset.AspectRatio
}

// existingRatios indexes which (product, ratio) pairs already have a
// creative asset for the campaign. Source is not checked: an uploaded
// creative satisfies the requirement the same as a generated one.
func (r Resolver) existingRatios(ctx context.Context, campaignID int64) (map[unitKey]bool, error) {
	assets, err := r.assets.Find(ctx,
		campaignCreativeConditions(campaignID)...,
	)
	if err != nil {
		return nil, fmt.Errorf("resolve existing creatives: %w", err)
	}

	existing := make(map[unitKey]bool, len(assets))
	for _, a := range assets {
		if a.ProductID() == nil {
			continue
		}
		existing[unitKey{*a.ProductID(), a.AspectRatio()}] = true
	}
	return existing, nil
}
