// Package campaign provides the campaign aggregate: a brand's creative
// brief for a target region and audience, linked to the products it
// advertises.
package campaign

import (
	"fmt"
	"time"

	"github.com/adgenhq/adgen/internal/domain"
)

// Status is an advisory flag describing how far generation has taken
// the campaign. It never gates any operation.
type Status int

// Status values.
const (
	StatusDraft     Status = 1
	StatusGenerated Status = 2
	StatusFailed    Status = 3
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusDraft:
		return "draft"
	case StatusGenerated:
		return "generated"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Campaign describes a creative brief: what message to push to which
// audience in which region, for a given brand.
type Campaign struct {
	id               int64
	brandID          int64
	name             string
	targetRegion     string
	targetAudience   string
	message          string
	localizedMessage string
	status           Status
	createdAt        time.Time
	updatedAt        time.Time
}

// NewCampaign creates a draft Campaign with the required fields validated.
func NewCampaign(brandID int64, name, targetRegion, targetAudience, message string) (Campaign, error) {
	if brandID <= 0 {
		return Campaign{}, fmt.Errorf("%w: campaign requires a brand", domain.ErrValidation)
	}
	if name == "" {
		return Campaign{}, fmt.Errorf("%w: campaign name is required", domain.ErrValidation)
	}
	if targetRegion == "" {
		return Campaign{}, fmt.Errorf("%w: target region is required", domain.ErrValidation)
	}
	if message == "" {
		return Campaign{}, fmt.Errorf("%w: campaign message is required", domain.ErrValidation)
	}
	return Campaign{
		brandID:        brandID,
		name:           name,
		targetRegion:   targetRegion,
		targetAudience: targetAudience,
		message:        message,
		status:         StatusDraft,
	}, nil
}

// ReconstructCampaign rebuilds a Campaign from persisted state.
func ReconstructCampaign(
	id, brandID int64,
	name, targetRegion, targetAudience, message, localizedMessage string,
	status Status,
	createdAt, updatedAt time.Time,
) Campaign {
	return Campaign{
		id:               id,
		brandID:          brandID,
		name:             name,
		targetRegion:     targetRegion,
		targetAudience:   targetAudience,
		message:          message,
		localizedMessage: localizedMessage,
		status:           status,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// ID returns the campaign ID.
func (c Campaign) ID() int64 { return c.id }

// BrandID returns the owning brand's ID.
func (c Campaign) BrandID() int64 { return c.brandID }

// Name returns the campaign name.
func (c Campaign) Name() string { return c.name }

// TargetRegion returns the region code the campaign targets (e.g. "US", "FR").
func (c Campaign) TargetRegion() string { return c.targetRegion }

// TargetAudience returns the audience description.
func (c Campaign) TargetAudience() string { return c.targetAudience }

// Message returns the original campaign message.
func (c Campaign) Message() string { return c.message }

// LocalizedMessage returns the localized campaign message, empty when the
// campaign has not been localized.
func (c Campaign) LocalizedMessage() string { return c.localizedMessage }

// PostMessage returns the message to publish: the localized message when
// present, the original otherwise.
func (c Campaign) PostMessage() string {
	if c.localizedMessage != "" {
		return c.localizedMessage
	}
	return c.message
}

// Status returns the advisory generation status.
func (c Campaign) Status() Status { return c.status }

// CreatedAt returns when the campaign was created.
func (c Campaign) CreatedAt() time.Time { return c.createdAt }

// UpdatedAt returns when the campaign was last updated.
func (c Campaign) UpdatedAt() time.Time { return c.updatedAt }

// WithID returns a copy with the given ID.
func (c Campaign) WithID(id int64) Campaign {
	c.id = id
	return c
}

// WithLocalizedMessage returns a copy with the localized message set.
func (c Campaign) WithLocalizedMessage(msg string) Campaign {
	c.localizedMessage = msg
	return c
}

// WithStatus returns a copy with the advisory status set.
func (c Campaign) WithStatus(s Status) Campaign {
	c.status = s
	return c
}
