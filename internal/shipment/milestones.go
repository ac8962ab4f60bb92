package shipment

import (
	"strconv"
	"time"

	"dairyportal/internal/domain"
)

// milestoneSpec is the fixed per-position shape of the delivery pipeline.
// Location may reference the pickup location or the receiving dairy.
type milestoneSpec struct {
	title       string
	description string
	icon        string
	offset      time.Duration
	atPickup    bool // location is the pickup point rather than the dairy
	enRoute     string
}

var pipeline = [6]milestoneSpec{
	{
		title:       "Pickup Scheduled",
		description: "Milk collection scheduled from farm",
		icon:        "pickup",
		offset:      0,
		atPickup:    true,
	},
	{
		title:       "Collected from Farm",
		description: "Milk collected and loaded into refrigerated vehicle",
		icon:        "pickup",
		offset:      30 * time.Minute,
		atPickup:    true,
	},
	{
		title:       "In Transit",
		description: "Vehicle on the way to nearest collection center",
		icon:        "transit",
		offset:      60 * time.Minute,
		enRoute:     "En route to collection center",
	},
	{
		title:       "Collection Center",
		description: "Arrived at collection center for consolidation",
		icon:        "checkpoint",
		offset:      120 * time.Minute,
		enRoute:     "Regional Collection Center",
	},
	{
		title:       "Quality Check",
		description: "Fat content, SNF, and temperature verification",
		icon:        "quality",
		offset:      180 * time.Minute,
	},
	{
		title:       "Delivered",
		description: "Successfully delivered and payment initiated",
		icon:        "delivered",
		offset:      210 * time.Minute,
	},
}

// ProjectMilestones derives the 6-step timeline for a shipment. It is a
// pure function of its arguments: a milestone is completed when its
// pipeline position is strictly before the status position (delivered and
// delayed complete everything), current when the positions match, and
// upcoming after. The first milestone records the scheduling event itself
// and is always completed. Timestamps are set exactly for non-upcoming
// milestones, offset from baseTime.
func ProjectMilestones(status domain.ShipmentStatus, pickupLocation, dairyName string, baseTime time.Time) []domain.Milestone {
	pos, ok := statusPosition[status]
	if !ok {
		pos = posScheduled
	}

	out := make([]domain.Milestone, 0, len(pipeline))
	for i, spec := range pipeline {
		state := domain.MilestoneUpcoming
		switch {
		case terminal(status) || i < pos || i == 0:
			state = domain.MilestoneCompleted
		case i == pos:
			state = domain.MilestoneCurrent
		}

		var ts *time.Time
		if state != domain.MilestoneUpcoming {
			t := baseTime.Add(spec.offset)
			ts = &t
		}

		location := dairyName
		if spec.atPickup {
			location = pickupLocation
		} else if spec.enRoute != "" {
			location = spec.enRoute
		}

		out = append(out, domain.Milestone{
			ID:          strconv.Itoa(i + 1),
			Status:      state,
			Title:       spec.title,
			Location:    location,
			Timestamp:   ts,
			Description: spec.description,
			Icon:        spec.icon,
		})
	}
	return out
}
