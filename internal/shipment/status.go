// Package shipment derives transport-tracking timelines. A shipment's
// milestones are never stored: they are a pure projection of its status
// plus fixed per-shipment metadata, so the timeline can always be rebuilt
// bit-identically.
package shipment

import (
	"fmt"

	"dairyportal/internal/domain"
)

// pipeline positions. Each status maps to the milestone position it
// represents; delayed shares delivered's position so both complete the
// whole pipeline.
const (
	posScheduled = iota
	posPickedUp
	posInTransit
	posAtCheckpoint
	posQualityCheck
	posDelivered
)

var statusPosition = map[domain.ShipmentStatus]int{
	domain.ShipmentScheduled:    posScheduled,
	domain.ShipmentPickedUp:     posPickedUp,
	domain.ShipmentInTransit:    posInTransit,
	domain.ShipmentAtCheckpoint: posAtCheckpoint,
	domain.ShipmentQualityCheck: posQualityCheck,
	domain.ShipmentDelivered:    posDelivered,
	domain.ShipmentDelayed:      posDelivered,
}

// ParseStatus validates a wire status value.
func ParseStatus(s string) (domain.ShipmentStatus, error) {
	st := domain.ShipmentStatus(s)
	if _, ok := statusPosition[st]; !ok {
		return "", fmt.Errorf("unknown shipment status %q", s)
	}
	return st, nil
}

// terminal reports whether the status completes the whole pipeline.
func terminal(s domain.ShipmentStatus) bool {
	return s == domain.ShipmentDelivered || s == domain.ShipmentDelayed
}
