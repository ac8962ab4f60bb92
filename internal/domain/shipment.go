package domain

import "time"

// ShipmentStatus is the tracking state of a milk shipment.
type ShipmentStatus string

const (
	ShipmentScheduled    ShipmentStatus = "scheduled"
	ShipmentPickedUp     ShipmentStatus = "picked_up"
	ShipmentInTransit    ShipmentStatus = "in_transit"
	ShipmentAtCheckpoint ShipmentStatus = "at_checkpoint"
	ShipmentQualityCheck ShipmentStatus = "quality_check"
	ShipmentDelivered    ShipmentStatus = "delivered"
	// ShipmentDelayed is a terminal variant of delivered: same milestone
	// completion, different display state.
	ShipmentDelayed ShipmentStatus = "delayed"
)

// MilestoneState marks a milestone's place relative to the shipment's
// progress.
type MilestoneState string

const (
	MilestoneCompleted MilestoneState = "completed"
	MilestoneCurrent   MilestoneState = "current"
	MilestoneUpcoming  MilestoneState = "upcoming"
)

// Milestone is one step in a shipment's fixed 6-step delivery pipeline.
// Timestamp is nil iff the milestone is upcoming.
type Milestone struct {
	ID          string         `json:"id"`
	Status      MilestoneState `json:"status"`
	Title       string         `json:"title"`
	Location    string         `json:"location"`
	Timestamp   *time.Time     `json:"timestamp"`
	Description string         `json:"description"`
	Icon        string         `json:"icon"`
}

// Distance tracks route progress in kilometers.
type Distance struct {
	Total   float64 `json:"total"`
	Covered float64 `json:"covered"`
}

// Shipment is one tracked milk delivery. Milestones are derived from
// Status plus fixed per-shipment metadata, never stored independently.
type Shipment struct {
	ID               string         `json:"id"`
	FarmerID         string         `json:"farmerId"`
	DairyID          string         `json:"dairyId"`
	DairyName        string         `json:"dairyName"`
	Quantity         float64        `json:"quantity"`
	CattleType       CattleType     `json:"cattleType"`
	PickupDate       time.Time      `json:"pickupDate"`
	ExpectedDelivery time.Time      `json:"expectedDelivery"`
	ActualDelivery   *time.Time     `json:"actualDelivery"`
	Status           ShipmentStatus `json:"status"`
	CurrentLocation  string         `json:"currentLocation"`
	Milestones       []Milestone    `json:"milestones"`
	VehicleNumber    string         `json:"vehicleNumber"`
	DriverName       string         `json:"driverName"`
	DriverPhone      string         `json:"driverPhone"`
	Temperature      float64        `json:"temperature"`
	Distance         Distance       `json:"distance"`
}
