package shipment

import (
	"time"

	"dairyportal/internal/domain"
)

// DemoShipments synthesizes the fixed tracking fixture set for a farmer.
// It stands in for a real tracking backend: five shipments covering the
// interesting statuses, each with milestones derived through
// ProjectMilestones. Output is deterministic given (farmerID, now).
func DemoShipments(farmerID string, now time.Time) []domain.Shipment {
	base := time.Date(now.Year(), now.Month(), now.Day(), 5, 30, 0, 0, now.Location())
	yesterday := base.AddDate(0, 0, -1)
	twoDaysAgo := base.AddDate(0, 0, -2)

	deliveredYesterday := yesterday.Add(3*time.Hour + 30*time.Minute)
	deliveredLate := twoDaysAgo.Add(5 * time.Hour)

	return []domain.Shipment{
		{
			ID:               "SHP-001",
			FarmerID:         farmerID,
			DairyID:          "amul",
			DairyName:        "Amul Dairy",
			Quantity:         25.5,
			CattleType:       domain.CattleBuffalo,
			PickupDate:       base,
			ExpectedDelivery: base.Add(4 * time.Hour),
			ActualDelivery:   nil,
			Status:           domain.ShipmentInTransit,
			CurrentLocation:  "Near Mehsana Highway Toll",
			Milestones:       ProjectMilestones(domain.ShipmentInTransit, "Village Kheda, Gujarat", "Amul Dairy, Anand", base),
			VehicleNumber:    "GJ 18 AB 1234",
			DriverName:       "Ramesh Patel",
			DriverPhone:      "+91 98765 43210",
			Temperature:      4.2,
			Distance:         domain.Distance{Total: 85, Covered: 42},
		},
		{
			ID:               "SHP-002",
			FarmerID:         farmerID,
			DairyID:          "mother-dairy",
			DairyName:        "Mother Dairy",
			Quantity:         18.2,
			CattleType:       domain.CattleCow,
			PickupDate:       yesterday,
			ExpectedDelivery: yesterday.Add(4 * time.Hour),
			ActualDelivery:   &deliveredYesterday,
			Status:           domain.ShipmentDelivered,
			CurrentLocation:  "Mother Dairy Plant, Delhi",
			Milestones:       ProjectMilestones(domain.ShipmentDelivered, "Village Sonipat, Haryana", "Mother Dairy, Delhi", yesterday),
			VehicleNumber:    "HR 26 CD 5678",
			DriverName:       "Suresh Kumar",
			DriverPhone:      "+91 98765 12345",
			Temperature:      4.0,
			Distance:         domain.Distance{Total: 65, Covered: 65},
		},
		{
			ID:               "SHP-003",
			FarmerID:         farmerID,
			DairyID:          "amul",
			DairyName:        "Amul Dairy",
			Quantity:         22.0,
			CattleType:       domain.CattleBuffalo,
			PickupDate:       base.Add(12 * time.Hour),
			ExpectedDelivery: base.Add(16 * time.Hour),
			ActualDelivery:   nil,
			Status:           domain.ShipmentScheduled,
			CurrentLocation:  "Pickup scheduled",
			Milestones:       ProjectMilestones(domain.ShipmentScheduled, "Village Kheda, Gujarat", "Amul Dairy, Anand", base),
			VehicleNumber:    "GJ 18 AB 4567",
			DriverName:       "Mahesh Shah",
			DriverPhone:      "+91 98765 67890",
			Temperature:      0,
			Distance:         domain.Distance{Total: 85, Covered: 0},
		},
		{
			ID:               "SHP-004",
			FarmerID:         farmerID,
			DairyID:          "nandini",
			DairyName:        "Nandini Dairy (KMF)",
			Quantity:         30.0,
			CattleType:       domain.CattleCow,
			PickupDate:       base.Add(30 * time.Minute),
			ExpectedDelivery: base.Add(4*time.Hour + 30*time.Minute),
			ActualDelivery:   nil,
			Status:           domain.ShipmentQualityCheck,
			CurrentLocation:  "Nandini Quality Lab, Bangalore",
			Milestones:       ProjectMilestones(domain.ShipmentQualityCheck, "Village Mandya, Karnataka", "Nandini Dairy, Bangalore", base),
			VehicleNumber:    "KA 01 EF 9012",
			DriverName:       "Venkatesh Gowda",
			DriverPhone:      "+91 98765 11111",
			Temperature:      4.1,
			Distance:         domain.Distance{Total: 120, Covered: 115},
		},
		{
			ID:               "SHP-005",
			FarmerID:         farmerID,
			DairyID:          "amul",
			DairyName:        "Amul Dairy",
			Quantity:         20.5,
			CattleType:       domain.CattleBuffalo,
			PickupDate:       twoDaysAgo,
			ExpectedDelivery: twoDaysAgo.Add(4 * time.Hour),
			ActualDelivery:   &deliveredLate,
			Status:           domain.ShipmentDelayed,
			CurrentLocation:  "Amul Dairy, Anand (Delayed)",
			Milestones:       ProjectMilestones(domain.ShipmentDelayed, "Village Kheda, Gujarat", "Amul Dairy, Anand", twoDaysAgo),
			VehicleNumber:    "GJ 18 AB 3456",
			DriverName:       "Jigar Patel",
			DriverPhone:      "+91 98765 22222",
			Temperature:      5.8,
			Distance:         domain.Distance{Total: 85, Covered: 85},
		},
	}
}
