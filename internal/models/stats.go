// server/internal/models/stats.go
package models

// SizeStats is the occupancy breakdown for one spot size class.
type SizeStats struct {
	Size     int `json:"size"`
	Total    int `json:"total"`
	Occupied int `json:"occupied"`
	Free     int `json:"free"`
}

// GarageStats is the fleet-wide availability summary. "Occupied" merges spots
// taken by a vehicle with spots booked by an admin; the parked and booked lists
// report the two causes separately. All spot-number lists are ascending.
type GarageStats struct {
	TotalSpots    int `json:"totalSpots"`
	OccupiedSpots int `json:"occupiedSpots"`
	FreeSpots     int `json:"freeSpots"`

	FreeSpotNumbers     []int `json:"freeSpotNumbers"`
	OccupiedSpotNumbers []int `json:"occupiedSpotNumbers"`
	ParkedSpotNumbers   []int `json:"parkedSpotNumbers"`
	BookedSpotNumbers   []int `json:"bookedSpotNumbers"`

	BySize []SizeStats `json:"bySize"`
}
