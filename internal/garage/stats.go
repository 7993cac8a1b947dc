// server/internal/garage/stats.go
package garage

import (
	"sort"

	"garage-api-server/internal/models"
)

// ComputeStats summarizes fleet-wide availability from the current spots and
// the active parkings. It is pure computation, recomputed on demand; nothing
// here is stored. A spot counts as occupied when a vehicle is parked on it or
// an admin has booked it, and the two causes are also reported separately.
func ComputeStats(spots []models.ParkingSpot, active []models.Parking) models.GarageStats {
	parkedSpotIDs := make(map[string]bool, len(active))
	for _, p := range active {
		parkedSpotIDs[p.SpotID] = true
	}

	var (
		freeNumbers     = []int{}
		occupiedNumbers = []int{}
		parkedNumbers   = []int{}
		bookedNumbers   = []int{}
	)
	bySize := make(map[int]*models.SizeStats)

	for _, s := range spots {
		parked := parkedSpotIDs[s.SpotID]
		occupied := parked || s.IsAdminReserved

		if parked {
			parkedNumbers = append(parkedNumbers, s.SpotNumber)
		}
		if s.IsAdminReserved {
			bookedNumbers = append(bookedNumbers, s.SpotNumber)
		}
		if occupied {
			occupiedNumbers = append(occupiedNumbers, s.SpotNumber)
		} else {
			freeNumbers = append(freeNumbers, s.SpotNumber)
		}

		ss := bySize[s.Size]
		if ss == nil {
			ss = &models.SizeStats{Size: s.Size}
			bySize[s.Size] = ss
		}
		ss.Total++
		if occupied {
			ss.Occupied++
		}
	}

	sort.Ints(freeNumbers)
	sort.Ints(occupiedNumbers)
	sort.Ints(parkedNumbers)
	sort.Ints(bookedNumbers)

	sizes := make([]models.SizeStats, 0, len(bySize))
	for _, ss := range bySize {
		ss.Free = ss.Total - ss.Occupied
		sizes = append(sizes, *ss)
	}
	sort.Slice(sizes, func(i, j int) bool { return sizes[i].Size < sizes[j].Size })

	return models.GarageStats{
		TotalSpots:          len(spots),
		OccupiedSpots:       len(occupiedNumbers),
		FreeSpots:           len(freeNumbers),
		FreeSpotNumbers:     freeNumbers,
		OccupiedSpotNumbers: occupiedNumbers,
		ParkedSpotNumbers:   parkedNumbers,
		BookedSpotNumbers:   bookedNumbers,
		BySize:              sizes,
	}
}
