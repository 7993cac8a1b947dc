// server/internal/garage/stats_test.go
package garage

import (
	"reflect"
	"testing"

	"garage-api-server/internal/models"
)

func TestComputeStats(t *testing.T) {
	spots := []models.ParkingSpot{
		{SpotID: "SPOT-a", SpotNumber: 1, Size: 1},
		{SpotID: "SPOT-b", SpotNumber: 2, Size: 2},
		{SpotID: "SPOT-c", SpotNumber: 3, Size: 2, IsAdminReserved: true},
	}
	active := []models.Parking{
		{ParkingID: "PRK-1", SpotID: "SPOT-b", VehicleID: "VEH-1", Active: true},
	}

	stats := ComputeStats(spots, active)

	if stats.TotalSpots != 3 {
		t.Fatalf("TotalSpots = %d, want 3", stats.TotalSpots)
	}
	if stats.OccupiedSpots != 2 {
		t.Fatalf("OccupiedSpots = %d, want 2", stats.OccupiedSpots)
	}
	if stats.FreeSpots != 1 {
		t.Fatalf("FreeSpots = %d, want 1", stats.FreeSpots)
	}
	if got := stats.FreeSpotNumbers; !reflect.DeepEqual(got, []int{1}) {
		t.Fatalf("FreeSpotNumbers = %v, want [1]", got)
	}
	if got := stats.OccupiedSpotNumbers; !reflect.DeepEqual(got, []int{2, 3}) {
		t.Fatalf("OccupiedSpotNumbers = %v, want [2 3]", got)
	}
	if got := stats.ParkedSpotNumbers; !reflect.DeepEqual(got, []int{2}) {
		t.Fatalf("ParkedSpotNumbers = %v, want [2]", got)
	}
	if got := stats.BookedSpotNumbers; !reflect.DeepEqual(got, []int{3}) {
		t.Fatalf("BookedSpotNumbers = %v, want [3]", got)
	}

	wantBySize := []models.SizeStats{
		{Size: 1, Total: 1, Occupied: 0, Free: 1},
		{Size: 2, Total: 2, Occupied: 2, Free: 0},
	}
	if !reflect.DeepEqual(stats.BySize, wantBySize) {
		t.Fatalf("BySize = %+v, want %+v", stats.BySize, wantBySize)
	}
}

func TestComputeStatsEmptyGarage(t *testing.T) {
	stats := ComputeStats(nil, nil)
	if stats.TotalSpots != 0 || stats.OccupiedSpots != 0 || stats.FreeSpots != 0 {
		t.Fatalf("empty garage stats = %+v, want all zero", stats)
	}
	if stats.FreeSpotNumbers == nil || stats.OccupiedSpotNumbers == nil {
		t.Fatal("spot number lists should be empty slices, not nil")
	}
}

func TestComputeStatsConsistency(t *testing.T) {
	spots := []models.ParkingSpot{
		{SpotID: "SPOT-a", SpotNumber: 10, Size: 1},
		{SpotID: "SPOT-b", SpotNumber: 11, Size: 1, IsAdminReserved: true},
		{SpotID: "SPOT-c", SpotNumber: 12, Size: 2},
		{SpotID: "SPOT-d", SpotNumber: 13, Size: 3},
	}
	active := []models.Parking{
		{ParkingID: "PRK-1", SpotID: "SPOT-c", VehicleID: "VEH-1", Active: true},
		{ParkingID: "PRK-2", SpotID: "SPOT-d", VehicleID: "VEH-2", Active: true},
	}

	stats := ComputeStats(spots, active)

	if stats.FreeSpots+stats.OccupiedSpots != stats.TotalSpots {
		t.Fatalf("free %d + occupied %d != total %d", stats.FreeSpots, stats.OccupiedSpots, stats.TotalSpots)
	}
	var sizeTotal int
	for _, ss := range stats.BySize {
		if ss.Free+ss.Occupied != ss.Total {
			t.Fatalf("size %d: free %d + occupied %d != total %d", ss.Size, ss.Free, ss.Occupied, ss.Total)
		}
		sizeTotal += ss.Total
	}
	if sizeTotal != stats.TotalSpots {
		t.Fatalf("size breakdown covers %d spots, want %d", sizeTotal, stats.TotalSpots)
	}
}
