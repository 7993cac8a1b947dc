// server/internal/garage/compatibility_test.go
package garage

import (
	"testing"

	"garage-api-server/internal/models"
)

func TestIsCompatible(t *testing.T) {
	tests := []struct {
		name            string
		spotSize        int
		vehicleTypeSize int
		want            bool
	}{
		{"exact match", 2, 2, true},
		{"smaller vehicle rejected", 3, 1, false},
		{"larger vehicle rejected", 1, 3, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCompatible(tt.spotSize, tt.vehicleTypeSize); got != tt.want {
				t.Fatalf("IsCompatible(%d, %d) = %v, want %v", tt.spotSize, tt.vehicleTypeSize, got, tt.want)
			}
		})
	}
}

func TestAllowedType(t *testing.T) {
	types := []models.VehicleType{
		{TypeID: "TYPE-moto", Name: "Motorcycle", Size: 1},
		{TypeID: "TYPE-car", Name: "Car", Size: 2},
		{TypeID: "TYPE-truck", Name: "Truck", Size: 3},
	}

	if got := AllowedType(2, types); got == nil || got.Name != "Car" {
		t.Fatalf("AllowedType(2) = %+v, want Car", got)
	}
	if got := AllowedType(7, types); got != nil {
		t.Fatalf("AllowedType(7) = %+v, want nil", got)
	}
}

func TestStatusOf(t *testing.T) {
	free := models.ParkingSpot{SpotID: "SPOT-1"}
	reserved := models.ParkingSpot{SpotID: "SPOT-2", IsAdminReserved: true}

	if got := StatusOf(free, false); got != StatusAvailable {
		t.Fatalf("free spot status = %q, want %q", got, StatusAvailable)
	}
	if got := StatusOf(free, true); got != StatusOccupied {
		t.Fatalf("parked spot status = %q, want %q", got, StatusOccupied)
	}
	if got := StatusOf(reserved, false); got != StatusAdminReserved {
		t.Fatalf("reserved spot status = %q, want %q", got, StatusAdminReserved)
	}
	// An active parking wins over the reservation flag.
	if got := StatusOf(reserved, true); got != StatusOccupied {
		t.Fatalf("reserved+parked spot status = %q, want %q", got, StatusOccupied)
	}
}
