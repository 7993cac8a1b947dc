// server/internal/garage/service.go
package garage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"garage-api-server/internal/models"

	"github.com/google/uuid"
)

// Principal is the authenticated identity an operation runs as.
type Principal struct {
	UserID string
	Role   string
}

func (p Principal) IsAdmin() bool { return p.Role == models.RoleAdmin }

// Service is the occupancy and availability engine. All mutation of spots,
// vehicles and parking records goes through here so the one-active-parking
// invariants and the reservation/occupancy exclusivity hold.
type Service struct {
	users    UserStore
	types    VehicleTypeStore
	vehicles VehicleStore
	spots    SpotStore
	parkings ParkingStore
}

func NewService(
	users UserStore,
	types VehicleTypeStore,
	vehicles VehicleStore,
	spots SpotStore,
	parkings ParkingStore,
) *Service {
	return &Service{
		users:    users,
		types:    types,
		vehicles: vehicles,
		spots:    spots,
		parkings: parkings,
	}
}

func newID(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.New().String()[:8])
}

type CheckInInput struct {
	VehicleID    string
	SpotID       string
	PricePerHour float64
}

// CheckIn validates the (vehicle, spot) pairing and creates the active parking
// record. The pre-checks give precise errors; the race between two concurrent
// check-ins is decided by the ParkingStore's uniqueness constraint, so at most
// one insert wins and the loser still comes back as ErrSpotOccupied or
// ErrVehicleAlreadyParked.
func (s *Service) CheckIn(ctx context.Context, principal Principal, in CheckInInput, now time.Time) (*models.Parking, error) {
	spot, err := s.spots.FindByID(ctx, in.SpotID)
	if err != nil {
		return nil, err
	}
	vehicle, err := s.vehicles.FindByID(ctx, in.VehicleID)
	if err != nil {
		return nil, err
	}
	if !principal.IsAdmin() && vehicle.OwnerID != principal.UserID {
		return nil, ErrNotOwner
	}
	if spot.IsAdminReserved {
		return nil, ErrSpotAdminReserved
	}

	owner, err := s.users.FindByID(ctx, vehicle.OwnerID)
	if err != nil {
		return nil, err
	}
	if err := CheckEligibility(owner.PersonalNumber, now); err != nil {
		return nil, err
	}

	vt, err := s.types.FindByID(ctx, vehicle.TypeID)
	if err != nil {
		return nil, err
	}
	if !IsCompatible(spot.Size, vt.Size) {
		return nil, ErrIncompatibleVehicleType
	}

	if _, err := s.parkings.FindActiveBySpot(ctx, spot.SpotID); err == nil {
		return nil, ErrSpotOccupied
	} else if !errors.Is(err, ErrNoActiveParking) {
		return nil, err
	}
	if _, err := s.parkings.FindActiveByVehicle(ctx, vehicle.VehicleID); err == nil {
		return nil, ErrVehicleAlreadyParked
	} else if !errors.Is(err, ErrNoActiveParking) {
		return nil, err
	}

	parking := &models.Parking{
		ParkingID:    newID("PRK"),
		VehicleID:    vehicle.VehicleID,
		SpotID:       spot.SpotID,
		CheckInTime:  now.UTC(),
		Active:       true,
		PricePerHour: in.PricePerHour,
	}
	if err := s.parkings.Create(ctx, parking); err != nil {
		return nil, err
	}
	return parking, nil
}

// CheckOutInput identifies the active parking to close, by vehicle or by spot.
type CheckOutInput struct {
	VehicleID string
	SpotID    string
}

// CheckOut closes the active parking record and computes the total cost as
// fractional elapsed hours times the hourly rate. Only the vehicle's owner or
// an admin may check out; the checkout time never precedes the check-in time.
func (s *Service) CheckOut(ctx context.Context, principal Principal, in CheckOutInput, now time.Time) (*models.Parking, error) {
	var (
		active *models.Parking
		err    error
	)
	switch {
	case in.VehicleID != "":
		active, err = s.parkings.FindActiveByVehicle(ctx, in.VehicleID)
	case in.SpotID != "":
		active, err = s.parkings.FindActiveBySpot(ctx, in.SpotID)
	default:
		return nil, ErrNoActiveParking
	}
	if err != nil {
		return nil, err
	}

	vehicle, err := s.vehicles.FindByID(ctx, active.VehicleID)
	if err != nil {
		return nil, err
	}
	if !principal.IsAdmin() && vehicle.OwnerID != principal.UserID {
		return nil, ErrNotOwner
	}

	checkOut := now.UTC()
	if checkOut.Before(active.CheckInTime) {
		checkOut = active.CheckInTime
	}
	totalCost := checkOut.Sub(active.CheckInTime).Hours() * active.PricePerHour

	if err := s.parkings.Close(ctx, active.ParkingID, checkOut, totalCost); err != nil {
		return nil, err
	}

	active.CheckOutTime = &checkOut
	active.Active = false
	active.TotalCost = &totalCost
	return active, nil
}

// Reserve books a spot for maintenance or similar. A spot with a vehicle on it
// cannot be reserved, and reserving an already-reserved spot is rejected; use
// Unreserve to clear a reservation.
func (s *Service) Reserve(ctx context.Context, spotID, reason string) (*models.ParkingSpot, error) {
	spot, err := s.spots.FindByID(ctx, spotID)
	if err != nil {
		return nil, err
	}
	if _, err := s.parkings.FindActiveBySpot(ctx, spot.SpotID); err == nil {
		return nil, ErrSpotOccupied
	} else if !errors.Is(err, ErrNoActiveParking) {
		return nil, err
	}
	if spot.IsAdminReserved {
		return nil, ErrAlreadyReserved
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = "Reserved by Admin"
	}
	if err := s.spots.SetReservation(ctx, spot.SpotID, true, reason); err != nil {
		return nil, err
	}
	spot.IsAdminReserved = true
	spot.ReservedReason = reason
	return spot, nil
}

// Unreserve clears an admin reservation.
func (s *Service) Unreserve(ctx context.Context, spotID string) (*models.ParkingSpot, error) {
	spot, err := s.spots.FindByID(ctx, spotID)
	if err != nil {
		return nil, err
	}
	if !spot.IsAdminReserved {
		return nil, ErrNotReserved
	}
	if err := s.spots.SetReservation(ctx, spot.SpotID, false, ""); err != nil {
		return nil, err
	}
	spot.IsAdminReserved = false
	spot.ReservedReason = ""
	return spot, nil
}
