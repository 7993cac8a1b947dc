// server/internal/garage/admin.go
package garage

import (
	"context"
	"errors"
	"strings"
	"time"

	"garage-api-server/internal/models"
)

type SpotInput struct {
	SpotNumber int
	Size       int
}

// CreateSpot adds a parking spot with a unique spot number.
func (s *Service) CreateSpot(ctx context.Context, in SpotInput) (*models.ParkingSpot, error) {
	if _, err := s.spots.FindByNumber(ctx, in.SpotNumber); err == nil {
		return nil, ErrDuplicateSpotNumber
	} else if !errors.Is(err, ErrSpotNotFound) {
		return nil, err
	}

	spot := &models.ParkingSpot{
		SpotID:     newID("SPOT"),
		SpotNumber: in.SpotNumber,
		Size:       in.Size,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.spots.Create(ctx, spot); err != nil {
		return nil, err
	}
	return spot, nil
}

// UpdateSpot changes a spot's number or size. An occupied spot cannot be
// modified, and the spot number must stay unique.
func (s *Service) UpdateSpot(ctx context.Context, spotID string, in SpotInput) (*models.ParkingSpot, error) {
	spot, err := s.spots.FindByID(ctx, spotID)
	if err != nil {
		return nil, err
	}
	if _, err := s.parkings.FindActiveBySpot(ctx, spot.SpotID); err == nil {
		return nil, ErrSpotOccupied
	} else if !errors.Is(err, ErrNoActiveParking) {
		return nil, err
	}
	if other, err := s.spots.FindByNumber(ctx, in.SpotNumber); err == nil {
		if other.SpotID != spot.SpotID {
			return nil, ErrDuplicateSpotNumber
		}
	} else if !errors.Is(err, ErrSpotNotFound) {
		return nil, err
	}

	spot.SpotNumber = in.SpotNumber
	spot.Size = in.Size
	if err := s.spots.Update(ctx, spot); err != nil {
		return nil, err
	}
	return spot, nil
}

// DeleteSpot removes a spot unless a vehicle is parked on it.
func (s *Service) DeleteSpot(ctx context.Context, spotID string) error {
	spot, err := s.spots.FindByID(ctx, spotID)
	if err != nil {
		return err
	}
	if _, err := s.parkings.FindActiveBySpot(ctx, spot.SpotID); err == nil {
		return ErrSpotOccupied
	} else if !errors.Is(err, ErrNoActiveParking) {
		return err
	}
	return s.spots.Delete(ctx, spot.SpotID)
}

type VehicleTypeInput struct {
	Name string
	Size int
}

// CreateVehicleType adds a vehicle type. Both the name and the size must be
// unique; sizes being unique is what makes the exact-match compatibility rule
// unambiguous.
func (s *Service) CreateVehicleType(ctx context.Context, in VehicleTypeInput) (*models.VehicleType, error) {
	if err := s.checkTypeUniqueness(ctx, in, ""); err != nil {
		return nil, err
	}
	vt := &models.VehicleType{
		TypeID: newID("TYPE"),
		Name:   strings.TrimSpace(in.Name),
		Size:   in.Size,
	}
	if err := s.types.Create(ctx, vt); err != nil {
		return nil, err
	}
	return vt, nil
}

// UpdateVehicleType edits a type while preserving name/size uniqueness.
func (s *Service) UpdateVehicleType(ctx context.Context, typeID string, in VehicleTypeInput) (*models.VehicleType, error) {
	vt, err := s.types.FindByID(ctx, typeID)
	if err != nil {
		return nil, err
	}
	if err := s.checkTypeUniqueness(ctx, in, vt.TypeID); err != nil {
		return nil, err
	}
	vt.Name = strings.TrimSpace(in.Name)
	vt.Size = in.Size
	if err := s.types.Update(ctx, vt); err != nil {
		return nil, err
	}
	return vt, nil
}

// DeleteVehicleType removes a type that no vehicle references.
func (s *Service) DeleteVehicleType(ctx context.Context, typeID string) error {
	vt, err := s.types.FindByID(ctx, typeID)
	if err != nil {
		return err
	}
	count, err := s.vehicles.CountByType(ctx, vt.TypeID)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrVehicleTypeInUse
	}
	return s.types.Delete(ctx, vt.TypeID)
}

func (s *Service) checkTypeUniqueness(ctx context.Context, in VehicleTypeInput, selfID string) error {
	all, err := s.types.FindAll(ctx)
	if err != nil {
		return err
	}
	name := strings.TrimSpace(in.Name)
	for _, other := range all {
		if other.TypeID == selfID {
			continue
		}
		if strings.EqualFold(other.Name, name) {
			return ErrDuplicateTypeName
		}
		if other.Size == in.Size {
			return ErrDuplicateTypeSize
		}
	}
	return nil
}

type VehicleInput struct {
	RegistrationNumber string
	TypeID             string
	Color              string
	Manufacturer       string
	Model              string
}

// RegisterVehicle creates a vehicle for the authenticated member. The owner
// must pass the minimum-age check and the normalized registration number must
// be unique.
func (s *Service) RegisterVehicle(ctx context.Context, principal Principal, in VehicleInput, now time.Time) (*models.Vehicle, error) {
	owner, err := s.users.FindByID(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}
	if err := CheckEligibility(owner.PersonalNumber, now); err != nil {
		return nil, err
	}

	reg := NormalizeRegistration(in.RegistrationNumber)
	if reg == "" {
		return nil, ErrInvalidRegistrationNumber
	}
	if _, err := s.vehicles.FindByRegistration(ctx, reg); err == nil {
		return nil, ErrDuplicateRegistration
	} else if !errors.Is(err, ErrVehicleNotFound) {
		return nil, err
	}
	if _, err := s.types.FindByID(ctx, in.TypeID); err != nil {
		return nil, err
	}

	vehicle := &models.Vehicle{
		VehicleID:          newID("VEH"),
		RegistrationNumber: reg,
		TypeID:             in.TypeID,
		OwnerID:            owner.UserID,
		Color:              in.Color,
		Manufacturer:       in.Manufacturer,
		Model:              in.Model,
		CreatedAt:          now.UTC(),
	}
	if err := s.vehicles.Create(ctx, vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

// UpdateVehicle edits a vehicle the principal owns (admins may edit any).
func (s *Service) UpdateVehicle(ctx context.Context, principal Principal, vehicleID string, in VehicleInput) (*models.Vehicle, error) {
	vehicle, err := s.vehicles.FindByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if !principal.IsAdmin() && vehicle.OwnerID != principal.UserID {
		return nil, ErrNotOwner
	}

	reg := NormalizeRegistration(in.RegistrationNumber)
	if reg == "" {
		return nil, ErrInvalidRegistrationNumber
	}
	if other, err := s.vehicles.FindByRegistration(ctx, reg); err == nil {
		if other.VehicleID != vehicle.VehicleID {
			return nil, ErrDuplicateRegistration
		}
	} else if !errors.Is(err, ErrVehicleNotFound) {
		return nil, err
	}
	if _, err := s.types.FindByID(ctx, in.TypeID); err != nil {
		return nil, err
	}

	vehicle.RegistrationNumber = reg
	vehicle.TypeID = in.TypeID
	vehicle.Color = in.Color
	vehicle.Manufacturer = in.Manufacturer
	vehicle.Model = in.Model
	if err := s.vehicles.Update(ctx, vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

// DeleteVehicle removes a vehicle and its parking history. A vehicle that is
// currently parked must be checked out first.
func (s *Service) DeleteVehicle(ctx context.Context, principal Principal, vehicleID string) error {
	vehicle, err := s.vehicles.FindByID(ctx, vehicleID)
	if err != nil {
		return err
	}
	if !principal.IsAdmin() && vehicle.OwnerID != principal.UserID {
		return ErrNotOwner
	}
	if _, err := s.parkings.FindActiveByVehicle(ctx, vehicle.VehicleID); err == nil {
		return ErrVehicleAlreadyParked
	} else if !errors.Is(err, ErrNoActiveParking) {
		return err
	}
	if err := s.parkings.DeleteByVehicles(ctx, []string{vehicle.VehicleID}); err != nil {
		return err
	}
	return s.vehicles.Delete(ctx, vehicle.VehicleID)
}

// DeleteMember removes a member together with their vehicles and the vehicles'
// parking history.
func (s *Service) DeleteMember(ctx context.Context, userID string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	vehicleIDs, err := s.vehicles.DeleteByOwner(ctx, user.UserID)
	if err != nil {
		return err
	}
	if len(vehicleIDs) > 0 {
		if err := s.parkings.DeleteByVehicles(ctx, vehicleIDs); err != nil {
			return err
		}
	}
	return s.users.Delete(ctx, user.UserID)
}

// NormalizeRegistration canonicalizes a registration number the way it is
// stored: trimmed and upper-cased.
func NormalizeRegistration(registrationNumber string) string {
	return strings.ToUpper(strings.TrimSpace(registrationNumber))
}
