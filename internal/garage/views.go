// server/internal/garage/views.go
package garage

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"garage-api-server/internal/models"
)

// SpotFilter narrows the availability listing. SizeClass takes the display
// names Small (sizes 1-2), Medium (3-5) and Large (6-10); TypeID keeps only
// spots the given vehicle type may occupy.
type SpotFilter struct {
	SizeClass  string
	SpotNumber int
	TypeID     string
}

// SearchSpots lists spots with derived status, the occupying vehicle (if any)
// and the single vehicle type each spot fits, ordered by spot number.
func (s *Service) SearchSpots(ctx context.Context, filter SpotFilter) ([]SpotView, error) {
	spots, err := s.spots.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	active, err := s.parkings.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	types, err := s.types.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	var filterType *models.VehicleType
	if filter.TypeID != "" {
		filterType, err = s.types.FindByID(ctx, filter.TypeID)
		if err != nil {
			return nil, err
		}
	}

	activeBySpot := make(map[string]*models.Parking, len(active))
	for i := range active {
		activeBySpot[active[i].SpotID] = &active[i]
	}

	views := []SpotView{}
	for _, spot := range spots {
		if !matchSizeClass(spot.Size, filter.SizeClass) {
			continue
		}
		if filter.SpotNumber > 0 && spot.SpotNumber != filter.SpotNumber {
			continue
		}
		if filterType != nil && !IsCompatible(spot.Size, filterType.Size) {
			continue
		}
		view, err := s.buildSpotView(ctx, spot, activeBySpot[spot.SpotID], types)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}

	sort.Slice(views, func(i, j int) bool { return views[i].SpotNumber < views[j].SpotNumber })
	return views, nil
}

// SpotDetails returns one spot with its derived status and occupant.
func (s *Service) SpotDetails(ctx context.Context, spotID string) (*SpotView, error) {
	spot, err := s.spots.FindByID(ctx, spotID)
	if err != nil {
		return nil, err
	}
	types, err := s.types.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	active, err := s.parkings.FindActiveBySpot(ctx, spot.SpotID)
	if err != nil && !errors.Is(err, ErrNoActiveParking) {
		return nil, err
	}
	return s.buildSpotView(ctx, *spot, active, types)
}

func (s *Service) buildSpotView(ctx context.Context, spot models.ParkingSpot, active *models.Parking, types []models.VehicleType) (*SpotView, error) {
	view := &SpotView{
		SpotID:          spot.SpotID,
		SpotNumber:      spot.SpotNumber,
		Size:            spot.Size,
		Status:          StatusOf(spot, active != nil),
		IsAdminReserved: spot.IsAdminReserved,
		ReservedReason:  spot.ReservedReason,
	}
	if allowed := AllowedType(spot.Size, types); allowed != nil {
		view.AllowedTypeName = allowed.Name
	}
	if active != nil {
		vehicle, err := s.vehicles.FindByID(ctx, active.VehicleID)
		if err != nil {
			if errors.Is(err, ErrVehicleNotFound) {
				return view, nil
			}
			return nil, err
		}
		view.RegistrationNumber = vehicle.RegistrationNumber
		view.OwnerID = vehicle.OwnerID
		view.CheckInTime = &active.CheckInTime
		if vt := typeByID(types, vehicle.TypeID); vt != nil {
			view.OccupantTypeName = vt.Name
		}
	}
	return view, nil
}

// ParkingView is an active or closed parking joined with its vehicle, owner
// and spot, the shape the overview and member listings return.
type ParkingView struct {
	ParkingID          string     `json:"parkingID"`
	VehicleID          string     `json:"vehicleID"`
	RegistrationNumber string     `json:"registrationNumber"`
	TypeName           string     `json:"typeName"`
	Color              string     `json:"color"`
	Manufacturer       string     `json:"manufacturer"`
	Model              string     `json:"model"`
	OwnerID            string     `json:"ownerID"`
	OwnerName          string     `json:"ownerName"`
	SpotID             string     `json:"spotID"`
	SpotNumber         int        `json:"spotNumber"`
	SpotSize           int        `json:"spotSize"`
	CheckInTime        time.Time  `json:"checkInTime"`
	CheckOutTime       *time.Time `json:"checkOutTime,omitempty"`
	PricePerHour       float64    `json:"pricePerHour"`
	TotalCost          *float64   `json:"totalCost,omitempty"`
}

// OverviewFilter narrows the active-parkings overview by substring match.
type OverviewFilter struct {
	TypeName           string
	RegistrationNumber string
}

// ActiveParkings is the admin overview of everything currently parked, ordered
// by spot number.
func (s *Service) ActiveParkings(ctx context.Context, filter OverviewFilter) ([]ParkingView, error) {
	active, err := s.parkings.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	views, err := s.buildParkingViews(ctx, active)
	if err != nil {
		return nil, err
	}

	filtered := []ParkingView{}
	typeNeedle := strings.ToLower(strings.TrimSpace(filter.TypeName))
	regNeedle := strings.ToUpper(strings.TrimSpace(filter.RegistrationNumber))
	for _, v := range views {
		if typeNeedle != "" && !strings.Contains(strings.ToLower(v.TypeName), typeNeedle) {
			continue
		}
		if regNeedle != "" && !strings.Contains(v.RegistrationNumber, regNeedle) {
			continue
		}
		filtered = append(filtered, v)
	}

	sort.Slice(filtered, func(i, j int) bool { return filtered[i].SpotNumber < filtered[j].SpotNumber })
	return filtered, nil
}

// MemberParkings lists the principal's own active parkings.
func (s *Service) MemberParkings(ctx context.Context, principal Principal) ([]ParkingView, error) {
	active, err := s.parkings.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	views, err := s.buildParkingViews(ctx, active)
	if err != nil {
		return nil, err
	}

	own := []ParkingView{}
	for _, v := range views {
		if v.OwnerID == principal.UserID {
			own = append(own, v)
		}
	}
	sort.Slice(own, func(i, j int) bool { return own[i].SpotNumber < own[j].SpotNumber })
	return own, nil
}

// Stats recomputes the fleet-wide availability summary.
func (s *Service) Stats(ctx context.Context) (*models.GarageStats, error) {
	spots, err := s.spots.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	active, err := s.parkings.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	stats := ComputeStats(spots, active)
	return &stats, nil
}

func (s *Service) buildParkingViews(ctx context.Context, parkings []models.Parking) ([]ParkingView, error) {
	types, err := s.types.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]ParkingView, 0, len(parkings))
	for _, p := range parkings {
		view := ParkingView{
			ParkingID:    p.ParkingID,
			VehicleID:    p.VehicleID,
			SpotID:       p.SpotID,
			CheckInTime:  p.CheckInTime,
			CheckOutTime: p.CheckOutTime,
			PricePerHour: p.PricePerHour,
			TotalCost:    p.TotalCost,
		}
		vehicle, err := s.vehicles.FindByID(ctx, p.VehicleID)
		if err == nil {
			view.RegistrationNumber = vehicle.RegistrationNumber
			view.Color = vehicle.Color
			view.Manufacturer = vehicle.Manufacturer
			view.Model = vehicle.Model
			view.OwnerID = vehicle.OwnerID
			if vt := typeByID(types, vehicle.TypeID); vt != nil {
				view.TypeName = vt.Name
			}
			if owner, err := s.users.FindByID(ctx, vehicle.OwnerID); err == nil {
				view.OwnerName = strings.TrimSpace(owner.FirstName + " " + owner.LastName)
			}
		} else if !errors.Is(err, ErrVehicleNotFound) {
			return nil, err
		}
		spot, err := s.spots.FindByID(ctx, p.SpotID)
		if err == nil {
			view.SpotNumber = spot.SpotNumber
			view.SpotSize = spot.Size
		} else if !errors.Is(err, ErrSpotNotFound) {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func typeByID(types []models.VehicleType, typeID string) *models.VehicleType {
	for i := range types {
		if types[i].TypeID == typeID {
			return &types[i]
		}
	}
	return nil
}

func matchSizeClass(size int, class string) bool {
	switch strings.ToLower(strings.TrimSpace(class)) {
	case "":
		return true
	case "small":
		return size >= 1 && size <= 2
	case "medium":
		return size >= 3 && size <= 5
	case "large":
		return size >= 6 && size <= 10
	default:
		return true
	}
}
