// server/internal/garage/store_mem_test.go
package garage

import (
	"context"
	"sync"
	"time"

	"garage-api-server/internal/models"
)

// memStore is an in-memory implementation of all five store interfaces used by
// the service tests. The mutex makes Create atomic, so the one-active-parking
// constraints behave like the database indexes do under concurrency.
type memStore struct {
	mu       sync.Mutex
	users    map[string]models.User
	types    map[string]models.VehicleType
	vehicles map[string]models.Vehicle
	spots    map[string]models.ParkingSpot
	parkings map[string]models.Parking
}

func newMemStore() *memStore {
	return &memStore{
		users:    map[string]models.User{},
		types:    map[string]models.VehicleType{},
		vehicles: map[string]models.Vehicle{},
		spots:    map[string]models.ParkingSpot{},
		parkings: map[string]models.Parking{},
	}
}

func (m *memStore) service() *Service {
	return NewService(m, m.typeStore(), m.vehicleStore(), m.spotStore(), m.parkingStore())
}

// UserStore

func (m *memStore) Create(ctx context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[u.UserID] = *u
	return nil
}

func (m *memStore) FindByID(ctx context.Context, userID string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &u, nil
}

func (m *memStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (m *memStore) FindMembers(ctx context.Context) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.User{}
	for _, u := range m.users {
		if u.Role == models.RoleMember {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *memStore) Delete(ctx context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[userID]; !ok {
		return ErrUserNotFound
	}
	delete(m.users, userID)
	return nil
}

// VehicleTypeStore

type memTypeStore struct{ *memStore }

func (m *memStore) typeStore() VehicleTypeStore { return memTypeStore{m} }

func (m memTypeStore) Create(ctx context.Context, vt *models.VehicleType) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.types[vt.TypeID] = *vt
	return nil
}

func (m memTypeStore) FindByID(ctx context.Context, typeID string) (*models.VehicleType, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	vt, ok := m.types[typeID]
	if !ok {
		return nil, ErrVehicleTypeNotFound
	}
	return &vt, nil
}

func (m memTypeStore) FindAll(ctx context.Context) ([]models.VehicleType, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.VehicleType{}
	for _, vt := range m.types {
		out = append(out, vt)
	}
	return out, nil
}

func (m memTypeStore) Update(ctx context.Context, vt *models.VehicleType) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.types[vt.TypeID]; !ok {
		return ErrVehicleTypeNotFound
	}
	m.types[vt.TypeID] = *vt
	return nil
}

func (m memTypeStore) Delete(ctx context.Context, typeID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.types[typeID]; !ok {
		return ErrVehicleTypeNotFound
	}
	delete(m.types, typeID)
	return nil
}

// VehicleStore

type memVehicleStore struct{ *memStore }

func (m *memStore) vehicleStore() VehicleStore { return memVehicleStore{m} }

func (m memVehicleStore) Create(ctx context.Context, v *models.Vehicle) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.vehicles[v.VehicleID] = *v
	return nil
}

func (m memVehicleStore) FindByID(ctx context.Context, vehicleID string) (*models.Vehicle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.vehicles[vehicleID]
	if !ok {
		return nil, ErrVehicleNotFound
	}
	return &v, nil
}

func (m memVehicleStore) FindByRegistration(ctx context.Context, registrationNumber string) (*models.Vehicle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, v := range m.vehicles {
		if v.RegistrationNumber == registrationNumber {
			v := v
			return &v, nil
		}
	}
	return nil, ErrVehicleNotFound
}

func (m memVehicleStore) FindByOwner(ctx context.Context, ownerID string) ([]models.Vehicle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Vehicle{}
	for _, v := range m.vehicles {
		if v.OwnerID == ownerID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m memVehicleStore) CountByType(ctx context.Context, typeID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, v := range m.vehicles {
		if v.TypeID == typeID {
			n++
		}
	}
	return n, nil
}

func (m memVehicleStore) Update(ctx context.Context, v *models.Vehicle) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.vehicles[v.VehicleID]; !ok {
		return ErrVehicleNotFound
	}
	m.vehicles[v.VehicleID] = *v
	return nil
}

func (m memVehicleStore) Delete(ctx context.Context, vehicleID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.vehicles[vehicleID]; !ok {
		return ErrVehicleNotFound
	}
	delete(m.vehicles, vehicleID)
	return nil
}

func (m memVehicleStore) DeleteByOwner(ctx context.Context, ownerID string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := []string{}
	for id, v := range m.vehicles {
		if v.OwnerID == ownerID {
			ids = append(ids, id)
			delete(m.vehicles, id)
		}
	}
	return ids, nil
}

// SpotStore

type memSpotStore struct{ *memStore }

func (m *memStore) spotStore() SpotStore { return memSpotStore{m} }

func (m memSpotStore) Create(ctx context.Context, spot *models.ParkingSpot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.spots[spot.SpotID] = *spot
	return nil
}

func (m memSpotStore) FindByID(ctx context.Context, spotID string) (*models.ParkingSpot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	spot, ok := m.spots[spotID]
	if !ok {
		return nil, ErrSpotNotFound
	}
	return &spot, nil
}

func (m memSpotStore) FindByNumber(ctx context.Context, spotNumber int) (*models.ParkingSpot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, spot := range m.spots {
		if spot.SpotNumber == spotNumber {
			spot := spot
			return &spot, nil
		}
	}
	return nil, ErrSpotNotFound
}

func (m memSpotStore) FindAll(ctx context.Context) ([]models.ParkingSpot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.ParkingSpot{}
	for _, spot := range m.spots {
		out = append(out, spot)
	}
	return out, nil
}

func (m memSpotStore) Update(ctx context.Context, spot *models.ParkingSpot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.spots[spot.SpotID]; !ok {
		return ErrSpotNotFound
	}
	m.spots[spot.SpotID] = *spot
	return nil
}

func (m memSpotStore) SetReservation(ctx context.Context, spotID string, reserved bool, reason string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	spot, ok := m.spots[spotID]
	if !ok {
		return ErrSpotNotFound
	}
	spot.IsAdminReserved = reserved
	spot.ReservedReason = reason
	m.spots[spotID] = spot
	return nil
}

func (m memSpotStore) Delete(ctx context.Context, spotID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.spots[spotID]; !ok {
		return ErrSpotNotFound
	}
	delete(m.spots, spotID)
	return nil
}

// ParkingStore

type memParkingStore struct{ *memStore }

func (m *memStore) parkingStore() ParkingStore { return memParkingStore{m} }

func (m memParkingStore) Create(ctx context.Context, p *models.Parking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, other := range m.parkings {
		if !other.Active {
			continue
		}
		if other.SpotID == p.SpotID {
			return ErrSpotOccupied
		}
		if other.VehicleID == p.VehicleID {
			return ErrVehicleAlreadyParked
		}
	}
	m.parkings[p.ParkingID] = *p
	return nil
}

func (m memParkingStore) FindActiveBySpot(ctx context.Context, spotID string) (*models.Parking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.parkings {
		if p.Active && p.SpotID == spotID {
			p := p
			return &p, nil
		}
	}
	return nil, ErrNoActiveParking
}

func (m memParkingStore) FindActiveByVehicle(ctx context.Context, vehicleID string) (*models.Parking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.parkings {
		if p.Active && p.VehicleID == vehicleID {
			p := p
			return &p, nil
		}
	}
	return nil, ErrNoActiveParking
}

func (m memParkingStore) FindActive(ctx context.Context) ([]models.Parking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Parking{}
	for _, p := range m.parkings {
		if p.Active {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m memParkingStore) Close(ctx context.Context, parkingID string, checkOut time.Time, totalCost float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.parkings[parkingID]
	if !ok || !p.Active {
		return ErrNoActiveParking
	}
	p.Active = false
	p.CheckOutTime = &checkOut
	p.TotalCost = &totalCost
	m.parkings[parkingID] = p
	return nil
}

func (m memParkingStore) DeleteByVehicles(ctx context.Context, vehicleIDs []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	wanted := make(map[string]bool, len(vehicleIDs))
	for _, id := range vehicleIDs {
		wanted[id] = true
	}
	for id, p := range m.parkings {
		if wanted[p.VehicleID] {
			delete(m.parkings, id)
		}
	}
	return nil
}
