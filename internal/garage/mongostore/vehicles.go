// server/internal/garage/mongostore/vehicles.go
package mongostore

import (
	"context"
	"errors"

	"garage-api-server/internal/garage"
	"garage-api-server/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type VehicleStore struct {
	coll *mongo.Collection
}

func (s *VehicleStore) Create(ctx context.Context, v *models.Vehicle) error {
	_, err := s.coll.InsertOne(ctx, v)
	if mongo.IsDuplicateKeyError(err) {
		return garage.ErrDuplicateRegistration
	}
	return err
}

func (s *VehicleStore) FindByID(ctx context.Context, vehicleID string) (*models.Vehicle, error) {
	var v models.Vehicle
	err := s.coll.FindOne(ctx, bson.M{"vehicleID": vehicleID}).Decode(&v)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, garage.ErrVehicleNotFound
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *VehicleStore) FindByRegistration(ctx context.Context, registrationNumber string) (*models.Vehicle, error) {
	var v models.Vehicle
	err := s.coll.FindOne(ctx, bson.M{"registrationNumber": registrationNumber}).Decode(&v)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, garage.ErrVehicleNotFound
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *VehicleStore) FindByOwner(ctx context.Context, ownerID string) ([]models.Vehicle, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"ownerID": ownerID})
	if err != nil {
		return nil, err
	}
	vehicles := []models.Vehicle{}
	if err := cursor.All(ctx, &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (s *VehicleStore) CountByType(ctx context.Context, typeID string) (int64, error) {
	return s.coll.CountDocuments(ctx, bson.M{"typeID": typeID})
}

func (s *VehicleStore) Update(ctx context.Context, v *models.Vehicle) error {
	res, err := s.coll.UpdateOne(ctx, bson.M{"vehicleID": v.VehicleID}, bson.M{
		"$set": bson.M{
			"registrationNumber": v.RegistrationNumber,
			"typeID":             v.TypeID,
			"color":              v.Color,
			"manufacturer":       v.Manufacturer,
			"model":              v.Model,
			"documents":          v.Documents,
		},
	})
	if mongo.IsDuplicateKeyError(err) {
		return garage.ErrDuplicateRegistration
	}
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return garage.ErrVehicleNotFound
	}
	return nil
}

func (s *VehicleStore) Delete(ctx context.Context, vehicleID string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"vehicleID": vehicleID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return garage.ErrVehicleNotFound
	}
	return nil
}

// DeleteByOwner removes all of an owner's vehicles and returns their IDs so the
// caller can cascade to the parking history.
func (s *VehicleStore) DeleteByOwner(ctx context.Context, ownerID string) ([]string, error) {
	vehicles, err := s.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(vehicles))
	for _, v := range vehicles {
		ids = append(ids, v.VehicleID)
	}
	if len(ids) == 0 {
		return ids, nil
	}
	_, err = s.coll.DeleteMany(ctx, bson.M{"vehicleID": bson.M{"$in": ids}})
	return ids, err
}
