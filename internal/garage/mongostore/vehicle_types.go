// server/internal/garage/mongostore/vehicle_types.go
package mongostore

import (
	"context"
	"errors"

	"garage-api-server/internal/garage"
	"garage-api-server/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type VehicleTypeStore struct {
	coll *mongo.Collection
}

func (s *VehicleTypeStore) Create(ctx context.Context, vt *models.VehicleType) error {
	_, err := s.coll.InsertOne(ctx, vt)
	return err
}

func (s *VehicleTypeStore) FindByID(ctx context.Context, typeID string) (*models.VehicleType, error) {
	var vt models.VehicleType
	err := s.coll.FindOne(ctx, bson.M{"typeID": typeID}).Decode(&vt)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, garage.ErrVehicleTypeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &vt, nil
}

func (s *VehicleTypeStore) FindAll(ctx context.Context) ([]models.VehicleType, error) {
	cursor, err := s.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"size": 1}))
	if err != nil {
		return nil, err
	}
	types := []models.VehicleType{}
	if err := cursor.All(ctx, &types); err != nil {
		return nil, err
	}
	return types, nil
}

func (s *VehicleTypeStore) Update(ctx context.Context, vt *models.VehicleType) error {
	res, err := s.coll.UpdateOne(ctx, bson.M{"typeID": vt.TypeID}, bson.M{
		"$set": bson.M{"name": vt.Name, "size": vt.Size},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return garage.ErrVehicleTypeNotFound
	}
	return nil
}

func (s *VehicleTypeStore) Delete(ctx context.Context, typeID string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"typeID": typeID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return garage.ErrVehicleTypeNotFound
	}
	return nil
}
