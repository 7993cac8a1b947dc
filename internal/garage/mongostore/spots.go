// server/internal/garage/mongostore/spots.go
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

type SpotStore struct {
	coll *mongo.Collection
}

func (s *SpotStore) Create(ctx context.Context, spot *models.ParkingSpot) error {
	_, err := s.coll.InsertOne(ctx, spot)
	if mongo.IsDuplicateKeyError(err) {
		return garage.ErrDuplicateSpotNumber
	}
	return err
}

func (s *SpotStore) FindByID(ctx context.Context, spotID string) (*models.ParkingSpot, error) {
	var spot models.ParkingSpot
	err := s.coll.FindOne(ctx, bson.M{"spotID": spotID}).Decode(&spot)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, garage.ErrSpotNotFound
	}
	if err != nil {
		return nil, err
	}
	return &spot, nil
}

func (s *SpotStore) FindByNumber(ctx context.Context, spotNumber int) (*models.ParkingSpot, error) {
	var spot models.ParkingSpot
	err := s.coll.FindOne(ctx, bson.M{"spotNumber": spotNumber}).Decode(&spot)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, garage.ErrSpotNotFound
	}
	if err != nil {
		return nil, err
	}
	return &spot, nil
}

func (s *SpotStore) FindAll(ctx context.Context) ([]models.ParkingSpot, error) {
	cursor, err := s.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"spotNumber": 1}))
	if err != nil {
		return nil, err
	}
	spots := []models.ParkingSpot{}
	if err := cursor.All(ctx, &spots); err != nil {
		return nil, err
	}
	return spots, nil
}

func (s *SpotStore) Update(ctx context.Context, spot *models.ParkingSpot) error {
	res, err := s.coll.UpdateOne(ctx, bson.M{"spotID": spot.SpotID}, bson.M{
		"$set": bson.M{"spotNumber": spot.SpotNumber, "size": spot.Size},
	})
	if mongo.IsDuplicateKeyError(err) {
		return garage.ErrDuplicateSpotNumber
	}
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return garage.ErrSpotNotFound
	}
	return nil
}

func (s *SpotStore) SetReservation(ctx context.Context, spotID string, reserved bool, reason string) error {
	update := bson.M{"$set": bson.M{"isAdminReserved": reserved, "reservedReason": reason}}
	if !reserved {
		update = bson.M{
			"$set":   bson.M{"isAdminReserved": false},
			"$unset": bson.M{"reservedReason": ""},
		}
	}
	res, err := s.coll.UpdateOne(ctx, bson.M{"spotID": spotID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return garage.ErrSpotNotFound
	}
	return nil
}

func (s *SpotStore) Delete(ctx context.Context, spotID string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"spotID": spotID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return garage.ErrSpotNotFound
	}
	return nil
}
