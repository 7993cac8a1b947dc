// server/internal/garage/mongostore/parkings.go
package mongostore

import (
	"context"
	"errors"
	"strings"
	"time"

	"garage-api-server/internal/garage"
	"garage-api-server/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ParkingStore struct {
	coll *mongo.Collection
}

// Create inserts an active parking record. Two concurrent check-ins for the
// same spot or vehicle race on the partial unique indexes; the loser's
// duplicate-key error is mapped to the sentinel named by the violated index.
func (s *ParkingStore) Create(ctx context.Context, p *models.Parking) error {
	_, err := s.coll.InsertOne(ctx, p)
	if mongo.IsDuplicateKeyError(err) {
		if indexViolated(err, ActiveVehicleIndex) {
			return garage.ErrVehicleAlreadyParked
		}
		return garage.ErrSpotOccupied
	}
	return err
}

func indexViolated(err error, indexName string) bool {
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if strings.Contains(e.Message, indexName) {
				return true
			}
		}
	}
	return false
}

func (s *ParkingStore) FindActiveBySpot(ctx context.Context, spotID string) (*models.Parking, error) {
	var p models.Parking
	err := s.coll.FindOne(ctx, bson.M{"spotID": spotID, "active": true}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, garage.ErrNoActiveParking
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *ParkingStore) FindActiveByVehicle(ctx context.Context, vehicleID string) (*models.Parking, error) {
	var p models.Parking
	err := s.coll.FindOne(ctx, bson.M{"vehicleID": vehicleID, "active": true}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, garage.ErrNoActiveParking
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *ParkingStore) FindActive(ctx context.Context) ([]models.Parking, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"active": true})
	if err != nil {
		return nil, err
	}
	parkings := []models.Parking{}
	if err := cursor.All(ctx, &parkings); err != nil {
		return nil, err
	}
	return parkings, nil
}

// Close ends an active record in one update, so the record can never be closed
// twice and the partial indexes release the spot and vehicle atomically.
func (s *ParkingStore) Close(ctx context.Context, parkingID string, checkOut time.Time, totalCost float64) error {
	res, err := s.coll.UpdateOne(ctx,
		bson.M{"parkingID": parkingID, "active": true},
		bson.M{"$set": bson.M{
			"active":       false,
			"checkOutTime": checkOut,
			"totalCost":    totalCost,
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return garage.ErrNoActiveParking
	}
	return nil
}

func (s *ParkingStore) DeleteByVehicles(ctx context.Context, vehicleIDs []string) error {
	if len(vehicleIDs) == 0 {
		return nil
	}
	_, err := s.coll.DeleteMany(ctx, bson.M{"vehicleID": bson.M{"$in": vehicleIDs}})
	return err
}
