// server/internal/database/indexes.go
package database

import (
	"context"

	"garage-api-server/internal/garage/mongostore"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the unique indexes the stores rely on. The two partial
// indexes on parkings are what guarantee at most one active record per spot and
// per vehicle even under concurrent check-ins; everything else is ordinary
// uniqueness on business keys.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(mongostore.ParkingsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "spotID", Value: 1}},
			Options: options.Index().
				SetName(mongostore.ActiveSpotIndex).
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"active": true}),
		},
		{
			Keys: bson.D{{Key: "vehicleID", Value: 1}},
			Options: options.Index().
				SetName(mongostore.ActiveVehicleIndex).
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"active": true}),
		},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection(mongostore.UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection(mongostore.VehiclesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "registrationNumber", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection(mongostore.SpotsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "spotNumber", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection(mongostore.VehicleTypesCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "size", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	return err
}
