// server/internal/database/seeder.go
package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"garage-api-server/internal/auth"
	"garage-api-server/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SeedAdmin creates the default admin account if none exists yet.
func SeedAdmin(db *mongo.Database, email, password string) error {
	userCollection := db.Collection("users")

	count, err := userCollection.CountDocuments(context.Background(), bson.M{"role": models.RoleAdmin})
	if err != nil {
		return err
	}
	if count > 0 {
		log.Println("Admin already exists. Seeding skipped.")
		return nil
	}

	log.Println("Admin not found. Seeding...")
	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := models.User{
		UserID:    fmt.Sprintf("USR-%s", uuid.New().String()[:8]),
		Email:     email,
		Password:  hashedPassword,
		FirstName: "Garage",
		LastName:  "Admin",
		Role:      models.RoleAdmin,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := userCollection.InsertOne(context.Background(), admin); err != nil {
		return err
	}

	log.Println("Admin seeded successfully.")
	return nil
}

// SeedGarage creates the three standard vehicle types and a bank of numbered
// spots when the collections are still empty.
func SeedGarage(db *mongo.Database) error {
	typeCollection := db.Collection("vehicletypes")
	spotCollection := db.Collection("parkingspots")

	count, err := typeCollection.CountDocuments(context.Background(), bson.M{})
	if err != nil {
		return err
	}
	if count == 0 {
		log.Println("Seeding vehicle types...")
		types := []interface{}{
			models.VehicleType{TypeID: fmt.Sprintf("TYPE-%s", uuid.New().String()[:8]), Name: "Motorcycle", Size: 1},
			models.VehicleType{TypeID: fmt.Sprintf("TYPE-%s", uuid.New().String()[:8]), Name: "Car", Size: 2},
			models.VehicleType{TypeID: fmt.Sprintf("TYPE-%s", uuid.New().String()[:8]), Name: "Truck", Size: 3},
		}
		if _, err := typeCollection.InsertMany(context.Background(), types); err != nil {
			return err
		}
	}

	count, err = spotCollection.CountDocuments(context.Background(), bson.M{})
	if err != nil {
		return err
	}
	if count == 0 {
		log.Println("Seeding parking spots...")
		now := time.Now().UTC()
		spots := []interface{}{}
		// Ten spots per size class.
		number := 1
		for size := 1; size <= 3; size++ {
			for i := 0; i < 10; i++ {
				spots = append(spots, models.ParkingSpot{
					SpotID:     fmt.Sprintf("SPOT-%s", uuid.New().String()[:8]),
					SpotNumber: number,
					Size:       size,
					CreatedAt:  now,
				})
				number++
			}
		}
		if _, err := spotCollection.InsertMany(context.Background(), spots); err != nil {
			return err
		}
	}

	return nil
}
