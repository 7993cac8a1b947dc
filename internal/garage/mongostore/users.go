// server/internal/garage/mongostore/users.go
package mongostore

import (
	"context"
	"errors"

	"garage-api-server/internal/garage"
	"garage-api-server/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserStore struct {
	coll *mongo.Collection
}

func (s *UserStore) Create(ctx context.Context, user *models.User) error {
	_, err := s.coll.InsertOne(ctx, user)
	return err
}

func (s *UserStore) FindByID(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	err := s.coll.FindOne(ctx, bson.M{"userID": userID}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, garage.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, garage.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserStore) FindMembers(ctx context.Context) ([]models.User, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"role": models.RoleMember})
	if err != nil {
		return nil, err
	}
	members := []models.User{}
	if err := cursor.All(ctx, &members); err != nil {
		return nil, err
	}
	return members, nil
}

func (s *UserStore) Delete(ctx context.Context, userID string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"userID": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return garage.ErrUserNotFound
	}
	return nil
}
