package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"studypal_server/src/models"
)

// UserService is a pass-through over the users collection.
type UserService struct {
	Users *mongo.Collection
}

func (s *UserService) Insert(ctx context.Context, user models.User) (primitive.ObjectID, error) {
	user.Id = primitive.NewObjectID()
	if _, err := s.Users.InsertOne(ctx, user); err != nil {
		return primitive.NilObjectID, err
	}
	return user.Id, nil
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	cursor, err := s.Users.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
