package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"studypal_server/src/models"
)

// TestimonialService is a pass-through over the testimonials collection.
type TestimonialService struct {
	Testimonials *mongo.Collection
}

func (s *TestimonialService) Insert(ctx context.Context, t models.Testimonial) (primitive.ObjectID, error) {
	t.Id = primitive.NewObjectID()
	if _, err := s.Testimonials.InsertOne(ctx, t); err != nil {
		return primitive.NilObjectID, err
	}
	return t.Id, nil
}

func (s *TestimonialService) List(ctx context.Context) ([]models.Testimonial, error) {
	cursor, err := s.Testimonials.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	testimonials := []models.Testimonial{}
	if err := cursor.All(ctx, &testimonials); err != nil {
		return nil, err
	}
	return testimonials, nil
}
