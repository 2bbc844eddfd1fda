package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"studypal_server/src/models"
)

// RequestService owns the connection requests collection. It is a thin
// persistence layer: no business rules beyond the server-side stamping of
// status and createdAt at insert time.
type RequestService struct {
	Requests *mongo.Collection
}

// Insert stores a new connection request. Status and createdAt are always
// assigned here; caller-supplied values for either are overwritten.
func (s *RequestService) Insert(ctx context.Context, req models.ConnectionRequest) (models.ConnectionRequest, error) {
	req.Id = primitive.NewObjectID()
	req.Status = models.RequestStatusPending
	req.CreatedAt = time.Now().UTC()

	if _, err := s.Requests.InsertOne(ctx, req); err != nil {
		return models.ConnectionRequest{}, err
	}
	return req, nil
}

// ListBySender returns every request with the given senderEmail, in
// insertion order.
func (s *RequestService) ListBySender(ctx context.Context, email string) ([]models.ConnectionRequest, error) {
	cursor, err := s.Requests.Find(ctx, bson.M{"senderEmail": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	requests := []models.ConnectionRequest{}
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// Update replaces exactly the fields present in fields on the request with
// the given id and returns the post-update document. A missing id is an
// explicit ErrNotFound, never an empty success.
func (s *RequestService) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.ConnectionRequest, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	// The id is immutable; strip it so a caller echoing the document back
	// cannot trigger an _id rewrite error.
	delete(fields, "_id")
	delete(fields, "id")

	var updated models.ConnectionRequest
	if len(fields) == 0 {
		err = s.Requests.FindOne(ctx, bson.M{"_id": oid}).Decode(&updated)
	} else {
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		err = s.Requests.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": fields}, opts).Decode(&updated)
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the request with the given id and reports how many
// documents were removed. A missing id yields 0, not an error.
func (s *RequestService) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrInvalidID
	}

	res, err := s.Requests.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
