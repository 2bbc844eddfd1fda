package services

import (
	"context"
	"errors"
	"regexp"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"studypal_server/src/models"
)

// PartnerService owns the partner profiles collection: profile creation,
// the search/sort listing, id lookups, and the partnerCount increment.
type PartnerService struct {
	Partners *mongo.Collection
}

// Create stores an arbitrary-shaped profile document, injecting a fresh id
// and partnerCount = 0. Whatever else the caller submitted is persisted
// as-is.
func (s *PartnerService) Create(ctx context.Context, profile map[string]interface{}) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	profile["_id"] = id
	profile["partnerCount"] = 0

	if _, err := s.Partners.InsertOne(ctx, profile); err != nil {
		return primitive.NilObjectID, err
	}
	return id, nil
}

// List returns profiles matching the optional search substring, ordered by
// the optional sort key. An empty search returns every profile; an
// unrecognized sort key preserves the store's natural order.
func (s *PartnerService) List(ctx context.Context, search, sortKey string) ([]models.PartnerProfile, error) {
	opts := options.Find()
	if sort := partnerSort(sortKey); sort != nil {
		opts.SetSort(sort)
	}

	cursor, err := s.Partners.Find(ctx, partnerFilter(search), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	partners := []models.PartnerProfile{}
	if err := cursor.All(ctx, &partners); err != nil {
		return nil, err
	}
	return partners, nil
}

// GetByID returns the profile with the given hex id. ErrInvalidID is
// returned for a malformed id, ErrNotFound when no profile matches.
func (s *PartnerService) GetByID(ctx context.Context, id string) (*models.PartnerProfile, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var partner models.PartnerProfile
	err = s.Partners.FindOne(ctx, bson.M{"_id": oid}).Decode(&partner)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &partner, nil
}

// IncrementCount adds 1 to the profile's partnerCount with a server-side
// $inc, so concurrent requests against the same profile cannot lose
// updates. A missing id is a silent no-op, matching UpdateOne semantics.
func (s *PartnerService) IncrementCount(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.Partners.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"partnerCount": 1}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		log.Warn().Str("partnerId", id.Hex()).Msg("partnerCount increment matched no profile")
	}
	return nil
}

// partnerFilter builds the listing filter: a case-insensitive substring
// match OR-ed across name, subject, and location. An empty search matches
// everything.
func partnerFilter(search string) bson.M {
	if search == "" {
		return bson.M{}
	}
	re := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
	return bson.M{"$or": []bson.M{
		{"name": re},
		{"subject": re},
		{"location": re},
	}}
}

// partnerSort maps the sort query parameter to a sort document: rating
// descending, experience ascending. Anything else means natural order.
func partnerSort(key string) bson.D {
	switch key {
	case "rating":
		return bson.D{{Key: "rating", Value: -1}}
	case "experience":
		return bson.D{{Key: "experience", Value: 1}}
	default:
		return nil
	}
}
