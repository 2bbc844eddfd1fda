package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PartnerProfile is a semi-structured document: the fields the matching
// workflow relies on are typed, everything else the caller submitted is
// carried opaquely in Extra. PartnerCount is owned by the server and only
// ever changes through an atomic $inc.
type PartnerProfile struct {
	Id           primitive.ObjectID     `json:"id" bson:"_id,omitempty"`
	Name         string                 `json:"name" bson:"name,omitempty"`
	Subject      string                 `json:"subject" bson:"subject,omitempty"`
	Location     string                 `json:"location" bson:"location,omitempty"`
	Rating       float64                `json:"rating" bson:"rating,omitempty"`
	Experience   float64                `json:"experience" bson:"experience,omitempty"`
	PartnerCount int                    `json:"partnerCount" bson:"partnerCount"`
	Extra        map[string]interface{} `json:"-" bson:",inline"`
}

// MarshalJSON flattens Extra into the top-level object so the wire shape
// matches the stored document. Typed fields win over extension keys.
func (p PartnerProfile) MarshalJSON() ([]byte, error) {
	doc := make(map[string]interface{}, len(p.Extra)+7)
	for k, v := range p.Extra {
		doc[k] = v
	}
	doc["id"] = p.Id
	doc["name"] = p.Name
	doc["subject"] = p.Subject
	doc["location"] = p.Location
	doc["rating"] = p.Rating
	doc["experience"] = p.Experience
	doc["partnerCount"] = p.PartnerCount
	return json.Marshal(doc)
}
