package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ConnectionRequest struct {
	Id            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	SenderEmail   string             `json:"senderEmail" bson:"senderEmail"`
	ReceiverEmail string             `json:"receiverEmail" bson:"receiverEmail"`
	Name          string             `json:"name" bson:"name"`
	StudyMode     string             `json:"studyMode" bson:"studyMode"`
	Time          string             `json:"time" bson:"time"`
	Location      string             `json:"location" bson:"location"`
	Status        RequestStatus      `json:"status" bson:"status"` // pending, accepted, rejected
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
}

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusAccepted RequestStatus = "accepted"
	RequestStatusRejected RequestStatus = "rejected"
)
