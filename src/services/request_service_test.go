package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"studypal_server/src/models"
)

func TestRequestService_Insert(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("stamps status and createdAt server-side", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		svc := &RequestService{Requests: mt.Coll}

		start := time.Now().UTC().Add(-time.Second)
		// Caller-supplied status and createdAt must be overwritten.
		created, err := svc.Insert(context.Background(), models.ConnectionRequest{
			SenderEmail:   "a@x.com",
			ReceiverEmail: "b@x.com",
			Name:          "Bob",
			StudyMode:     "online",
			Time:          "5pm",
			Location:      "NYC",
			Status:        models.RequestStatusAccepted,
			CreatedAt:     time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("Insert: %v", err)
		}
		if created.Status != models.RequestStatusPending {
			t.Errorf("Status = %q, want pending", created.Status)
		}
		if created.CreatedAt.Before(start) {
			t.Errorf("CreatedAt = %v, want server-assigned now", created.CreatedAt)
		}
		if created.Id.IsZero() {
			t.Error("Id not assigned")
		}
		if created.SenderEmail != "a@x.com" || created.StudyMode != "online" {
			t.Errorf("caller fields lost: %+v", created)
		}
	})

	mt.Run("propagates store error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    121,
			Message: "rejected",
		}))
		svc := &RequestService{Requests: mt.Coll}

		if _, err := svc.Insert(context.Background(), models.ConnectionRequest{}); err == nil {
			t.Fatal("expected write error")
		}
	})
}

func TestRequestService_ListBySender(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns the sender's requests", func(mt *mtest.T) {
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		first := mtest.CreateCursorResponse(1, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "senderEmail", Value: "a@x.com"},
			{Key: "status", Value: "pending"},
			{Key: "createdAt", Value: primitive.NewDateTimeFromTime(time.Now())},
		})
		killCursors := mtest.CreateCursorResponse(0, ns, mtest.NextBatch)
		mt.AddMockResponses(first, killCursors)
		svc := &RequestService{Requests: mt.Coll}

		requests, err := svc.ListBySender(context.Background(), "a@x.com")
		if err != nil {
			t.Fatalf("ListBySender: %v", err)
		}
		if len(requests) != 1 || requests[0].SenderEmail != "a@x.com" {
			t.Fatalf("unexpected result: %+v", requests)
		}
	})

	mt.Run("no requests yields empty non-nil slice", func(mt *mtest.T) {
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))
		svc := &RequestService{Requests: mt.Coll}

		requests, err := svc.ListBySender(context.Background(), "nobody@x.com")
		if err != nil {
			t.Fatalf("ListBySender: %v", err)
		}
		if requests == nil || len(requests) != 0 {
			t.Fatalf("want empty non-nil slice, got %v", requests)
		}
	})
}

func TestRequestService_Update(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("malformed id", func(mt *mtest.T) {
		svc := &RequestService{Requests: mt.Coll}

		_, err := svc.Update(context.Background(), "zzz", map[string]interface{}{"status": "accepted"})
		if !errors.Is(err, ErrInvalidID) {
			t.Fatalf("err = %v, want ErrInvalidID", err)
		}
	})

	mt.Run("missing id is an explicit not-found", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: nil},
		})
		svc := &RequestService{Requests: mt.Coll}

		_, err := svc.Update(context.Background(), primitive.NewObjectID().Hex(), map[string]interface{}{"status": "accepted"})
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("err = %v, want ErrNotFound", err)
		}
	})

	mt.Run("returns the post-update document", func(mt *mtest.T) {
		oid := primitive.NewObjectID()
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: bson.D{
				{Key: "_id", Value: oid},
				{Key: "senderEmail", Value: "a@x.com"},
				{Key: "status", Value: "accepted"},
				{Key: "createdAt", Value: primitive.NewDateTimeFromTime(time.Now())},
			}},
		})
		svc := &RequestService{Requests: mt.Coll}

		updated, err := svc.Update(context.Background(), oid.Hex(), map[string]interface{}{"status": "accepted"})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if updated.Status != models.RequestStatusAccepted {
			t.Errorf("Status = %q, want accepted", updated.Status)
		}
		if updated.Id != oid {
			t.Errorf("Id = %v, want %v", updated.Id, oid)
		}
	})

	mt.Run("empty field set reads back the current document", func(mt *mtest.T) {
		oid := primitive.NewObjectID()
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: oid},
			{Key: "status", Value: "pending"},
		}))
		svc := &RequestService{Requests: mt.Coll}

		// The id fields are stripped, leaving nothing to $set.
		updated, err := svc.Update(context.Background(), oid.Hex(), map[string]interface{}{"_id": oid.Hex()})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if updated.Status != models.RequestStatusPending {
			t.Errorf("Status = %q, want pending", updated.Status)
		}
	})
}

func TestRequestService_Delete(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("malformed id", func(mt *mtest.T) {
		svc := &RequestService{Requests: mt.Coll}

		_, err := svc.Delete(context.Background(), "zzz")
		if !errors.Is(err, ErrInvalidID) {
			t.Fatalf("err = %v, want ErrInvalidID", err)
		}
	})

	mt.Run("missing id reports zero removed, not an error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))
		svc := &RequestService{Requests: mt.Coll}

		count, err := svc.Delete(context.Background(), primitive.NewObjectID().Hex())
		if err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if count != 0 {
			t.Fatalf("count = %d, want 0", count)
		}
	})

	mt.Run("existing id reports one removed", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))
		svc := &RequestService{Requests: mt.Coll}

		count, err := svc.Delete(context.Background(), primitive.NewObjectID().Hex())
		if err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if count != 1 {
			t.Fatalf("count = %d, want 1", count)
		}
	})
}
