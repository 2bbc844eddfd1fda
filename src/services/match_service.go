package services

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"studypal_server/src/models"
)

var (
	requestsSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "studypal_requests_submitted_total",
		Help: "Total number of connection requests recorded by the matching workflow.",
	})

	incrementFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "studypal_partner_increment_failures_total",
		Help: "Total number of partnerCount increments that failed after the request was recorded.",
	})
)

// MatchService orchestrates the matching workflow: record the connection
// request, then bump the target partner's counter.
type MatchService struct {
	Partners *PartnerService
	Requests *RequestService
}

// SubmitRequest records a connection request against the partner with the
// given id. The ledger insert is the durability boundary: once it
// succeeds the request is recorded, and a failure of the follow-up counter
// increment is logged and counted but never surfaced to the caller. The
// two writes are deliberately not a transaction; partnerCount is a display
// hint and tolerates a brief undercount.
func (s *MatchService) SubmitRequest(ctx context.Context, partnerID string, payload models.ConnectionRequest) (models.ConnectionRequest, error) {
	oid, err := primitive.ObjectIDFromHex(partnerID)
	if err != nil {
		return models.ConnectionRequest{}, ErrInvalidID
	}

	created, err := s.Requests.Insert(ctx, payload)
	if err != nil {
		return models.ConnectionRequest{}, err
	}
	requestsSubmitted.Inc()

	if err := s.Partners.IncrementCount(ctx, oid); err != nil {
		incrementFailures.Inc()
		log.Error().Err(err).
			Str("partnerId", partnerID).
			Str("requestId", created.Id.Hex()).
			Msg("partnerCount increment failed after request insert")
	}

	return created, nil
}
