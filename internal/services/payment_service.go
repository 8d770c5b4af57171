package services

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"tripmate/internal/models/db_models"
	"tripmate/internal/repositories"
	"tripmate/pkg/utils"
)

// GatewayEvent is a uniquely-identified payment event delivered by the
// gateway. Metadata carries the local payment id, the paying user, and
// what the payment was for.
type GatewayEvent struct {
	ID       string
	Type     string
	Metadata map[string]string
	Raw      json.RawMessage
}

const eventCheckoutCompleted = "checkout.session.completed"

type PaymentServiceInterface interface {
	ProcessGatewayEvent(ctx context.Context, event GatewayEvent) error
}

type PaymentService struct {
	paymentRepo repositories.PaymentRepository
}

func NewPaymentService(paymentRepo repositories.PaymentRepository) PaymentServiceInterface {
	return &PaymentService{paymentRepo: paymentRepo}
}

// ProcessGatewayEvent applies the event at most once: an event id that
// was already recorded on any payment is acknowledged and skipped.
func (s *PaymentService) ProcessGatewayEvent(ctx context.Context, event GatewayEvent) error {
	if event.ID == "" {
		return utils.ErrInvalidInput
	}

	existing, err := s.paymentRepo.FindByGatewayEventID(ctx, event.ID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		log.Printf("payment event %s already processed, skipping", event.ID)
		return nil
	}

	switch event.Type {
	case eventCheckoutCompleted:
		return s.applyCheckoutCompleted(ctx, event)
	default:
		log.Printf("unhandled payment event type: %s", event.Type)
		return nil
	}
}

func (s *PaymentService) applyCheckoutCompleted(ctx context.Context, event GatewayEvent) error {
	paymentID, err := uuid.Parse(event.Metadata["payment_id"])
	if err != nil {
		return utils.ErrInvalidInput
	}
	userID, err := uuid.Parse(event.Metadata["user_id"])
	if err != nil {
		return utils.ErrInvalidInput
	}
	paymentFor := event.Metadata["payment_for"]
	if paymentFor == "" {
		return utils.ErrInvalidInput
	}

	payment, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if payment == nil {
		return utils.ErrPaymentNotFound
	}

	markVerified := paymentFor == db_models.PaymentForSubscription ||
		paymentFor == db_models.PaymentForVerifiedBadge

	payload := datatypes.JSON(event.Raw)
	if len(payload) == 0 {
		payload = datatypes.JSON([]byte("{}"))
	}

	if err := s.paymentRepo.MarkSucceeded(ctx, paymentID, userID, event.ID, payload, markVerified); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
