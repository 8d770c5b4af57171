package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	dbm "tripmate/internal/models/db_models"
)

type PaymentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*dbm.Payment, error)
	FindByGatewayEventID(ctx context.Context, eventID string) (*dbm.Payment, error)
	// MarkSucceeded records the gateway event on the payment and, when
	// markVerified is set, flips the paying user's verification flag,
	// all inside one transaction.
	MarkSucceeded(ctx context.Context, paymentID, userID uuid.UUID, eventID string, payload datatypes.JSON, markVerified bool) error
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*dbm.Payment, error) {
	var payment dbm.Payment
	err := r.db.WithContext(ctx).First(&payment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) FindByGatewayEventID(ctx context.Context, eventID string) (*dbm.Payment, error) {
	var payment dbm.Payment
	err := r.db.WithContext(ctx).
		Where("gateway_event_id = ?", eventID).
		First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) MarkSucceeded(ctx context.Context, paymentID, userID uuid.UUID, eventID string, payload datatypes.JSON, markVerified bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&dbm.Payment{}).
			Where("id = ?", paymentID).
			Updates(map[string]interface{}{
				"status":           dbm.PaymentStatusSuccess,
				"gateway_event_id": eventID,
				"gateway_data":     payload,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if markVerified {
			return tx.Model(&dbm.User{}).
				Where("id = ?", userID).
				Update("is_verified", true).Error
		}
		return nil
	})
}
