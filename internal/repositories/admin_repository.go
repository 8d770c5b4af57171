package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "tripmate/internal/models/db_models"
)

type AdminRepository interface {
	// CreateWithUser inserts the User credential row and the Admin row in
	// one transaction so a half-created admin can never exist.
	CreateWithUser(ctx context.Context, user *dbm.User, admin *dbm.Admin) error
	FindByID(ctx context.Context, id uuid.UUID) (*dbm.Admin, error)
	List(ctx context.Context, page, pageSize int) ([]dbm.Admin, int64, error)
	UpdateFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	// DeleteWithUser removes the admin and its linked user row together.
	DeleteWithUser(ctx context.Context, id uuid.UUID) (*dbm.Admin, error)
	// SoftDeleteWithUser flags the admin deleted and flips the linked user
	// to DELETED in the same transaction.
	SoftDeleteWithUser(ctx context.Context, id uuid.UUID) (*dbm.Admin, error)
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) CreateWithUser(ctx context.Context, user *dbm.User, admin *dbm.Admin) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return tx.Create(admin).Error
	})
}

func (r *adminRepository) FindByID(ctx context.Context, id uuid.UUID) (*dbm.Admin, error) {
	var admin dbm.Admin
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = FALSE", id).
		First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) List(ctx context.Context, page, pageSize int) ([]dbm.Admin, int64, error) {
	var total int64
	scope := r.db.WithContext(ctx).Model(&dbm.Admin{}).Where("is_deleted = FALSE")
	if err := scope.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var admins []dbm.Admin
	err := r.db.WithContext(ctx).
		Where("is_deleted = FALSE").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order("created_at DESC").
		Find(&admins).Error
	return admins, total, err
}

func (r *adminRepository) UpdateFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	res := r.db.WithContext(ctx).
		Model(&dbm.Admin{}).
		Where("id = ? AND is_deleted = FALSE", id).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *adminRepository) DeleteWithUser(ctx context.Context, id uuid.UUID) (*dbm.Admin, error) {
	var admin dbm.Admin
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&admin, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&dbm.Admin{}, "id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&dbm.User{}, "email = ?", admin.Email).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) SoftDeleteWithUser(ctx context.Context, id uuid.UUID) (*dbm.Admin, error) {
	var admin dbm.Admin
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&admin, "id = ? AND is_deleted = FALSE", id).Error; err != nil {
			return err
		}
		if err := tx.Model(&admin).Update("is_deleted", true).Error; err != nil {
			return err
		}
		return tx.Model(&dbm.User{}).
			Where("email = ?", admin.Email).
			Update("status", dbm.UserStatusDeleted).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}
