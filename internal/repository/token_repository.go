package repository

import (
	"errors"

	"github.com/assistco/assist-api/internal/models"
	"github.com/assistco/assist-api/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTokenRepository is a GORM implementation of TokenRepository
type GormTokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates a new TokenRepository
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &GormTokenRepository{db: db}
}

// GetOrCreate returns the account's token, issuing a fresh key only
// when none exists. Concurrent callers cannot issue two tokens: the
// insert runs with ON CONFLICT DO NOTHING against the per-account
// unique index and the loser re-selects.
func (r *GormTokenRepository) GetOrCreate(userType string, userID uint) (*models.AuthToken, error) {
	var token models.AuthToken
	err := r.db.Where("user_type = ? AND user_id = ?", userType, userID).
		First(&token).Error
	if err == nil {
		return &token, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	token = models.AuthToken{
		Key:      utils.GenerateTokenKey(),
		UserType: userType,
		UserID:   userID,
	}
	res := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&token)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected > 0 {
		return &token, nil
	}

	if err := r.db.Where("user_type = ? AND user_id = ?", userType, userID).
		First(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

// FindByKey finds a token by its opaque key
func (r *GormTokenRepository) FindByKey(key string) (*models.AuthToken, error) {
	var token models.AuthToken
	if err := r.db.Where("key = ?", key).First(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

// DeleteForUser revokes the account's token. Deleting an absent token
// is not an error; the next login simply issues a new one.
func (r *GormTokenRepository) DeleteForUser(userType string, userID uint) error {
	return r.db.Where("user_type = ? AND user_id = ?", userType, userID).
		Delete(&models.AuthToken{}).Error
}
