package repositories

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"servimarket_backend/internal/models"
)

var (
	ErrPromoCodeNotFound  = errors.New("promo code not found")
	ErrPromoCodeExhausted = errors.New("promo code has no uses left")
)

// PromoFilter narrows the admin listing.
type PromoFilter struct {
	ActiveOnly bool
	Search     string
	Page       int
	Limit      int
}

type PromoRepository interface {
	Create(code *models.PromoCode) error
	GetByID(id string) (*models.PromoCode, error)
	GetByCode(code string) (*models.PromoCode, error)
	Update(code *models.PromoCode) error
	Delete(id string) error
	List(filter PromoFilter) ([]models.PromoCode, int64, error)
	IncrementUses(tx *gorm.DB, id string) error
	CreateUsage(tx *gorm.DB, usage *models.PromoCodeUsage) error
	CountUsages(promoCodeID string) (int64, error)
	DeactivateExpired(now time.Time) (int64, error)
}

type PromoRepositoryImpl struct {
	db *gorm.DB
}

func NewPromoRepository(db *gorm.DB) PromoRepository {
	return &PromoRepositoryImpl{db: db}
}

func (r *PromoRepositoryImpl) Create(code *models.PromoCode) error {
	return r.db.Create(code).Error
}

func (r *PromoRepositoryImpl) GetByID(id string) (*models.PromoCode, error) {
	var code models.PromoCode
	err := r.db.First(&code, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPromoCodeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &code, nil
}

func (r *PromoRepositoryImpl) GetByCode(code string) (*models.PromoCode, error) {
	var promo models.PromoCode
	err := r.db.First(&promo, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPromoCodeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &promo, nil
}

func (r *PromoRepositoryImpl) Update(code *models.PromoCode) error {
	return r.db.Save(code).Error
}

func (r *PromoRepositoryImpl) Delete(id string) error {
	return r.db.Delete(&models.PromoCode{}, "id = ?", id).Error
}

func (r *PromoRepositoryImpl) List(filter PromoFilter) ([]models.PromoCode, int64, error) {
	query := r.db.Model(&models.PromoCode{})
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if filter.Search != "" {
		like := "%" + strings.ToUpper(filter.Search) + "%"
		query = query.Where("code LIKE ? OR UPPER(description) LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var codes []models.PromoCode
	err := query.Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&codes).Error
	return codes, total, err
}

// IncrementUses bumps uses_count only while uses remain, so two concurrent
// applications of the last use cannot both succeed.
func (r *PromoRepositoryImpl) IncrementUses(tx *gorm.DB, id string) error {
	res := tx.Model(&models.PromoCode{}).
		Where("id = ? AND uses_count < max_uses", id).
		UpdateColumn("uses_count", gorm.Expr("uses_count + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPromoCodeExhausted
	}
	return nil
}

func (r *PromoRepositoryImpl) CreateUsage(tx *gorm.DB, usage *models.PromoCodeUsage) error {
	return tx.Create(usage).Error
}

func (r *PromoRepositoryImpl) CountUsages(promoCodeID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.PromoCodeUsage{}).Where("promo_code_id = ?", promoCodeID).Count(&count).Error
	return count, err
}

func (r *PromoRepositoryImpl) DeactivateExpired(now time.Time) (int64, error) {
	res := r.db.Model(&models.PromoCode{}).
		Where("is_active = ? AND valid_until < ?", true, now).
		Update("is_active", false)
	return res.RowsAffected, res.Error
}
