package services

import (
	"context"
	"strings"

	"github.com/localnerve/swipefile/internal/models"
	"gorm.io/gorm"
)

// AngleInput is the writable part of an AdAngle
type AngleInput struct {
	Name             string  `json:"name" validate:"required,max=255"`
	BrandID          *uint64 `json:"brandId"`
	DesireID         uint64  `json:"desireId" validate:"required"`
	ThemeID          uint64  `json:"themeId" validate:"required"`
	DemographicID    uint64  `json:"demographicId" validate:"required"`
	AwarenessLevelID uint64  `json:"awarenessLevelId" validate:"required"`
	ConceptDoc       string  `json:"conceptDoc"`
}

func preloadAngle(db *gorm.DB) *gorm.DB {
	return db.Preload("Desire").Preload("Theme").Preload("Demographic").Preload("AwarenessLevel")
}

// ListAngles returns the angles, optionally scoped to a brand (brandless angles included)
func ListAngles(ctx context.Context, db *gorm.DB, brandID uint64, q string) ([]models.AdAngle, error) {
	angles := []models.AdAngle{}
	query := preloadAngle(silent(db).WithContext(ctx)).Order("name ASC")
	if brandID != 0 {
		query = query.Where("brand_id = ? OR brand_id IS NULL", brandID)
	}
	if q = strings.TrimSpace(q); q != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(q)+"%")
	}
	err := query.Find(&angles).Error
	return angles, err
}

// GetAngle loads one angle with its four links
func GetAngle(ctx context.Context, db *gorm.DB, id uint64) (*models.AdAngle, error) {
	var angle models.AdAngle
	if err := preloadAngle(silent(db).WithContext(ctx)).First(&angle, id).Error; err != nil {
		return nil, classify(err, "angle", id)
	}
	return &angle, nil
}

// CreateAngle creates an angle after checking its required links exist
func CreateAngle(ctx context.Context, db *gorm.DB, in AngleInput) (*models.AdAngle, error) {
	if err := checkAngleLinks(ctx, db, in); err != nil {
		return nil, err
	}
	angle := models.AdAngle{}
	applyAngleInput(&angle, in)
	if err := db.WithContext(ctx).Create(&angle).Error; err != nil {
		return nil, classify(err, "angle", in.Name)
	}
	return GetAngle(ctx, db, angle.ID)
}

// UpdateAngle overwrites an angle
func UpdateAngle(ctx context.Context, db *gorm.DB, id uint64, in AngleInput) (*models.AdAngle, error) {
	var angle models.AdAngle
	if err := db.WithContext(ctx).First(&angle, id).Error; err != nil {
		return nil, classify(err, "angle", id)
	}
	if err := checkAngleLinks(ctx, db, in); err != nil {
		return nil, err
	}
	applyAngleInput(&angle, in)
	if err := db.WithContext(ctx).Save(&angle).Error; err != nil {
		return nil, classify(err, "angle", id)
	}
	return GetAngle(ctx, db, id)
}

func applyAngleInput(angle *models.AdAngle, in AngleInput) {
	angle.Name = strings.TrimSpace(in.Name)
	angle.BrandID = in.BrandID
	angle.DesireID = in.DesireID
	angle.ThemeID = in.ThemeID
	angle.DemographicID = in.DemographicID
	angle.AwarenessLevelID = in.AwarenessLevelID
	angle.ConceptDoc = in.ConceptDoc
	angle.Desire, angle.Theme, angle.Demographic, angle.AwarenessLevel = nil, nil, nil, nil
}

func checkAngleLinks(ctx context.Context, db *gorm.DB, in AngleInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return invalid("name is required")
	}
	links := []struct {
		field string
		id    uint64
		model any
	}{
		{"desireId", in.DesireID, &models.AdDesire{}},
		{"themeId", in.ThemeID, &models.AdTheme{}},
		{"demographicId", in.DemographicID, &models.AdDemographic{}},
		{"awarenessLevelId", in.AwarenessLevelID, &models.AdAwarenessLevel{}},
	}
	for _, link := range links {
		if link.id == 0 {
			return invalid("%s is required", link.field)
		}
		var count int64
		if err := db.WithContext(ctx).Model(link.model).Where("id = ?", link.id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return invalid("%s %d does not exist", link.field, link.id)
		}
	}
	return nil
}

// DeleteAngle removes an angle no batch uses
func DeleteAngle(ctx context.Context, db *gorm.DB, id uint64) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var angle models.AdAngle
		if err := tx.First(&angle, id).Error; err != nil {
			return classify(err, "angle", id)
		}
		var used int64
		if err := tx.Model(&models.AdBatch{}).Where("angle_id = ?", id).Count(&used).Error; err != nil {
			return err
		}
		if used > 0 {
			return conflict("angle %d is used by %d batches", id, used)
		}
		return tx.Delete(&angle).Error
	})
}
