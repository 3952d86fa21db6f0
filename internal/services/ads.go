// ads.go
//
// A marketing swipe file, creative production pipeline and ad attribution service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of swipefile.
// swipefile is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// swipefile is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with swipefile.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package services

import (
	"context"
	"strings"
	"time"

	"github.com/localnerve/swipefile/internal/models"
	"gorm.io/gorm"
	"gorm.io/hints"
)

// AdFilter narrows the swipe file listing
type AdFilter struct {
	BrandID          uint64
	Query            string
	Priority         int
	FormatID         uint64
	HookID           uint64
	ThemeID          uint64
	DesireID         uint64
	AwarenessLevelID uint64
	DemographicID    uint64
	ImportBatchID    uint64
	Sort             string
}

var adSortColumns = map[string]string{
	"lastSeen":    "last_seen DESC",
	"firstSeen":   "first_seen DESC",
	"publishDate": "publish_date DESC",
	"priority":    "CASE WHEN priority IS NULL THEN 1 ELSE 0 END, priority ASC",
}

// AdInput is the writable part of an Ad
type AdInput struct {
	PostID           string     `json:"postId"`
	BrandID          *uint64    `json:"brandId"`
	Brand            string     `json:"brand"`
	PostURL          string     `json:"postUrl"`
	Headline         string     `json:"headline"`
	Description      string     `json:"description"`
	VideoURL         string     `json:"videoUrl"`
	ImageURL         string     `json:"imageUrl"`
	ThumbnailURL     string     `json:"thumbnailUrl"`
	PublishDate      *time.Time `json:"publishDate"`
	Priority         *int       `json:"priority" validate:"omitempty,min=1,max=3"`
	Notes            string     `json:"notes"`
	WhyItWorks       string     `json:"whyItWorks"`
	Transcript       string     `json:"transcript"`
	MainMessaging    string     `json:"mainMessaging"`
	FormatID         *uint64    `json:"formatId"`
	HookID           *uint64    `json:"hookId"`
	ThemeID          *uint64    `json:"themeId"`
	DesireID         *uint64    `json:"desireId"`
	AwarenessLevelID *uint64    `json:"awarenessLevelId"`
	DemographicID    *uint64    `json:"demographicId"`
}

func preloadAdTaxonomy(db *gorm.DB) *gorm.DB {
	return db.Preload("Format").Preload("Hook").Preload("Theme").
		Preload("Desire").Preload("AwarenessLevel").Preload("Demographic")
}

// ListAds returns one page of ads matching filter
func ListAds(ctx context.Context, db *gorm.DB, filter AdFilter, page Page) (PageResult[models.Ad], error) {
	query := silent(db).WithContext(ctx).Model(&models.Ad{})

	if filter.BrandID != 0 {
		query = query.Where("brand_id = ?", filter.BrandID)
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		query = query.Where("LOWER(headline) LIKE ? OR LOWER(description) LIKE ? OR LOWER(brand) LIKE ?", like, like, like)
	}
	if filter.Priority != 0 {
		query = query.Where("priority = ?", filter.Priority)
	}
	for column, id := range map[string]uint64{
		"format_id":          filter.FormatID,
		"hook_id":            filter.HookID,
		"theme_id":           filter.ThemeID,
		"desire_id":          filter.DesireID,
		"awareness_level_id": filter.AwarenessLevelID,
		"demographic_id":     filter.DemographicID,
	} {
		if id != 0 {
			query = query.Where(column+" = ?", id)
		}
	}
	if filter.ImportBatchID != 0 {
		query = query.Where("id IN (?)", db.Model(&models.AdSnapshot{}).Select("ad_id").Where("import_batch_id = ?", filter.ImportBatchID))
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return PageResult[models.Ad]{}, err
	}

	order, ok := adSortColumns[filter.Sort]
	if !ok {
		order = adSortColumns["lastSeen"]
	}

	var ads []models.Ad
	err := page.apply(preloadAdTaxonomy(query)).
		Clauses(hints.Comment("select", "ads:list")).
		Order(order).Order("id DESC").
		Find(&ads).Error
	if err != nil {
		return PageResult[models.Ad]{}, err
	}
	return newPageResult(ads, total, page), nil
}

// GetAd loads one ad with its taxonomy
func GetAd(ctx context.Context, db *gorm.DB, id uint64) (*models.Ad, error) {
	var ad models.Ad
	if err := preloadAdTaxonomy(silent(db).WithContext(ctx)).First(&ad, id).Error; err != nil {
		return nil, classify(err, "ad", id)
	}
	return &ad, nil
}

// CreateAd records a manually entered ad; the post id must be new
func CreateAd(ctx context.Context, db *gorm.DB, in AdInput) (*models.Ad, error) {
	postID := strings.TrimSpace(in.PostID)
	if postID == "" {
		return nil, invalid("postId is required")
	}

	now := time.Now().UTC()
	ad := models.Ad{PostID: postID, LastSeen: now, FirstSeen: now}
	applyAdInput(&ad, in)
	if ad.PublishDate != nil {
		ad.FirstSeen = ad.PublishDate.UTC()
	}

	if err := db.WithContext(ctx).Create(&ad).Error; err != nil {
		return nil, classify(err, "ad", postID)
	}
	return GetAd(ctx, db, ad.ID)
}

// UpdateAd overwrites the editable fields of an ad
func UpdateAd(ctx context.Context, db *gorm.DB, id uint64, in AdInput) (*models.Ad, error) {
	var ad models.Ad
	if err := db.WithContext(ctx).First(&ad, id).Error; err != nil {
		return nil, classify(err, "ad", id)
	}
	if postID := strings.TrimSpace(in.PostID); postID != "" {
		ad.PostID = postID
	}
	applyAdInput(&ad, in)

	if err := db.WithContext(ctx).Omit("Snapshots").Save(&ad).Error; err != nil {
		return nil, classify(err, "ad", id)
	}
	return GetAd(ctx, db, id)
}

func applyAdInput(ad *models.Ad, in AdInput) {
	ad.BrandID = in.BrandID
	ad.AdvertiserName = in.Brand
	ad.PostURL = in.PostURL
	ad.Headline = in.Headline
	ad.Description = in.Description
	ad.VideoURL = NormalizeMediaURL(in.VideoURL)
	ad.ImageURL = in.ImageURL
	ad.ThumbnailURL = in.ThumbnailURL
	ad.PublishDate = in.PublishDate
	ad.Priority = in.Priority
	ad.Notes = in.Notes
	ad.WhyItWorks = in.WhyItWorks
	ad.Transcript = in.Transcript
	ad.MainMessaging = in.MainMessaging
	ad.FormatID = in.FormatID
	ad.HookID = in.HookID
	ad.ThemeID = in.ThemeID
	ad.DesireID = in.DesireID
	ad.AwarenessLevelID = in.AwarenessLevelID
	ad.DemographicID = in.DemographicID
	// drop stale associations so Save writes the ids
	ad.Format, ad.Hook, ad.Theme = nil, nil, nil
	ad.Desire, ad.AwarenessLevel, ad.Demographic = nil, nil, nil
}

// DeleteAd removes an ad, its snapshots and unlinks batches referencing it
func DeleteAd(ctx context.Context, db *gorm.DB, id uint64) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ad models.Ad
		if err := tx.Select("id").First(&ad, id).Error; err != nil {
			return classify(err, "ad", id)
		}
		if err := tx.Model(&models.AdBatch{}).Where("reference_ad_id = ?", id).Update("reference_ad_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("ad_id = ?", id).Delete(&models.AdSnapshot{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Ad{}, id).Error
	})
}

// ListSnapshots returns the engagement time series of an ad
func ListSnapshots(ctx context.Context, db *gorm.DB, adID uint64) ([]models.AdSnapshot, error) {
	if _, err := GetAd(ctx, db, adID); err != nil {
		return nil, err
	}
	snapshots := []models.AdSnapshot{}
	err := silent(db).WithContext(ctx).
		Where("ad_id = ?", adID).
		Order("captured_at ASC").Order("id ASC").
		Find(&snapshots).Error
	return snapshots, err
}

// ImportBatchSummary is an import run with its snapshot count
type ImportBatchSummary struct {
	models.ImportBatch
	Snapshots int64 `json:"snapshots"`
}

// ListImportBatches returns the import runs, newest first
func ListImportBatches(ctx context.Context, db *gorm.DB) ([]ImportBatchSummary, error) {
	rows := []ImportBatchSummary{}
	err := silent(db).WithContext(ctx).
		Model(&models.ImportBatch{}).
		Select("import_batches.*, (SELECT COUNT(*) FROM ad_snapshots WHERE ad_snapshots.import_batch_id = import_batches.id) AS snapshots").
		Order("import_batches.id DESC").
		Scan(&rows).Error
	return rows, err
}
