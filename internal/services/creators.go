// creators.go
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
	"fmt"
	"io"
	"math/rand/v2"
	"mime"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/localnerve/swipefile/internal/models"
	"gorm.io/gorm"
)

// videoTypes covers extensions missing from minimal mime tables
var videoTypes = map[string]string{
	".mp4":  "video/mp4",
	".m4v":  "video/x-m4v",
	".mov":  "video/quicktime",
	".webm": "video/webm",
}

const (
	placeholderDomain = "placeholder.invalid"
	creatorsFolder    = "Creators"
)

// CreatorFilter narrows the creator listing
type CreatorFilter struct {
	BrandID uint64
	Query   string
	Status  models.CreatorStatus
}

// CreatorInput is the writable part of a Creator
type CreatorInput struct {
	BrandID  uint64               `json:"brandId" validate:"required"`
	Name     string               `json:"name" validate:"required,max=255"`
	Email    string               `json:"email" validate:"omitempty,email"`
	Country  string               `json:"country" validate:"max=64"`
	Language string               `json:"language" validate:"max=64"`
	Platform string               `json:"platform" validate:"max=64"`
	Status   models.CreatorStatus `json:"status"`
	Notes    string               `json:"notes"`
}

// PlaceholderEmail synthesizes a unique address for creators without one
func PlaceholderEmail() string {
	return fmt.Sprintf("creator-%s@%s", uuid.NewString(), placeholderDomain)
}

// NewDeliveryCID returns a C-###### delivery identifier
func NewDeliveryCID() string {
	return fmt.Sprintf("C-%06d", rand.IntN(1_000_000))
}

// ListCreators returns one page of creators ordered by name
func ListCreators(ctx context.Context, db *gorm.DB, filter CreatorFilter, page Page) (PageResult[models.Creator], error) {
	query := silent(db).WithContext(ctx).Model(&models.Creator{})
	if filter.BrandID != 0 {
		query = query.Where("brand_id = ?", filter.BrandID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return PageResult[models.Creator]{}, err
	}
	var creators []models.Creator
	if err := page.apply(query).Order("name ASC").Order("id ASC").Find(&creators).Error; err != nil {
		return PageResult[models.Creator]{}, err
	}
	return newPageResult(creators, total, page), nil
}

// GetCreator loads one creator
func GetCreator(ctx context.Context, db *gorm.DB, id uint64) (*models.Creator, error) {
	var creator models.Creator
	if err := silent(db).WithContext(ctx).First(&creator, id).Error; err != nil {
		return nil, classify(err, "creator", id)
	}
	return &creator, nil
}

// CreateCreator registers a creator; the email is unique per brand
func CreateCreator(ctx context.Context, db *gorm.DB, in CreatorInput) (*models.Creator, error) {
	if err := checkCreatorInput(ctx, db, &in); err != nil {
		return nil, err
	}
	creator := models.Creator{BrandID: in.BrandID}
	applyCreatorInput(&creator, in)
	if err := db.WithContext(ctx).Create(&creator).Error; err != nil {
		return nil, classify(err, "creator email", creator.Email)
	}
	return &creator, nil
}

// UpdateCreator overwrites a creator; the brand never changes
func UpdateCreator(ctx context.Context, db *gorm.DB, id uint64, in CreatorInput) (*models.Creator, error) {
	var creator models.Creator
	if err := db.WithContext(ctx).First(&creator, id).Error; err != nil {
		return nil, classify(err, "creator", id)
	}
	in.BrandID = creator.BrandID
	if in.Email == "" {
		in.Email = creator.Email
	}
	if err := checkCreatorInput(ctx, db, &in); err != nil {
		return nil, err
	}
	applyCreatorInput(&creator, in)
	if err := db.WithContext(ctx).Save(&creator).Error; err != nil {
		return nil, classify(err, "creator email", creator.Email)
	}
	return &creator, nil
}

func checkCreatorInput(ctx context.Context, db *gorm.DB, in *CreatorInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return invalid("name is required")
	}
	if in.BrandID == 0 || !exists(db.WithContext(ctx), &models.Brand{}, in.BrandID) {
		return invalid("brand %d does not exist", in.BrandID)
	}
	if in.Status == "" {
		in.Status = models.CreatorProspect
	}
	if !in.Status.Valid() {
		return invalid("unknown creator status %q", in.Status)
	}
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Email == "" {
		in.Email = PlaceholderEmail()
	}
	return nil
}

func applyCreatorInput(creator *models.Creator, in CreatorInput) {
	creator.Name = strings.TrimSpace(in.Name)
	creator.Email = in.Email
	creator.Country = in.Country
	creator.Language = in.Language
	creator.Platform = in.Platform
	creator.Notes = in.Notes
	if in.Status == models.CreatorActive && creator.Status != models.CreatorActive && creator.OnboardedAt == nil {
		now := nowUTC()
		creator.OnboardedAt = &now
	}
	creator.Status = in.Status
}

// DeleteCreator removes a creator, unlinking creatives and batch assignments
func DeleteCreator(ctx context.Context, db *gorm.DB, id uint64) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var creator models.Creator
		if err := tx.First(&creator, id).Error; err != nil {
			return classify(err, "creator", id)
		}
		if err := tx.Model(&models.Creative{}).Where("creator_id = ?", id).Update("creator_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM batch_creators WHERE creator_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&creator).Error
	})
}

// StartDelivery gives the creator a fresh delivery cid for grouping uploads
func StartDelivery(ctx context.Context, db *gorm.DB, id uint64) (*models.Creator, error) {
	var creator models.Creator
	if err := db.WithContext(ctx).First(&creator, id).Error; err != nil {
		return nil, classify(err, "creator", id)
	}

	cid := ""
	for attempt := 0; attempt < 5 && cid == ""; attempt++ {
		candidate := NewDeliveryCID()
		var used int64
		err := db.WithContext(ctx).Model(&models.Creative{}).Where("cid = ?", candidate).Count(&used).Error
		if err != nil {
			return nil, err
		}
		if used == 0 {
			cid = candidate
		}
	}
	if cid == "" {
		return nil, conflict("could not allocate a delivery cid")
	}

	if err := db.WithContext(ctx).Model(&creator).Update("active_delivery_cid", cid).Error; err != nil {
		return nil, err
	}
	creator.ActiveDeliveryCID = cid
	return &creator, nil
}

// UploadCreatorFile stores an upload in <root>/Creators/<creator name> and records
// it as a creative grouped under the active delivery
func UploadCreatorFile(ctx context.Context, db *gorm.DB, google GoogleAuth, creatorID uint64, filename, mimeType string, r io.Reader) (*models.Creative, error) {
	creator, err := GetCreator(ctx, db, creatorID)
	if err != nil {
		return nil, err
	}
	if creator.ActiveDeliveryCID == "" {
		if creator, err = StartDelivery(ctx, db, creatorID); err != nil {
			return nil, err
		}
	}

	if mimeType == "" || mimeType == "application/octet-stream" {
		ext := strings.ToLower(filepath.Ext(filename))
		if byExt := mime.TypeByExtension(ext); byExt != "" {
			mimeType = byExt
		} else if known, ok := videoTypes[ext]; ok {
			mimeType = known
		}
	}
	if !strings.HasPrefix(mimeType, "video/") && !strings.HasPrefix(mimeType, "image/") {
		return nil, invalid("only video and image uploads are accepted, got %q", mimeType)
	}

	client, brand, err := brandDrive(ctx, db, google, creator.BrandID)
	if err != nil {
		return nil, err
	}
	if brand.GoogleRootFolderID == "" {
		return nil, fmt.Errorf("%w: brand %d has no root folder", ErrNotConnected, brand.ID)
	}

	creatorsID, err := client.EnsureFolder(ctx, brand.GoogleRootFolderID, creatorsFolder)
	if err != nil {
		return nil, upstream("google drive", err)
	}
	folderID, err := client.EnsureFolder(ctx, creatorsID, creator.Name)
	if err != nil {
		return nil, upstream("google drive", err)
	}
	file, err := client.Upload(ctx, folderID, filepath.Base(filename), mimeType, r)
	if err != nil {
		return nil, upstream("google drive", err)
	}

	var creativeID uint64
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		folderPath := creatorsFolder + "/" + creator.Name
		tags := []string{creator.ActiveDeliveryCID, creatorsFolder, creator.Name, "L1:" + creatorsFolder}
		creative, _, err := upsertDriveCreative(tx, brand.ID, file, folderPath, creator.ActiveDeliveryCID, &creator.ID, tags)
		if err != nil {
			return err
		}
		creativeID = creative.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return GetCreative(ctx, db, creativeID)
}
