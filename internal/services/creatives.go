// creatives.go
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

	"github.com/localnerve/swipefile/internal/integrations/gdrive"
	"github.com/localnerve/swipefile/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/hints"
)

const deckLimit = 2000

// CreativeFilter narrows the creative listing; every tag in Tags must match
type CreativeFilter struct {
	BrandID   uint64
	CreatorID uint64
	Type      models.CreativeType
	Tags      []string
	Query     string
}

// CreativeInput is the writable part of a Creative. A non-nil Tags replaces the tag set.
type CreativeInput struct {
	Name      string    `json:"name" validate:"required,max=512"`
	CreatorID *uint64   `json:"creatorId"`
	CID       string    `json:"cid" validate:"max=16"`
	Tags      *[]string `json:"tags"`
}

func filterCreatives(query *gorm.DB, filter CreativeFilter) *gorm.DB {
	if filter.BrandID != 0 {
		query = query.Where("creatives.brand_id = ?", filter.BrandID)
	}
	if filter.CreatorID != 0 {
		query = query.Where("creatives.creator_id = ?", filter.CreatorID)
	}
	if filter.Type != "" {
		query = query.Where("creatives.type = ?", filter.Type)
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		query = query.Where("LOWER(creatives.name) LIKE ? OR LOWER(creatives.folder_path) LIKE ?", like, like)
	}
	for _, name := range filter.Tags {
		tag := models.ParseTag(name)
		if tag.Label == "" {
			continue
		}
		query = query.Where("creatives.id IN (SELECT creative_tags.creative_id FROM creative_tags "+
			"JOIN tags ON tags.id = creative_tags.tag_id WHERE tags.kind = ? AND tags.label = ?)", tag.Kind, tag.Label)
	}
	return query
}

// ListCreatives returns one page of creatives with their tags
func ListCreatives(ctx context.Context, db *gorm.DB, filter CreativeFilter, page Page) (PageResult[models.Creative], error) {
	query := filterCreatives(silent(db).WithContext(ctx).Model(&models.Creative{}), filter)

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return PageResult[models.Creative]{}, err
	}

	var creatives []models.Creative
	err := page.apply(query).
		Clauses(hints.Comment("select", "creatives:list")).
		Preload("Tags").
		Order("creatives.id DESC").
		Find(&creatives).Error
	if err != nil {
		return PageResult[models.Creative]{}, err
	}
	return newPageResult(creatives, total, page), nil
}

// CreativeDeck groups every matching creative into the deck projection
func CreativeDeck(ctx context.Context, db *gorm.DB, filter CreativeFilter) (Deck, error) {
	var creatives []models.Creative
	err := filterCreatives(silent(db).WithContext(ctx).Model(&models.Creative{}), filter).
		Clauses(hints.Comment("select", "creatives:deck")).
		Preload("Tags").
		Order("creatives.id ASC").
		Limit(deckLimit).
		Find(&creatives).Error
	if err != nil {
		return Deck{}, err
	}
	return BuildDeck(creatives), nil
}

// GetCreative loads one creative with its tags and creator
func GetCreative(ctx context.Context, db *gorm.DB, id uint64) (*models.Creative, error) {
	var creative models.Creative
	if err := silent(db).WithContext(ctx).Preload("Tags").Preload("Creator").First(&creative, id).Error; err != nil {
		return nil, classify(err, "creative", id)
	}
	return &creative, nil
}

// UpdateCreative renames, reassigns or retags a creative in one transaction
func UpdateCreative(ctx context.Context, db *gorm.DB, id uint64, in CreativeInput) (*models.Creative, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, invalid("name is required")
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var creative models.Creative
		if err := tx.First(&creative, id).Error; err != nil {
			return classify(err, "creative", id)
		}
		if in.CreatorID != nil {
			var creator models.Creator
			if err := tx.Select("id", "brand_id").First(&creator, *in.CreatorID).Error; err != nil {
				return invalid("creator %d does not exist", *in.CreatorID)
			}
			if creator.BrandID != creative.BrandID {
				return invalid("creator %d belongs to another brand", creator.ID)
			}
		}

		err := tx.Model(&creative).Select("name", "creator_id", "cid").Updates(map[string]any{
			"name":       name,
			"creator_id": in.CreatorID,
			"cid":        strings.TrimSpace(in.CID),
		}).Error
		if err != nil {
			return err
		}

		if in.Tags == nil {
			return nil
		}
		tags, err := resolveTags(tx, *in.Tags)
		if err != nil {
			return err
		}
		if len(tags) == 0 {
			return tx.Model(&creative).Association("Tags").Clear()
		}
		return tx.Model(&creative).Omit("Tags.*").Association("Tags").Replace(tags)
	})
	if err != nil {
		return nil, err
	}
	return GetCreative(ctx, db, id)
}

// DeleteCreative removes the database record; the Drive file is left alone
func DeleteCreative(ctx context.Context, db *gorm.DB, id uint64) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var creative models.Creative
		if err := tx.First(&creative, id).Error; err != nil {
			return classify(err, "creative", id)
		}
		if err := tx.Model(&creative).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Delete(&creative).Error
	})
}

// OpenCreativeStream opens the Drive media behind a creative, honoring byteRange
func OpenCreativeStream(ctx context.Context, db *gorm.DB, google GoogleAuth, id uint64, byteRange string) (*gdrive.Media, error) {
	var creative models.Creative
	if err := silent(db).WithContext(ctx).First(&creative, id).Error; err != nil {
		return nil, classify(err, "creative", id)
	}
	if creative.DriveFileID == nil {
		return nil, invalid("creative %d has no drive file", id)
	}

	client, _, err := brandDrive(ctx, db, google, creative.BrandID)
	if err != nil {
		return nil, err
	}
	media, err := client.Open(ctx, *creative.DriveFileID, byteRange)
	if err != nil {
		if gdrive.StatusCode(err) == 404 {
			return nil, notFound("drive file", *creative.DriveFileID)
		}
		return nil, upstream("google drive", err)
	}
	return media, nil
}

// upsertDriveCreative creates or refreshes the creative keyed by the Drive file id
// and appends tags; existing tags are never removed.
func upsertDriveCreative(tx *gorm.DB, brandID uint64, file gdrive.File, folderPath, cid string, creatorID *uint64, tagNames []string) (*models.Creative, bool, error) {
	var creative models.Creative
	if err := tx.Where("drive_file_id = ?", file.ID).Limit(1).Find(&creative).Error; err != nil {
		return nil, false, err
	}
	created := creative.ID == 0

	fileID := file.ID
	creative.BrandID = brandID
	creative.DriveFileID = &fileID
	creative.Name = file.Name
	creative.MimeType = file.MimeType
	creative.ThumbnailURL = file.ThumbnailURL
	creative.Width = file.Width
	creative.Height = file.Height
	creative.DurationMs = file.DurationMs
	creative.FolderPath = folderPath
	creative.Type = models.CreativeImage
	if file.IsVideo() {
		creative.Type = models.CreativeVideo
	}
	if cid != "" {
		creative.CID = cid
	}
	if creatorID != nil {
		creative.CreatorID = creatorID
	}

	if err := tx.Omit(clause.Associations).Save(&creative).Error; err != nil {
		return nil, false, err
	}

	tags, err := resolveTags(tx, tagNames)
	if err != nil {
		return nil, false, err
	}
	if len(tags) > 0 {
		if err := tx.Model(&creative).Omit("Tags.*").Association("Tags").Append(tags); err != nil {
			return nil, false, err
		}
	}
	return &creative, created, nil
}
