// tags.go
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

	"github.com/localnerve/swipefile/internal/models"
	"gorm.io/gorm"
)

// TagChange is the request body of the apply and remove operations
type TagChange struct {
	Tags        []string `json:"tags" validate:"required,min=1,dive,required"`
	CreativeIDs []uint64 `json:"creativeIds" validate:"required,min=1"`
}

// TagChangeResult reports what an apply or remove touched
type TagChangeResult struct {
	Tags      []models.Tag `json:"tags"`
	Creatives int          `json:"creatives"`
}

// ListTags returns every tag, optionally of one kind
func ListTags(ctx context.Context, db *gorm.DB, kind models.TagKind) ([]models.Tag, error) {
	if kind != "" && !kind.Valid() {
		return nil, invalid("unknown tag kind %q", kind)
	}
	tags := []models.Tag{}
	query := silent(db).WithContext(ctx).Order("kind ASC").Order("label ASC")
	if kind != "" {
		query = query.Where("kind = ?", kind)
	}
	err := query.Find(&tags).Error
	return tags, err
}

// resolveTags finds or creates the structured tags for legacy names inside tx
func resolveTags(tx *gorm.DB, names []string) ([]models.Tag, error) {
	tags := make([]models.Tag, 0, len(names))
	seen := map[string]bool{}
	for _, name := range names {
		parsed := models.ParseTag(name)
		if parsed.Label == "" {
			continue
		}
		key := string(parsed.Kind) + "\x00" + parsed.Label
		if seen[key] {
			continue
		}
		seen[key] = true

		tag := models.Tag{}
		err := tx.Where(models.Tag{Kind: parsed.Kind, Label: parsed.Label}).FirstOrCreate(&tag).Error
		if err != nil {
			return nil, classify(err, "tag", parsed.Name)
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

func loadCreatives(tx *gorm.DB, ids []uint64) ([]models.Creative, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return nil, invalid("creativeIds is required")
	}
	creatives := []models.Creative{}
	if err := tx.Where("id IN ?", ids).Find(&creatives).Error; err != nil {
		return nil, err
	}
	if len(creatives) != len(ids) {
		return nil, notFound("creative in", ids)
	}
	return creatives, nil
}

// ApplyTags creates any missing tags and connects them to every creative in one transaction
func ApplyTags(ctx context.Context, db *gorm.DB, change TagChange) (*TagChangeResult, error) {
	result := &TagChangeResult{}
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		creatives, err := loadCreatives(tx, change.CreativeIDs)
		if err != nil {
			return err
		}
		tags, err := resolveTags(tx, change.Tags)
		if err != nil {
			return err
		}
		if len(tags) == 0 {
			return invalid("no usable tag in %v", change.Tags)
		}
		for i := range creatives {
			if err := tx.Model(&creatives[i]).Omit("Tags.*").Association("Tags").Append(tags); err != nil {
				return err
			}
		}
		result.Tags, result.Creatives = tags, len(creatives)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// RemoveTags disconnects tags from creatives; the tags themselves stay
func RemoveTags(ctx context.Context, db *gorm.DB, change TagChange) (*TagChangeResult, error) {
	result := &TagChangeResult{Tags: []models.Tag{}}
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		creatives, err := loadCreatives(tx, change.CreativeIDs)
		if err != nil {
			return err
		}
		for _, name := range change.Tags {
			parsed := models.ParseTag(name)
			var tag models.Tag
			if err := tx.Where("kind = ? AND label = ?", parsed.Kind, parsed.Label).Limit(1).Find(&tag).Error; err != nil {
				return err
			}
			if tag.ID != 0 {
				result.Tags = append(result.Tags, tag)
			}
		}
		if len(result.Tags) == 0 {
			return nil
		}
		for i := range creatives {
			if err := tx.Model(&creatives[i]).Association("Tags").Delete(result.Tags); err != nil {
				return err
			}
		}
		result.Creatives = len(creatives)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// TagNames renders tags in their legacy string form
func TagNames(tags []models.Tag) []string {
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.LegacyName())
	}
	return names
}
