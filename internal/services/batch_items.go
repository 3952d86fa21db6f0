// batch_items.go
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

	"github.com/localnerve/swipefile/data"
	"github.com/localnerve/swipefile/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const variationLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// BatchItemInput is the writable part of a BatchItem
type BatchItemInput struct {
	Status            models.ItemStatus `json:"status"`
	FormatID          *uint64           `json:"formatId"`
	HookID            *uint64           `json:"hookId"`
	Script            string            `json:"script"`
	Notes             string            `json:"notes"`
	RequestedDuration int               `json:"requestedDuration" validate:"min=0"`
	VideoURL          string            `json:"videoUrl"`
	VideoName         string            `json:"videoName"`
}

// NextVariationLetter returns the first unused letter. With reserveA set,
// 'A' is never handed out.
func NextVariationLetter(used []string, reserveA bool) (string, bool) {
	taken := make(map[string]bool, len(used))
	for _, letter := range used {
		taken[letter] = true
	}
	for i := 0; i < len(variationLetters); i++ {
		letter := variationLetters[i : i+1]
		if reserveA && letter == "A" {
			continue
		}
		if !taken[letter] {
			return letter, true
		}
	}
	return "", false
}

// AddBatchItem appends a variation with the next letter. On a COPYCAT batch the
// first item is 'A', uses the copycat format and inherits the reference ad's hook.
func AddBatchItem(ctx context.Context, db *gorm.DB, batchID uint64, in BatchItemInput) (*models.BatchItem, error) {
	if in.Status == "" {
		in.Status = models.ItemPending
	}
	if !in.Status.Valid() {
		return nil, invalid("unknown item status %q", in.Status)
	}

	var item models.BatchItem
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var batch models.AdBatch
		if err := tx.Preload("ReferenceAd").First(&batch, batchID).Error; err != nil {
			return classify(err, "batch", batchID)
		}
		if err := checkItemLinks(tx, in); err != nil {
			return err
		}

		var used []string
		if err := tx.Model(&models.BatchItem{}).Where("batch_id = ?", batchID).Pluck("variation_index", &used).Error; err != nil {
			return err
		}

		item = models.BatchItem{BatchID: batchID}
		applyItemInput(&item, in)

		copycat := batch.BatchType == models.BatchTypeCopycat
		if copycat && !contains(used, "A") {
			format, err := FindCopycatFormat(ctx, tx, data.CopycatFormatName)
			if err != nil {
				return err
			}
			item.VariationIndex = "A"
			item.FormatID = &format.ID
			if item.HookID == nil && batch.ReferenceAd != nil {
				item.HookID = batch.ReferenceAd.HookID
			}
		} else {
			letter, ok := NextVariationLetter(used, copycat)
			if !ok {
				return conflict("batch %d has no variation letters left", batchID)
			}
			item.VariationIndex = letter
		}

		return classify(tx.Omit(clause.Associations).Create(&item).Error, "variation", item.VariationIndex)
	})
	if err != nil {
		return nil, err
	}
	return getBatchItem(ctx, db, item.ID)
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}

func checkItemLinks(db *gorm.DB, in BatchItemInput) error {
	if in.FormatID != nil && !exists(db, &models.AdFormat{}, *in.FormatID) {
		return invalid("format %d does not exist", *in.FormatID)
	}
	if in.HookID != nil && !exists(db, &models.AdHook{}, *in.HookID) {
		return invalid("hook %d does not exist", *in.HookID)
	}
	return nil
}

func applyItemInput(item *models.BatchItem, in BatchItemInput) {
	if in.Status != "" {
		item.Status = in.Status
	}
	item.FormatID = in.FormatID
	item.HookID = in.HookID
	item.Script = in.Script
	item.Notes = in.Notes
	item.RequestedDuration = in.RequestedDuration
	item.VideoURL = in.VideoURL
	item.VideoName = in.VideoName
	item.Format, item.Hook = nil, nil
}

func getBatchItem(ctx context.Context, db *gorm.DB, id uint64) (*models.BatchItem, error) {
	var item models.BatchItem
	if err := silent(db).WithContext(ctx).Preload("Format").Preload("Hook").First(&item, id).Error; err != nil {
		return nil, classify(err, "batch item", id)
	}
	return &item, nil
}

// UpdateBatchItem overwrites an item; its letter never changes
func UpdateBatchItem(ctx context.Context, db *gorm.DB, id uint64, in BatchItemInput) (*models.BatchItem, error) {
	if in.Status != "" && !in.Status.Valid() {
		return nil, invalid("unknown item status %q", in.Status)
	}
	var item models.BatchItem
	if err := db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, classify(err, "batch item", id)
	}
	if err := checkItemLinks(db.WithContext(ctx), in); err != nil {
		return nil, err
	}
	applyItemInput(&item, in)
	if err := db.WithContext(ctx).Omit(clause.Associations).Save(&item).Error; err != nil {
		return nil, classify(err, "batch item", id)
	}
	return getBatchItem(ctx, db, id)
}

// SetItemStatus flips one item between PENDING and DONE
func SetItemStatus(ctx context.Context, db *gorm.DB, id uint64, status models.ItemStatus) (*models.BatchItem, error) {
	if !status.Valid() {
		return nil, invalid("unknown item status %q", status)
	}
	var item models.BatchItem
	if err := db.WithContext(ctx).Select("id").First(&item, id).Error; err != nil {
		return nil, classify(err, "batch item", id)
	}
	if err := db.WithContext(ctx).Model(&item).Update("status", status).Error; err != nil {
		return nil, err
	}
	return getBatchItem(ctx, db, id)
}

// DeleteBatchItem removes one variation; its letter becomes free again
func DeleteBatchItem(ctx context.Context, db *gorm.DB, id uint64) error {
	res := db.WithContext(ctx).Delete(&models.BatchItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFound("batch item", id)
	}
	return nil
}
