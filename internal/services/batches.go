// batches.go
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
	"gorm.io/gorm/clause"
	"gorm.io/hints"
)

// BatchFilter narrows the batch listing. TRASHED batches are hidden
// unless asked for by status or IncludeTrashed.
type BatchFilter struct {
	BrandID        uint64
	Statuses       []models.BatchStatus
	BatchType      models.BatchType
	Query          string
	IncludeTrashed bool
}

// BatchInput is the writable part of an AdBatch
type BatchInput struct {
	Name             string             `json:"name" validate:"required,max=255"`
	Status           models.BatchStatus `json:"status"`
	BatchType        models.BatchType   `json:"batchType"`
	Priority         *int               `json:"priority" validate:"omitempty,min=1,max=3"`
	BrandID          *uint64            `json:"brandId"`
	AngleID          uint64             `json:"angleId" validate:"required"`
	FormatID         *uint64            `json:"formatId"`
	ReferenceAdID    *uint64            `json:"referenceAdId"`
	ReferenceBatchID *uint64            `json:"referenceBatchId"`
	Idea             string             `json:"idea"`
	Brief            string             `json:"brief"`
	CreatorBrief     string             `json:"creatorBrief"`
	Shotlist         string             `json:"shotlist"`
	MainMessaging    string             `json:"mainMessaging"`
	Learnings        string             `json:"learnings"`
	ProjectFilesURL  string             `json:"projectFilesUrl"`
}

// BatchDetail is a batch with read-only item progress.
// Progress never feeds back into the batch status.
type BatchDetail struct {
	models.AdBatch
	ItemsDone  int `json:"itemsDone"`
	ItemsTotal int `json:"itemsTotal"`
}

// BoardColumn is one pipeline stage of the board view
type BoardColumn struct {
	Status  models.BatchStatus `json:"status"`
	Batches []models.AdBatch   `json:"batches"`
}

// ListBatches returns one page of batches, newest first
func ListBatches(ctx context.Context, db *gorm.DB, filter BatchFilter, page Page) (PageResult[models.AdBatch], error) {
	query := filterBatches(silent(db).WithContext(ctx).Model(&models.AdBatch{}), filter)

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return PageResult[models.AdBatch]{}, err
	}

	var batches []models.AdBatch
	err := page.apply(query).
		Clauses(hints.Comment("select", "batches:list")).
		Preload("Angle").Preload("Format").
		Order("id DESC").
		Find(&batches).Error
	if err != nil {
		return PageResult[models.AdBatch]{}, err
	}
	return newPageResult(batches, total, page), nil
}

func filterBatches(query *gorm.DB, filter BatchFilter) *gorm.DB {
	if filter.BrandID != 0 {
		query = query.Where("brand_id = ?", filter.BrandID)
	}
	if len(filter.Statuses) > 0 {
		query = query.Where("status IN ?", filter.Statuses)
	} else if !filter.IncludeTrashed {
		query = query.Where("status <> ?", models.StatusTrashed)
	}
	if filter.BatchType != "" {
		query = query.Where("batch_type = ?", filter.BatchType)
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(idea) LIKE ?", like, like)
	}
	return query
}

// BatchBoard groups the live batches by status in pipeline order
func BatchBoard(ctx context.Context, db *gorm.DB, brandID uint64) ([]BoardColumn, error) {
	var batches []models.AdBatch
	err := filterBatches(silent(db).WithContext(ctx), BatchFilter{BrandID: brandID}).
		Clauses(hints.Comment("select", "batches:board")).
		Preload("Angle").
		Order("CASE WHEN priority IS NULL THEN 1 ELSE 0 END, priority ASC").Order("id DESC").
		Find(&batches).Error
	if err != nil {
		return nil, err
	}

	byStatus := make(map[models.BatchStatus][]models.AdBatch, len(models.PipelineOrder))
	for _, b := range batches {
		byStatus[b.Status] = append(byStatus[b.Status], b)
	}
	board := make([]BoardColumn, 0, len(models.PipelineOrder))
	for _, status := range models.PipelineOrder {
		column := BoardColumn{Status: status, Batches: byStatus[status]}
		if column.Batches == nil {
			column.Batches = []models.AdBatch{}
		}
		board = append(board, column)
	}
	return board, nil
}

// GetBatch loads a batch with items, references and item progress
func GetBatch(ctx context.Context, db *gorm.DB, id uint64) (*BatchDetail, error) {
	var batch models.AdBatch
	err := silent(db).WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("variation_index ASC") }).
		Preload("Items.Format").Preload("Items.Hook").
		Preload("Angle").Preload("Angle.Desire").Preload("Angle.Theme").
		Preload("Angle.Demographic").Preload("Angle.AwarenessLevel").
		Preload("Format").
		Preload("ReferenceAd").Preload("ReferenceAd.Hook").
		Preload("ReferenceBatch").
		Preload("Creators").
		First(&batch, id).Error
	if err != nil {
		return nil, classify(err, "batch", id)
	}

	detail := &BatchDetail{AdBatch: batch, ItemsTotal: len(batch.Items)}
	for _, item := range batch.Items {
		if item.Status == models.ItemDone {
			detail.ItemsDone++
		}
	}
	return detail, nil
}

// CreateBatch creates a batch after checking the type rules
func CreateBatch(ctx context.Context, db *gorm.DB, in BatchInput) (*BatchDetail, error) {
	if in.BatchType == "" {
		in.BatchType = models.BatchTypeNetNew
	}
	if in.Status == "" {
		in.Status = models.StatusIdeation
	}
	if err := checkBatchInput(ctx, db, 0, in); err != nil {
		return nil, err
	}

	batch := models.AdBatch{}
	applyBatchInput(&batch, in)
	applyStatus(&batch, in.Status, time.Now().UTC())

	if err := db.WithContext(ctx).Omit(clause.Associations).Create(&batch).Error; err != nil {
		return nil, classify(err, "batch", in.Name)
	}
	return GetBatch(ctx, db, batch.ID)
}

// UpdateBatch overwrites the editable fields; a status change follows the transition rule
func UpdateBatch(ctx context.Context, db *gorm.DB, id uint64, in BatchInput) (*BatchDetail, error) {
	var batch models.AdBatch
	if err := db.WithContext(ctx).First(&batch, id).Error; err != nil {
		return nil, classify(err, "batch", id)
	}
	if in.BatchType == "" {
		in.BatchType = batch.BatchType
	}
	if err := checkBatchInput(ctx, db, id, in); err != nil {
		return nil, err
	}

	applyBatchInput(&batch, in)
	if in.Status != "" && in.Status != batch.Status {
		applyStatus(&batch, in.Status, time.Now().UTC())
	}

	if err := db.WithContext(ctx).Omit(clause.Associations).Save(&batch).Error; err != nil {
		return nil, classify(err, "batch", id)
	}
	return GetBatch(ctx, db, id)
}

func applyBatchInput(batch *models.AdBatch, in BatchInput) {
	batch.Name = strings.TrimSpace(in.Name)
	batch.BatchType = in.BatchType
	batch.Priority = in.Priority
	batch.BrandID = in.BrandID
	batch.AngleID = in.AngleID
	batch.FormatID = in.FormatID
	batch.ReferenceAdID = in.ReferenceAdID
	batch.ReferenceBatchID = in.ReferenceBatchID
	batch.Idea = in.Idea
	batch.Brief = in.Brief
	batch.CreatorBrief = in.CreatorBrief
	batch.Shotlist = in.Shotlist
	batch.MainMessaging = in.MainMessaging
	batch.Learnings = in.Learnings
	batch.ProjectFilesURL = in.ProjectFilesURL
}

func checkBatchInput(ctx context.Context, db *gorm.DB, id uint64, in BatchInput) error {
	db = db.WithContext(ctx)
	if strings.TrimSpace(in.Name) == "" {
		return invalid("name is required")
	}
	if !in.BatchType.Valid() {
		return invalid("unknown batchType %q", in.BatchType)
	}
	if in.Status != "" && !in.Status.Valid() {
		return invalid("unknown status %q", in.Status)
	}
	if in.AngleID == 0 {
		return invalid("angleId is required")
	}
	if !exists(db, &models.AdAngle{}, in.AngleID) {
		return invalid("angle %d does not exist", in.AngleID)
	}
	if in.FormatID != nil && !exists(db, &models.AdFormat{}, *in.FormatID) {
		return invalid("format %d does not exist", *in.FormatID)
	}

	switch in.BatchType {
	case models.BatchTypeCopycat:
		if in.ReferenceAdID == nil {
			return invalid("a COPYCAT batch needs referenceAdId")
		}
	case models.BatchTypeIteration:
		if in.ReferenceBatchID != nil && *in.ReferenceBatchID == id {
			return invalid("a batch cannot iterate on itself")
		}
	}
	if in.ReferenceAdID != nil && !exists(db, &models.Ad{}, *in.ReferenceAdID) {
		return invalid("reference ad %d does not exist", *in.ReferenceAdID)
	}
	if in.ReferenceBatchID != nil && !exists(db, &models.AdBatch{}, *in.ReferenceBatchID) {
		return invalid("reference batch %d does not exist", *in.ReferenceBatchID)
	}
	return nil
}

func exists(db *gorm.DB, model any, id uint64) bool {
	var count int64
	if err := db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false
	}
	return count > 0
}

func nowUTC() time.Time {
	return time.Now().UTC()
}

// applyStatus sets status; entering LEARNING stamps launchedAt the first time only
func applyStatus(batch *models.AdBatch, status models.BatchStatus, now time.Time) {
	batch.Status = status
	if status == models.StatusLearning && batch.LaunchedAt == nil {
		batch.LaunchedAt = &now
	}
}

// SetBatchStatus moves a batch to any status
func SetBatchStatus(ctx context.Context, db *gorm.DB, id uint64, status models.BatchStatus) (*BatchDetail, error) {
	if !status.Valid() {
		return nil, invalid("unknown status %q", status)
	}

	var batch models.AdBatch
	if err := db.WithContext(ctx).First(&batch, id).Error; err != nil {
		return nil, classify(err, "batch", id)
	}
	applyStatus(&batch, status, time.Now().UTC())

	err := db.WithContext(ctx).Model(&batch).UpdateColumns(map[string]any{
		"status":      batch.Status,
		"launched_at": batch.LaunchedAt,
		"updated_at":  time.Now().UTC(),
	}).Error
	if err != nil {
		return nil, err
	}
	return GetBatch(ctx, db, id)
}

// TrashBatch soft deletes a batch
func TrashBatch(ctx context.Context, db *gorm.DB, id uint64) (*BatchDetail, error) {
	return SetBatchStatus(ctx, db, id, models.StatusTrashed)
}

// RestoreBatch returns a trashed batch to IDEATION
func RestoreBatch(ctx context.Context, db *gorm.DB, id uint64) (*BatchDetail, error) {
	var batch models.AdBatch
	if err := db.WithContext(ctx).Select("id", "status").First(&batch, id).Error; err != nil {
		return nil, classify(err, "batch", id)
	}
	if batch.Status != models.StatusTrashed {
		return nil, conflict("batch %d is not trashed", id)
	}
	return SetBatchStatus(ctx, db, id, models.StatusIdeation)
}

// DeleteBatch hard deletes a batch and its items, unlinking facebook ads and iterations
func DeleteBatch(ctx context.Context, db *gorm.DB, id uint64) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var batch models.AdBatch
		if err := tx.First(&batch, id).Error; err != nil {
			return classify(err, "batch", id)
		}
		return deleteBatchRows(tx, []uint64{id})
	})
}

// deleteBatchRows removes batches and everything that hangs off them inside tx
func deleteBatchRows(tx *gorm.DB, ids []uint64) error {
	if len(ids) == 0 {
		return nil
	}
	if err := tx.Where("batch_id IN ?", ids).Delete(&models.BatchItem{}).Error; err != nil {
		return err
	}
	if err := tx.Model(&models.FacebookAd{}).Where("batch_id IN ?", ids).Update("batch_id", nil).Error; err != nil {
		return err
	}
	if err := tx.Model(&models.AdBatch{}).Where("reference_batch_id IN ?", ids).Update("reference_batch_id", nil).Error; err != nil {
		return err
	}
	if err := tx.Exec("DELETE FROM batch_creators WHERE ad_batch_id IN ?", ids).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", ids).Delete(&models.AdBatch{}).Error
}

// SetBatchCreators replaces the creators assigned to a batch
func SetBatchCreators(ctx context.Context, db *gorm.DB, id uint64, creatorIDs []uint64) (*BatchDetail, error) {
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var batch models.AdBatch
		if err := tx.First(&batch, id).Error; err != nil {
			return classify(err, "batch", id)
		}

		creators := []models.Creator{}
		if len(creatorIDs) > 0 {
			if err := tx.Where("id IN ?", creatorIDs).Find(&creators).Error; err != nil {
				return err
			}
		}
		if len(creators) != len(uniqueIDs(creatorIDs)) {
			return invalid("unknown creator in %v", creatorIDs)
		}
		for _, c := range creators {
			if batch.BrandID != nil && c.BrandID != *batch.BrandID {
				return invalid("creator %d belongs to another brand", c.ID)
			}
		}
		if len(creators) == 0 {
			return tx.Model(&batch).Association("Creators").Clear()
		}
		return tx.Model(&batch).Association("Creators").Replace(creators)
	})
	if err != nil {
		return nil, err
	}
	return GetBatch(ctx, db, id)
}

func uniqueIDs(ids []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(ids))
	out := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
