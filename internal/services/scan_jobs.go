// scan_jobs.go
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
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/localnerve/swipefile/internal/logger"
	"github.com/localnerve/swipefile/internal/models"
	"golang.org/x/sync/semaphore"
	"gorm.io/gorm"
)

const interruptedMessage = "interrupted by a server restart"

// ScanRunner executes drive scans in the background, at most workers at a time.
// Job state lives in scan_jobs so it survives restarts.
type ScanRunner struct {
	db     *gorm.DB
	log    *logger.Logger
	google GoogleAuth
	sem    *semaphore.Weighted

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewScanRunner builds a runner bounded by workers
func NewScanRunner(db *gorm.DB, log *logger.Logger, google GoogleAuth, workers int) *ScanRunner {
	if workers < 1 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &ScanRunner{
		db:     db,
		log:    log,
		google: google,
		sem:    semaphore.NewWeighted(int64(workers)),
		ctx:    ctx,
		cancel: cancel,
	}
}

// RecoverInterrupted fails the jobs a previous process left unfinished
func (r *ScanRunner) RecoverInterrupted(ctx context.Context) (int64, error) {
	now := nowUTC()
	res := r.db.WithContext(ctx).Model(&models.ScanJob{}).
		Where("status IN ?", []models.ScanStatus{models.ScanPending, models.ScanRunning}).
		Updates(map[string]any{
			"status":      models.ScanFailed,
			"error":       interruptedMessage,
			"finished_at": now,
		})
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected > 0 {
		r.log.Warn("marked interrupted scan jobs failed", "count", res.RowsAffected)
	}
	return res.RowsAffected, nil
}

// Start records a job and runs it detached from the caller
func (r *ScanRunner) Start(ctx context.Context, brandID uint64, folderID string) (*models.ScanJob, error) {
	if r.ctx.Err() != nil {
		return nil, fmt.Errorf("scan runner is shut down")
	}
	client, brand, err := brandDrive(ctx, r.db, r.google, brandID)
	if err != nil {
		return nil, err
	}
	if folderID == "" {
		folderID = brand.GoogleRootFolderID
	}
	if folderID == "" {
		return nil, invalid("folderId is required when the brand has no root folder")
	}

	job := &models.ScanJob{
		ID:       uuid.NewString(),
		BrandID:  brandID,
		FolderID: folderID,
		Status:   models.ScanPending,
	}
	if err := r.db.WithContext(ctx).Create(job).Error; err != nil {
		return nil, err
	}

	r.wg.Add(1)
	go r.run(job.ID, brandID, folderID, client)
	return job, nil
}

func (r *ScanRunner) run(jobID string, brandID uint64, folderID string, client DriveClient) {
	defer r.wg.Done()
	log := r.log.With("jobId", jobID, "brandId", brandID)

	if err := r.sem.Acquire(r.ctx, 1); err != nil {
		r.finish(jobID, ScanProgress{}, err)
		return
	}
	defer r.sem.Release(1)

	started := nowUTC()
	r.update(jobID, map[string]any{"status": models.ScanRunning, "started_at": started})
	log.Info("drive scan started", "folderId", folderID)

	progress, err := ScanDrive(r.ctx, r.db, log, client, brandID, folderID, func(p ScanProgress) {
		r.update(jobID, progressColumns(p))
	})
	r.finish(jobID, progress, err)

	if err != nil {
		log.Error("drive scan failed", "error", err, "elapsed", time.Since(started))
		return
	}
	log.Info("drive scan finished", "processed", progress.FilesProcessed, "failed", progress.FilesFailed, "foldersFailed", progress.FoldersFailed, "elapsed", time.Since(started))
}

func progressColumns(p ScanProgress) map[string]any {
	return map[string]any{
		"files_processed": p.FilesProcessed,
		"files_skipped":   p.FilesSkipped,
		"files_failed":    p.FilesFailed,
		"folders_visited": p.FoldersVisited,
		"folders_failed":  p.FoldersFailed,
	}
}

func (r *ScanRunner) finish(jobID string, p ScanProgress, err error) {
	columns := progressColumns(p)
	columns["finished_at"] = nowUTC()
	columns["status"] = models.ScanCompleted
	if err != nil {
		columns["status"] = models.ScanFailed
		columns["error"] = err.Error()
		if errors.Is(err, context.Canceled) {
			columns["error"] = "cancelled by server shutdown"
		}
	}
	r.update(jobID, columns)
}

// update writes job columns with a fresh context so shutdown can still record the outcome
func (r *ScanRunner) update(jobID string, columns map[string]any) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	columns["updated_at"] = nowUTC()
	if err := r.db.WithContext(ctx).Model(&models.ScanJob{}).Where("id = ?", jobID).UpdateColumns(columns).Error; err != nil {
		r.log.Error("scan job update failed", "jobId", jobID, "error", err)
	}
}

// Wait blocks until every started job has finished
func (r *ScanRunner) Wait() {
	r.wg.Wait()
}

// Shutdown cancels running scans and waits for them to record their outcome
func (r *ScanRunner) Shutdown(ctx context.Context) error {
	r.cancel()
	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// GetScanJob loads one job
func GetScanJob(ctx context.Context, db *gorm.DB, id string) (*models.ScanJob, error) {
	var job models.ScanJob
	if err := silent(db).WithContext(ctx).Where("id = ?", id).First(&job).Error; err != nil {
		return nil, classify(err, "scan job", id)
	}
	return &job, nil
}

// ListScanJobs returns the latest jobs, optionally for one brand
func ListScanJobs(ctx context.Context, db *gorm.DB, brandID uint64) ([]models.ScanJob, error) {
	jobs := []models.ScanJob{}
	query := silent(db).WithContext(ctx).Order("created_at DESC").Limit(100)
	if brandID != 0 {
		query = query.Where("brand_id = ?", brandID)
	}
	err := query.Find(&jobs).Error
	return jobs, err
}
