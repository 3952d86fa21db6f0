package services

import (
	"context"
	"testing"
	"time"

	"github.com/localnerve/swipefile/internal/integrations/gdrive"
	"github.com/localnerve/swipefile/internal/logger"
	"github.com/localnerve/swipefile/internal/models"
	"github.com/localnerve/swipefile/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func folder(id, name string) gdrive.File {
	return gdrive.File{ID: id, Name: name, MimeType: gdrive.FolderMimeType}
}

// scanTree builds root/{Raw/CID-0042/{clip.mp4,notes.txt}, Broken/, photo.jpg}
func scanTree() *fakeDrive {
	drive := newFakeDrive()
	drive.add("root", folder("raw", "Raw"))
	drive.add("root", folder("broken", "Broken"))
	drive.add("root", gdrive.File{ID: "photo", Name: "photo.jpg", MimeType: "image/jpeg", Width: 1080, Height: 1350})
	drive.add("raw", folder("cid", "CID-0042"))
	drive.add("cid", gdrive.File{ID: "clip", Name: "clip.mp4", MimeType: "video/mp4", DurationMs: 15000})
	drive.add("cid", gdrive.File{ID: "notes", Name: "notes.txt", MimeType: "text/plain"})
	drive.failing["broken"] = true
	return drive
}

func connectGoogle(t *testing.T, db *gorm.DB, brand *models.Brand) {
	t.Helper()
	require.NoError(t, db.Model(brand).Updates(map[string]any{
		"google_refresh_token":  "refresh",
		"google_root_folder_id": "root",
	}).Error)
}

func TestFolderTags(t *testing.T) {
	assert.Nil(t, FolderTags(nil))
	assert.Equal(t, []string{"Raw", "CID-0042", "L1:Raw"}, FolderTags([]string{"Raw", "CID-0042"}))
}

func TestScanDrive(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	brand := testutil.CreateBrand(t, db, "Acme")
	drive := scanTree()

	var reports int
	progress, err := ScanDrive(ctx, db, logger.Nop(), drive, brand.ID, "root", func(ScanProgress) { reports++ })
	require.NoError(t, err)
	assert.Equal(t, ScanProgress{FilesProcessed: 2, FilesSkipped: 1, FoldersVisited: 3, FoldersFailed: 1}, progress)
	assert.Equal(t, 3, reports)

	var clip models.Creative
	require.NoError(t, db.Preload("Tags").Where("drive_file_id = ?", "clip").First(&clip).Error)
	assert.Equal(t, models.CreativeVideo, clip.Type)
	assert.Equal(t, "Raw/CID-0042", clip.FolderPath)
	assert.Equal(t, "CID-0042", clip.CID)
	assert.EqualValues(t, 15000, clip.DurationMs)
	assert.ElementsMatch(t, []string{"Raw", "CID-0042", "L1:Raw"}, TagNames(clip.Tags))

	var photo models.Creative
	require.NoError(t, db.Preload("Tags").Where("drive_file_id = ?", "photo").First(&photo).Error)
	assert.Equal(t, models.CreativeImage, photo.Type)
	assert.Empty(t, photo.Tags)
}

func TestScanDriveIsIdempotentAndKeepsTags(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	brand := testutil.CreateBrand(t, db, "Acme")
	drive := scanTree()

	_, err := ScanDrive(ctx, db, logger.Nop(), drive, brand.ID, "root", nil)
	require.NoError(t, err)

	var clip models.Creative
	require.NoError(t, db.Where("drive_file_id = ?", "clip").First(&clip).Error)
	_, err = ApplyTags(ctx, db, TagChange{Tags: []string{"Keeper"}, CreativeIDs: []uint64{clip.ID}})
	require.NoError(t, err)

	_, err = ScanDrive(ctx, db, logger.Nop(), drive, brand.ID, "root", nil)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Creative{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)

	got, err := GetCreative(ctx, db, clip.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Raw", "CID-0042", "L1:Raw", "Keeper"}, TagNames(got.Tags))
}

func TestScanDriveLongGroupFolderName(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	brand := testutil.CreateBrand(t, db, "Acme")
	drive := newFakeDrive()
	drive.add("root", folder("long", "CID-0042 Summer Hooks Final"))
	drive.add("long", gdrive.File{ID: "hook", Name: "hook.mp4", MimeType: "video/mp4"})
	drive.add("root", folder("delivery", "C-123456"))
	drive.add("delivery", gdrive.File{ID: "take", Name: "take.mp4", MimeType: "video/mp4"})

	progress, err := ScanDrive(ctx, db, logger.Nop(), drive, brand.ID, "root", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, progress.FilesProcessed)
	assert.Zero(t, progress.FilesFailed)

	var hook models.Creative
	require.NoError(t, db.Preload("Tags").Where("drive_file_id = ?", "hook").First(&hook).Error)
	assert.Empty(t, hook.CID)
	assert.Contains(t, TagNames(hook.Tags), "CID-0042 Summer Hooks Final")

	var take models.Creative
	require.NoError(t, db.Where("drive_file_id = ?", "take").First(&take).Error)
	assert.Equal(t, "C-123456", take.CID)
}

func TestScanDriveRootFailure(t *testing.T) {
	db := testutil.NewDB(t)
	brand := testutil.CreateBrand(t, db, "Acme")
	drive := scanTree()
	drive.failing["root"] = true

	_, err := ScanDrive(context.Background(), db, logger.Nop(), drive, brand.ID, "root", nil)
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestScanRunnerCompletesJob(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	brand := testutil.CreateBrand(t, db, "Acme")
	connectGoogle(t, db, brand)
	runner := NewScanRunner(db, logger.Nop(), &fakeGoogle{drive: scanTree()}, 2)

	job, err := runner.Start(ctx, brand.ID, "")
	require.NoError(t, err)
	assert.Equal(t, "root", job.FolderID)
	assert.Len(t, job.ID, 36)
	runner.Wait()

	done, err := GetScanJob(ctx, db, job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ScanCompleted, done.Status)
	assert.Equal(t, 2, done.FilesProcessed)
	assert.Equal(t, 0, done.FilesFailed)
	assert.Equal(t, 1, done.FoldersFailed)
	assert.Equal(t, 3, done.FoldersVisited)
	assert.NotNil(t, done.StartedAt)
	assert.NotNil(t, done.FinishedAt)

	jobs, err := ListScanJobs(ctx, db, brand.ID)
	require.NoError(t, err)
	assert.Len(t, jobs, 1)

	shutdownCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	require.NoError(t, runner.Shutdown(shutdownCtx))
	_, err = runner.Start(ctx, brand.ID, "")
	assert.Error(t, err)
}

func TestScanRunnerRequiresConnection(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	brand := testutil.CreateBrand(t, db, "Acme")

	_, err := NewScanRunner(db, logger.Nop(), &fakeGoogle{drive: newFakeDrive()}, 1).Start(ctx, brand.ID, "")
	assert.ErrorIs(t, err, ErrNotConnected)

	_, err = NewScanRunner(db, logger.Nop(), nil, 1).Start(ctx, brand.ID, "root")
	assert.ErrorIs(t, err, ErrNotConnected)
}

func TestRecoverInterrupted(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	brand := testutil.CreateBrand(t, db, "Acme")
	for _, job := range []models.ScanJob{
		{ID: "00000000-0000-0000-0000-000000000001", BrandID: brand.ID, FolderID: "root", Status: models.ScanRunning},
		{ID: "00000000-0000-0000-0000-000000000002", BrandID: brand.ID, FolderID: "root", Status: models.ScanCompleted},
	} {
		require.NoError(t, db.Create(&job).Error)
	}

	recovered, err := NewScanRunner(db, logger.Nop(), nil, 1).RecoverInterrupted(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, recovered)

	job, err := GetScanJob(ctx, db, "00000000-0000-0000-0000-000000000001")
	require.NoError(t, err)
	assert.Equal(t, models.ScanFailed, job.Status)
	assert.Equal(t, interruptedMessage, job.Error)
	assert.True(t, job.Terminal())

	job, err = GetScanJob(ctx, db, "00000000-0000-0000-0000-000000000002")
	require.NoError(t, err)
	assert.Equal(t, models.ScanCompleted, job.Status)

	_, err = GetScanJob(ctx, db, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
