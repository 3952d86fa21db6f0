// drivescan.go
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
	"slices"
	"strings"

	"github.com/localnerve/swipefile/internal/integrations/gdrive"
	"github.com/localnerve/swipefile/internal/logger"
	"github.com/localnerve/swipefile/internal/models"
	"gorm.io/gorm"
)

// ScanProgress counts the work done by one scan
type ScanProgress struct {
	FilesProcessed int `json:"filesProcessed"`
	FilesSkipped   int `json:"filesSkipped"`
	FilesFailed    int `json:"filesFailed"`
	FoldersVisited int `json:"foldersVisited"`
	FoldersFailed  int `json:"foldersFailed"`
}

type scanner struct {
	db       *gorm.DB
	log      *logger.Logger
	client   DriveClient
	brandID  uint64
	progress ScanProgress
	report   func(ScanProgress)
}

// ScanDrive walks the folder tree under rootID depth first and upserts a creative
// per video or image. Drive is only read. report, when set, is called after each folder.
func ScanDrive(ctx context.Context, db *gorm.DB, log *logger.Logger, client DriveClient, brandID uint64, rootID string, report func(ScanProgress)) (ScanProgress, error) {
	s := &scanner{db: db.WithContext(ctx), log: log, client: client, brandID: brandID, report: report}
	err := s.walk(ctx, rootID, nil, nil, true)
	return s.progress, err
}

// walk visits one folder. tagPath and displayPath belong to the caller and are
// cloned before being extended for a child.
func (s *scanner) walk(ctx context.Context, folderID string, tagPath, displayPath []string, root bool) error {
	files, err := s.client.ListFolder(ctx, folderID)
	if err != nil {
		if root {
			return upstream("google drive", err)
		}
		s.progress.FoldersFailed++
		s.log.Error("drive folder listing failed", "folderId", folderID, "path", strings.Join(displayPath, "/"), "error", err)
		return nil
	}
	s.progress.FoldersVisited++

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		switch {
		case file.IsFolder():
			childTags := append(slices.Clone(tagPath), file.Name)
			childDisplay := append(slices.Clone(displayPath), file.Name)
			if err := s.walk(ctx, file.ID, childTags, childDisplay, false); err != nil {
				return err
			}
		case file.IsVideo() || file.IsImage():
			s.upsert(file, tagPath, displayPath)
		default:
			s.progress.FilesSkipped++
		}
	}

	if s.report != nil {
		s.report(s.progress)
	}
	return nil
}

func (s *scanner) upsert(file gdrive.File, tagPath, displayPath []string) {
	tags := FolderTags(tagPath)
	cid := ""
	for _, name := range tags {
		if tag := models.ParseTag(name); tag.Kind == models.TagGroupID && models.IsCID(tag.Label) {
			cid = tag.Label
		}
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		_, _, err := upsertDriveCreative(tx, s.brandID, file, strings.Join(displayPath, "/"), cid, nil, tags)
		return err
	})
	if err != nil {
		s.progress.FilesFailed++
		s.log.Error("creative upsert failed", "driveFileId", file.ID, "name", file.Name, "error", err)
		return
	}
	s.progress.FilesProcessed++
}

// FolderTags turns the folder names below the scan root into tag names;
// the first segment is repeated as a level one tag.
func FolderTags(path []string) []string {
	if len(path) == 0 {
		return nil
	}
	tags := slices.Clone(path)
	return append(tags, "L1:"+path[0])
}
