// adimport.go
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
	"path"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/localnerve/swipefile/internal/logger"
	"github.com/localnerve/swipefile/internal/models"
	"gorm.io/gorm"
)

const (
	createdLabel  = "Created on:"
	lastSeenLabel = "Last seen on:"

	// folder marker of a browser "save page as" export
	localFileMarker = "_files/"
	vendorCDNMarker = "fbcdn"
)

// Export selectors. Blocks are matched by any of the listed classes or data attributes.
const (
	blockSelector       = "[data-ad-block], .ad-block, .ad-card"
	postLinkSelector    = "a.post-link, a[data-post-link]"
	postLinkFallback    = `a[href*="facebook.com"]`
	headlineSelector    = ".headline, .ad-headline, h3"
	descriptionSelector = ".description, .ad-text"
	advertiserSelector  = ".brand-name, .advertiser"
)

// dateLayouts are tried in order after the label is stripped
var dateLayouts = []string{
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
	"2006-01-02",
	"01/02/2006",
}

var (
	digitRun  = regexp.MustCompile(`\d+`)
	nonDigits = regexp.MustCompile(`\D`)
)

// AdBlock is the data extracted from one ad block of an export
type AdBlock struct {
	PostURL     string
	PostID      string
	Advertiser  string
	Headline    string
	Description string
	VideoURL    string
	ImageURL    string

	PublishDate      time.Time
	LastSeen         time.Time
	PublishFallback  bool
	LastSeenFallback bool

	Likes    int64
	Shares   int64
	Comments int64
}

// ImportOptions names the run and optionally assigns the ads to a brand
type ImportOptions struct {
	Name    string
	BrandID *uint64
}

// ImportResult reports the outcome of one export import
type ImportResult struct {
	Success       bool   `json:"success"`
	Processed     int    `json:"processed"`
	TotalFound    int    `json:"totalFound"`
	Created       int    `json:"created"`
	Updated       int    `json:"updated"`
	Skipped       int    `json:"skipped"`
	Failed        int    `json:"failed"`
	DateFallbacks int    `json:"dateFallbacks"`
	ImportBatchID uint64 `json:"importBatchId"`
}

// ExtractPostID returns the last run of digits in link, query included.
// A link without digits cannot be deduplicated and reports false.
func ExtractPostID(link string) (string, bool) {
	link = strings.TrimSuffix(strings.TrimSpace(link), "/")
	runs := digitRun.FindAllString(link, -1)
	if len(runs) == 0 {
		return "", false
	}
	return runs[len(runs)-1], true
}

// ParseNumber keeps only the digits of text; nothing parseable yields 0
func ParseNumber(text string) int64 {
	digits := nonDigits.ReplaceAllString(text, "")
	if digits == "" {
		return 0
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// ParseLabeledDate strips label and parses the rest with the pinned layouts.
// ok is false when no layout matched and the caller must fall back.
func ParseLabeledDate(text, label string) (time.Time, bool) {
	value := strings.TrimSpace(text)
	if len(value) >= len(label) && strings.EqualFold(value[:len(label)], label) {
		value = strings.TrimSpace(value[len(label):])
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// NormalizeMediaURL keeps only the file name of a locally saved media reference
func NormalizeMediaURL(src string) string {
	src = strings.TrimSpace(src)
	if strings.Contains(src, localFileMarker) {
		return path.Base(src)
	}
	return src
}

// ResolveMedia picks a vendor CDN video, then any video, and an image for the thumbnail
func ResolveMedia(block *goquery.Selection) (video, image string) {
	sources := block.Find("video source[src], video[src]")

	sources.EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if src, _ := s.Attr("src"); strings.Contains(src, vendorCDNMarker) {
			video = src
			return false
		}
		return true
	})
	if video == "" && sources.Length() > 0 {
		video, _ = sources.First().Attr("src")
	}
	image, _ = block.Find("img[src]").First().Attr("src")

	return NormalizeMediaURL(video), strings.TrimSpace(image)
}

// ParseAdExport extracts every ad block of an HTML export. Blocks without a
// post id are returned with an empty PostID.
func ParseAdExport(r io.Reader, now time.Time) ([]AdBlock, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, invalid("unreadable export: %v", err)
	}

	var blocks []AdBlock
	doc.Find(blockSelector).Each(func(_ int, s *goquery.Selection) {
		blocks = append(blocks, parseBlock(s, now))
	})
	return blocks, nil
}

func parseBlock(s *goquery.Selection, now time.Time) AdBlock {
	block := AdBlock{
		Headline:    firstText(s, headlineSelector),
		Description: firstText(s, descriptionSelector),
		Advertiser:  firstText(s, advertiserSelector),
		Likes:       ParseNumber(metricText(s, "likes")),
		Shares:      ParseNumber(metricText(s, "shares")),
		Comments:    ParseNumber(metricText(s, "comments")),
	}

	link := s.Find(postLinkSelector).First()
	if link.Length() == 0 {
		link = s.Find(postLinkFallback).First()
	}
	if href, ok := link.Attr("href"); ok {
		block.PostURL = strings.TrimSpace(href)
		block.PostID, _ = ExtractPostID(block.PostURL)
	}

	block.VideoURL, block.ImageURL = ResolveMedia(s)

	var ok bool
	if block.PublishDate, ok = ParseLabeledDate(labeledText(s, createdLabel), createdLabel); !ok {
		block.PublishDate, block.PublishFallback = now, true
	}
	if block.LastSeen, ok = ParseLabeledDate(labeledText(s, lastSeenLabel), lastSeenLabel); !ok {
		block.LastSeen, block.LastSeenFallback = now, true
	}

	return block
}

func firstText(s *goquery.Selection, selector string) string {
	return strings.TrimSpace(s.Find(selector).First().Text())
}

func metricText(s *goquery.Selection, metric string) string {
	return firstText(s, fmt.Sprintf(".%s, [data-metric=%q]", metric, metric))
}

func cutLabel(text, label string) (string, bool) {
	text = strings.TrimSpace(text)
	if len(text) < len(label) || !strings.EqualFold(text[:len(label)], label) {
		return "", false
	}
	return strings.TrimSpace(text[len(label):]), true
}

// labeledText finds the deepest element whose text starts with label and
// still carries a value after it. A label with no value anywhere returns
// the bare label.
func labeledText(s *goquery.Selection, label string) string {
	var bare string
	var match *goquery.Selection
	s.Find("*").EachWithBreak(func(_ int, el *goquery.Selection) bool {
		value, ok := cutLabel(el.Text(), label)
		if !ok {
			return true
		}
		if value == "" {
			if bare == "" {
				bare = strings.TrimSpace(el.Text())
			}
			return true
		}
		match = el
		return false
	})
	if match == nil {
		return bare
	}

	for {
		var next *goquery.Selection
		match.Children().EachWithBreak(func(_ int, child *goquery.Selection) bool {
			if value, ok := cutLabel(child.Text(), label); ok && value != "" {
				next = child
				return false
			}
			return true
		})
		if next == nil {
			return strings.TrimSpace(match.Text())
		}
		match = next
	}
}

// ImportAds parses an export and upserts every block independently.
// One block failing never aborts the run.
func ImportAds(ctx context.Context, db *gorm.DB, log *logger.Logger, opts ImportOptions, r io.Reader) (*ImportResult, error) {
	name := strings.TrimSpace(opts.Name)
	if name == "" {
		return nil, invalid("batchName is required")
	}

	now := time.Now().UTC()
	blocks, err := ParseAdExport(r, now)
	if err != nil {
		return nil, err
	}

	batch := models.ImportBatch{Name: name}
	if err := db.WithContext(ctx).Create(&batch).Error; err != nil {
		return nil, fmt.Errorf("failed to create import batch: %w", err)
	}

	result := &ImportResult{TotalFound: len(blocks), ImportBatchID: batch.ID}
	for i, block := range blocks {
		if block.PostID == "" {
			result.Skipped++
			log.Debug("ad block without post id skipped", "index", i, "link", block.PostURL)
			continue
		}
		if block.PublishFallback {
			result.DateFallbacks++
			log.Warn("unparseable created date, using now", "postId", block.PostID)
		}
		if block.LastSeenFallback {
			result.DateFallbacks++
			log.Warn("unparseable last seen date, using now", "postId", block.PostID)
		}

		created, err := upsertAdBlock(db.WithContext(ctx), block, opts.BrandID, batch.ID, now)
		if err != nil {
			result.Failed++
			log.Error("ad block import failed", "postId", block.PostID, "error", err)
			continue
		}
		result.Processed++
		if created {
			result.Created++
		} else {
			result.Updated++
		}
	}

	result.Success = true
	log.Info("ad import finished",
		"importBatchId", batch.ID,
		"totalFound", result.TotalFound,
		"processed", result.Processed,
		"failed", result.Failed,
	)
	return result, nil
}

// upsertAdBlock creates or refreshes one ad and appends its snapshot in one transaction
func upsertAdBlock(db *gorm.DB, block AdBlock, brandID *uint64, importBatchID uint64, now time.Time) (bool, error) {
	created := false
	err := db.Transaction(func(tx *gorm.DB) error {
		var ad models.Ad
		err := tx.Where("post_id = ?", block.PostID).Limit(1).Find(&ad).Error
		if err != nil {
			return err
		}

		if ad.ID == 0 {
			ad = models.Ad{
				PostID:         block.PostID,
				BrandID:        brandID,
				AdvertiserName: block.Advertiser,
				PostURL:        block.PostURL,
				Headline:       block.Headline,
				Description:    block.Description,
				VideoURL:       block.VideoURL,
				ImageURL:       block.ImageURL,
				ThumbnailURL:   block.ImageURL,
				FirstSeen:      block.PublishDate,
				LastSeen:       block.LastSeen,
			}
			if !block.PublishFallback {
				publish := block.PublishDate
				ad.PublishDate = &publish
			}
			if err := tx.Create(&ad).Error; err != nil {
				return err
			}
			created = true
		} else if block.LastSeen.After(ad.LastSeen) {
			if err := tx.Model(&ad).Update("last_seen", block.LastSeen).Error; err != nil {
				return err
			}
		}

		snapshot := models.AdSnapshot{
			AdID:          ad.ID,
			Likes:         block.Likes,
			Shares:        block.Shares,
			Comments:      block.Comments,
			CapturedAt:    now,
			ImportBatchID: &importBatchID,
		}
		return tx.Create(&snapshot).Error
	})
	return created, err
}
