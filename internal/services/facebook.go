// facebook.go
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
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/localnerve/swipefile/internal/logger"
	"github.com/localnerve/swipefile/internal/models"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/hints"
)

// Verdicts of a batch against the brand's break-even ROAS
const (
	VerdictAbove = "above"
	VerdictBelow = "below"
	VerdictNone  = "none"
)

// metricColumns are refreshed by a sync; batch_id is never among them
var metricColumns = []string{
	"brand_id", "name", "status", "campaign_name", "adset_name",
	"spend", "roas", "purchase_value", "cpm", "ctr", "impressions", "clicks",
	"insights", "synced_at", "updated_at",
}

// SyncResult reports one brand's insights sync
type SyncResult struct {
	BrandID  uint64    `json:"brandId"`
	Fetched  int       `json:"fetched"`
	Upserted int       `json:"upserted"`
	SyncedAt time.Time `json:"syncedAt"`
}

// FacebookAdFilter narrows the cached ads listing
type FacebookAdFilter struct {
	BrandID  uint64
	BatchID  uint64
	Unlinked bool
}

// Rollup aggregates the linked ads of a batch or brand
type Rollup struct {
	Ads           int64   `json:"ads"`
	Spend         float64 `json:"spend"`
	PurchaseValue float64 `json:"purchaseValue"`
	ROAS          float64 `json:"roas"`
	Impressions   int64   `json:"impressions"`
	Clicks        int64   `json:"clicks"`
}

// BatchPerformanceRow is one dashboard line
type BatchPerformanceRow struct {
	BatchID uint64             `json:"batchId"`
	Name    string             `json:"name"`
	Status  models.BatchStatus `json:"status"`
	Rollup
	Verdict string `json:"verdict"`
}

// Dashboard summarizes one brand's pipeline and paid performance
type Dashboard struct {
	BrandID       uint64                       `json:"brandId"`
	BreakEvenROAS float64                      `json:"breakEvenRoas"`
	StatusCounts  map[models.BatchStatus]int64 `json:"statusCounts"`
	Totals        Rollup                       `json:"totals"`
	Batches       []BatchPerformanceRow        `json:"batches"`
}

// SyncBrandFacebookAds pulls ad-level insights for one brand and upserts the cache rows
func SyncBrandFacebookAds(ctx context.Context, db *gorm.DB, fetcher InsightsFetcher, brandID uint64) (*SyncResult, error) {
	if fetcher == nil {
		return nil, fmt.Errorf("%w: facebook client is not configured", ErrNotConnected)
	}
	brand, err := GetBrand(ctx, db, brandID)
	if err != nil {
		return nil, err
	}
	if !brand.FacebookConnected {
		return nil, fmt.Errorf("%w: brand %d has no facebook connection", ErrNotConnected, brandID)
	}

	insights, err := fetcher.AdInsights(ctx, brand.FacebookAccessToken, brand.FacebookAdAccountID)
	if err != nil {
		return nil, upstream("facebook", err)
	}

	now := nowUTC()
	result := &SyncResult{BrandID: brandID, Fetched: len(insights), SyncedAt: now}
	if len(insights) == 0 {
		return result, nil
	}

	rows := make([]models.FacebookAd, 0, len(insights))
	for _, insight := range insights {
		raw, err := models.NewJSON(insight.Raw)
		if err != nil {
			return nil, fmt.Errorf("encode insights of ad %s: %w", insight.AdID, err)
		}
		rows = append(rows, models.FacebookAd{
			ID:            insight.AdID,
			BrandID:       brandID,
			Name:          insight.AdName,
			Status:        insight.Status,
			CampaignName:  insight.CampaignName,
			AdsetName:     insight.AdsetName,
			Spend:         insight.Spend,
			ROAS:          insight.ROAS,
			PurchaseValue: insight.PurchaseValue,
			CPM:           insight.CPM,
			CTR:           insight.CTR,
			Impressions:   insight.Impressions,
			Clicks:        insight.Clicks,
			Insights:      raw,
			SyncedAt:      now,
		})
	}

	err = db.WithContext(ctx).Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns(metricColumns),
	}).CreateInBatches(rows, 200).Error
	if err != nil {
		return nil, err
	}
	result.Upserted = len(rows)
	return result, nil
}

// SyncAllBrands syncs every connected brand, at most concurrency at a time.
// A failing brand is logged and skipped.
func SyncAllBrands(ctx context.Context, db *gorm.DB, fetcher InsightsFetcher, log *logger.Logger, concurrency int) ([]SyncResult, error) {
	var brandIDs []uint64
	err := db.WithContext(ctx).Model(&models.Brand{}).
		Where("facebook_access_token <> '' AND facebook_ad_account_id <> ''").
		Order("id").Pluck("id", &brandIDs).Error
	if err != nil {
		return nil, err
	}

	results := make([]*SyncResult, len(brandIDs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(concurrency, 1))
	for i, brandID := range brandIDs {
		g.Go(func() error {
			result, err := SyncBrandFacebookAds(gctx, db, fetcher, brandID)
			if err != nil {
				log.Error("facebook sync failed", "brandId", brandID, "error", err)
				return nil
			}
			results[i] = result
			return nil
		})
	}
	_ = g.Wait()

	synced := make([]SyncResult, 0, len(results))
	for _, result := range results {
		if result != nil {
			synced = append(synced, *result)
		}
	}
	log.Info("facebook sync finished", "brands", len(brandIDs), "synced", len(synced))
	return synced, nil
}

// ListFacebookAds returns cached ads, highest spend first
func ListFacebookAds(ctx context.Context, db *gorm.DB, filter FacebookAdFilter, page Page) (PageResult[models.FacebookAd], error) {
	query := silent(db).WithContext(ctx).Model(&models.FacebookAd{})
	if filter.BrandID != 0 {
		query = query.Where("brand_id = ?", filter.BrandID)
	}
	switch {
	case filter.Unlinked:
		query = query.Where("batch_id IS NULL")
	case filter.BatchID != 0:
		query = query.Where("batch_id = ?", filter.BatchID)
	}

	page = page.Normalize()
	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return PageResult[models.FacebookAd]{}, err
	}
	ads := []models.FacebookAd{}
	err := page.apply(query).
		Clauses(hints.Comment("select", "swipefile:list_facebook_ads")).
		Order("spend DESC").Order("id").Find(&ads).Error
	return newPageResult(ads, total, page), err
}

// LinkFacebookAd sets or clears the batch an ad is attributed to
func LinkFacebookAd(ctx context.Context, db *gorm.DB, id string, batchID *uint64) (*models.FacebookAd, error) {
	var ad models.FacebookAd
	if err := silent(db).WithContext(ctx).Where("id = ?", id).First(&ad).Error; err != nil {
		return nil, classify(err, "facebook ad", id)
	}
	if batchID != nil {
		var batch models.AdBatch
		if err := silent(db).WithContext(ctx).First(&batch, *batchID).Error; err != nil {
			return nil, invalid("batch %d does not exist", *batchID)
		}
		if batch.BrandID != nil && *batch.BrandID != ad.BrandID {
			return nil, invalid("batch %d belongs to another brand", *batchID)
		}
	}
	if err := db.WithContext(ctx).Model(&ad).UpdateColumn("batch_id", batchID).Error; err != nil {
		return nil, err
	}
	ad.BatchID = batchID
	return &ad, nil
}

type rollupRow struct {
	BatchID       uint64
	Ads           int64
	Spend         float64
	PurchaseValue float64
	Impressions   int64
	Clicks        int64
}

const rollupSelect = "COUNT(*) AS ads, COALESCE(SUM(spend), 0) AS spend, " +
	"COALESCE(SUM(purchase_value), 0) AS purchase_value, " +
	"COALESCE(SUM(impressions), 0) AS impressions, COALESCE(SUM(clicks), 0) AS clicks"

func (r rollupRow) rollup() Rollup {
	out := Rollup{
		Ads:           r.Ads,
		Spend:         r.Spend,
		PurchaseValue: r.PurchaseValue,
		Impressions:   r.Impressions,
		Clicks:        r.Clicks,
	}
	if r.Spend > 0 {
		out.ROAS = r.PurchaseValue / r.Spend
	}
	return out
}

// Verdict compares a rollup with the break-even ROAS
func Verdict(r Rollup, breakEven float64) string {
	switch {
	case r.Spend <= 0:
		return VerdictNone
	case r.ROAS >= breakEven:
		return VerdictAbove
	}
	return VerdictBelow
}

// BatchPerformance rolls up the facebook ads linked to a batch
func BatchPerformance(ctx context.Context, db *gorm.DB, batchID uint64) (*Rollup, error) {
	if !exists(db.WithContext(ctx), &models.AdBatch{}, batchID) {
		return nil, notFound("batch", batchID)
	}
	var row rollupRow
	err := db.WithContext(ctx).Model(&models.FacebookAd{}).
		Select(rollupSelect).Where("batch_id = ?", batchID).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	rollup := row.rollup()
	return &rollup, nil
}

// BrandDashboard returns status counts, linked ad totals and per-batch verdicts
func BrandDashboard(ctx context.Context, db *gorm.DB, brandID uint64) (*Dashboard, error) {
	brand, err := GetBrand(ctx, db, brandID)
	if err != nil {
		return nil, err
	}
	tx := db.WithContext(ctx)

	var counts []struct {
		Status models.BatchStatus
		Count  int64
	}
	err = tx.Model(&models.AdBatch{}).Select("status, COUNT(*) AS count").
		Where("brand_id = ?", brandID).Group("status").Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	dashboard := &Dashboard{
		BrandID:       brandID,
		BreakEvenROAS: brand.BreakEvenROAS,
		StatusCounts:  map[models.BatchStatus]int64{},
		Batches:       []BatchPerformanceRow{},
	}
	for _, c := range counts {
		dashboard.StatusCounts[c.Status] = c.Count
	}

	var totals rollupRow
	err = tx.Model(&models.FacebookAd{}).Select(rollupSelect).
		Where("brand_id = ? AND batch_id IS NOT NULL", brandID).Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	dashboard.Totals = totals.rollup()

	var rows []rollupRow
	err = tx.Model(&models.FacebookAd{}).Select("batch_id, "+rollupSelect).
		Where("brand_id = ? AND batch_id IS NOT NULL", brandID).
		Group("batch_id").Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return dashboard, nil
	}

	ids := make([]uint64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.BatchID)
	}
	var batches []models.AdBatch
	if err := tx.Select("id", "name", "status").Where("id IN ?", ids).Find(&batches).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint64]models.AdBatch, len(batches))
	for _, batch := range batches {
		byID[batch.ID] = batch
	}

	for _, row := range rows {
		rollup := row.rollup()
		batch := byID[row.BatchID]
		dashboard.Batches = append(dashboard.Batches, BatchPerformanceRow{
			BatchID: row.BatchID,
			Name:    batch.Name,
			Status:  batch.Status,
			Rollup:  rollup,
			Verdict: Verdict(rollup, brand.BreakEvenROAS),
		})
	}
	sortPerformanceRows(dashboard.Batches)
	return dashboard, nil
}

func sortPerformanceRows(rows []BatchPerformanceRow) {
	slices.SortStableFunc(rows, func(a, b BatchPerformanceRow) int {
		return cmp.Compare(b.Spend, a.Spend)
	})
}
