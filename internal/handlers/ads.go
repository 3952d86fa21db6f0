// ads.go
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

package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/swipefile/internal/middleware"
	"github.com/localnerve/swipefile/internal/services"
	"github.com/localnerve/swipefile/internal/types"
	"github.com/localnerve/swipefile/internal/utils"
)

// AdHandler handles the competitor ad swipe file routes
type AdHandler struct {
	*Deps
}

// List handles GET /api/ads
// @Summary List competitor ads
// @Tags Ads
// @Produce json
// @Param brandId query int false "Brand"
// @Param q query string false "Headline, description or advertiser text"
// @Param priority query int false "Priority 1-3"
// @Param formatId query int false "Format"
// @Param hookId query int false "Hook"
// @Param themeId query int false "Theme"
// @Param desireId query int false "Desire"
// @Param awarenessLevelId query int false "Awareness level"
// @Param demographicId query int false "Demographic"
// @Param importBatchId query int false "Import run"
// @Param sort query string false "lastSeen|firstSeen|publishDate|priority"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} services.PageResult[models.Ad]
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /ads [get]
func (h *AdHandler) List(c *fiber.Ctx) error {
	filter := services.AdFilter{
		BrandID:          middleware.BrandID(c),
		Query:            c.Query("q"),
		Priority:         c.QueryInt("priority"),
		FormatID:         queryID(c, "formatId"),
		HookID:           queryID(c, "hookId"),
		ThemeID:          queryID(c, "themeId"),
		DesireID:         queryID(c, "desireId"),
		AwarenessLevelID: queryID(c, "awarenessLevelId"),
		DemographicID:    queryID(c, "demographicId"),
		ImportBatchID:    queryID(c, "importBatchId"),
		Sort:             c.Query("sort"),
	}
	page, err := services.ListAds(c.UserContext(), h.DB, filter, parsePage(c))
	if err != nil {
		return respond(c, err, "ads.list")
	}
	return c.JSON(page)
}

// Get handles GET /api/ads/:id
// @Summary Get an ad with its taxonomy
// @Tags Ads
// @Produce json
// @Param id path int true "Ad ID"
// @Success 200 {object} models.Ad
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /ads/{id} [get]
func (h *AdHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	ad, err := services.GetAd(c.UserContext(), h.DB, id)
	if err != nil {
		return respond(c, err, "ads.get")
	}
	return c.JSON(ad)
}

// Create handles POST /api/ads
// @Summary Enter an ad manually
// @Tags Ads
// @Accept json
// @Produce json
// @Param body body services.AdInput true "Ad"
// @Success 201 {object} models.Ad
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /ads [post]
func (h *AdHandler) Create(c *fiber.Ctx) error {
	var body services.AdInput
	if err := bind(c, &body); err != nil {
		return err
	}
	ad, err := services.CreateAd(c.UserContext(), h.DB, body)
	if err != nil {
		return respond(c, err, "ads.create")
	}
	return utils.SuccessResponse(c, ad, fiber.StatusCreated)
}

// Update handles PUT /api/ads/:id
// @Summary Update an ad
// @Tags Ads
// @Accept json
// @Produce json
// @Param id path int true "Ad ID"
// @Param body body services.AdInput true "Ad"
// @Success 200 {object} models.Ad
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /ads/{id} [put]
func (h *AdHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var body services.AdInput
	if err := bind(c, &body); err != nil {
		return err
	}
	ad, err := services.UpdateAd(c.UserContext(), h.DB, id, body)
	if err != nil {
		return respond(c, err, "ads.update")
	}
	return c.JSON(ad)
}

// Delete handles DELETE /api/ads/:id
// @Summary Delete an ad and its snapshots
// @Tags Ads
// @Produce json
// @Param id path int true "Ad ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /ads/{id} [delete]
func (h *AdHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := services.DeleteAd(c.UserContext(), h.DB, id); err != nil {
		return respond(c, err, "ads.delete")
	}
	return utils.MutationSuccessResponse(c, 1)
}

// Snapshots handles GET /api/ads/:id/snapshots
// @Summary Engagement time series of an ad
// @Tags Ads
// @Produce json
// @Param id path int true "Ad ID"
// @Success 200 {array} models.AdSnapshot
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /ads/{id}/snapshots [get]
func (h *AdHandler) Snapshots(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	snapshots, err := services.ListSnapshots(c.UserContext(), h.DB, id)
	if err != nil {
		return respond(c, err, "ads.snapshots")
	}
	return c.JSON(snapshots)
}

// ImportBatches handles GET /api/import-batches
// @Summary Import runs with their snapshot counts
// @Tags Ads
// @Produce json
// @Success 200 {array} services.ImportBatchSummary
// @Router /import-batches [get]
func (h *AdHandler) ImportBatches(c *fiber.Ctx) error {
	batches, err := services.ListImportBatches(c.UserContext(), h.DB)
	if err != nil {
		return respond(c, err, "ads.importBatches")
	}
	return c.JSON(batches)
}

// Import handles POST /api/ads/import
// @Summary Import a saved ad library export
// @Tags Ads
// @Accept mpfd
// @Produce json
// @Param file formData file true "HTML export"
// @Param batchName formData string true "Import run name"
// @Param brandId formData int false "Assign the ads to a brand"
// @Success 200 {object} services.ImportResult
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /ads/import [post]
func (h *AdHandler) Import(c *fiber.Ctx) error {
	header, err := c.FormFile("file")
	if err != nil {
		return types.NewError(fiber.StatusBadRequest, "ads.import.validation", "file is required")
	}
	name := strings.TrimSpace(c.FormValue("batchName"))
	if name == "" {
		name = header.Filename
	}

	opts := services.ImportOptions{Name: name}
	if id := formID(c, "brandId"); id != 0 {
		opts.BrandID = &id
	}

	file, err := header.Open()
	if err != nil {
		return respond(c, err, "ads.import")
	}
	defer file.Close()

	result, err := services.ImportAds(c.UserContext(), h.DB, h.Log, opts, file)
	if err != nil {
		return respond(c, err, "ads.import")
	}
	return c.JSON(result)
}

// Analyze handles POST /api/ads/:id/analyze
// @Summary Transcribe the ad video and derive its main messaging
// @Tags Ads, AI
// @Produce json
// @Param id path int true "Ad ID"
// @Success 200 {object} models.Ad
// @Failure 412 {object} utils.ErrorResponseStruct
// @Failure 502 {object} utils.ErrorResponseStruct
// @Router /ads/{id}/analyze [post]
func (h *AdHandler) Analyze(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	ad, err := services.AnalyzeAd(c.UserContext(), h.DB, h.Integrations.AI, h.HTTPClient, id)
	if err != nil {
		return respond(c, err, "ads.analyze")
	}
	return c.JSON(ad)
}
