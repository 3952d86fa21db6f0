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

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/swipefile/internal/middleware"
	"github.com/localnerve/swipefile/internal/services"
)

// FacebookHandler handles Facebook ad attribution routes
type FacebookHandler struct {
	*Deps
}

type linkBody struct {
	BatchID *uint64 `json:"batchId"`
}

// Sync handles POST /api/brands/:id/facebook/sync
// @Summary Pull ad-level insights for the brand's ad account
// @Tags Facebook
// @Produce json
// @Param id path int true "Brand ID"
// @Success 200 {object} services.SyncResult
// @Failure 412 {object} utils.ErrorResponseStruct
// @Failure 502 {object} utils.ErrorResponseStruct
// @Router /brands/{id}/facebook/sync [post]
func (h *FacebookHandler) Sync(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	result, err := services.SyncBrandFacebookAds(c.UserContext(), h.DB, h.Integrations.Facebook, id)
	if err != nil {
		return respond(c, err, "facebook.sync")
	}
	return c.JSON(result)
}

// List handles GET /api/facebook-ads
// @Summary List synced Facebook ads by spend
// @Tags Facebook
// @Produce json
// @Param brandId query int false "Brand"
// @Param batchId query int false "Linked batch"
// @Param unlinked query bool false "Only ads without a batch"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} services.PageResult[models.FacebookAd]
// @Router /facebook-ads [get]
func (h *FacebookHandler) List(c *fiber.Ctx) error {
	filter := services.FacebookAdFilter{
		BrandID:  middleware.BrandID(c),
		BatchID:  queryID(c, "batchId"),
		Unlinked: c.QueryBool("unlinked"),
	}
	page, err := services.ListFacebookAds(c.UserContext(), h.DB, filter, parsePage(c))
	if err != nil {
		return respond(c, err, "facebook.list")
	}
	return c.JSON(page)
}

// Link handles PUT /api/facebook-ads/:id/batch
// @Summary Link a Facebook ad to a batch, or unlink with null
// @Tags Facebook
// @Accept json
// @Produce json
// @Param id path string true "Facebook ad ID"
// @Param body body linkBody true "Batch"
// @Success 200 {object} models.FacebookAd
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /facebook-ads/{id}/batch [put]
func (h *FacebookHandler) Link(c *fiber.Ctx) error {
	var body linkBody
	if err := bind(c, &body); err != nil {
		return err
	}
	ad, err := services.LinkFacebookAd(c.UserContext(), h.DB, c.Params("id"), body.BatchID)
	if err != nil {
		return respond(c, err, "facebook.link")
	}
	return c.JSON(ad)
}
