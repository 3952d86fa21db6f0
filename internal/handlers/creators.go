// creators.go
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
	"github.com/localnerve/swipefile/internal/models"
	"github.com/localnerve/swipefile/internal/services"
	"github.com/localnerve/swipefile/internal/types"
	"github.com/localnerve/swipefile/internal/utils"
)

// CreatorHandler handles the creator routes
type CreatorHandler struct {
	*Deps
}

// List handles GET /api/creators
// @Summary List creators
// @Tags Creators
// @Produce json
// @Param brandId query int false "Brand"
// @Param q query string false "Name or email contains"
// @Param status query string false "PROSPECT|ONBOARDING|ACTIVE|INACTIVE"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} services.PageResult[models.Creator]
// @Router /creators [get]
func (h *CreatorHandler) List(c *fiber.Ctx) error {
	filter := services.CreatorFilter{
		BrandID: middleware.BrandID(c),
		Query:   c.Query("q"),
		Status:  models.CreatorStatus(c.Query("status")),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return utils.ErrorResponse(c, "unknown status "+string(filter.Status), fiber.StatusBadRequest, "creators.list.validation")
	}
	page, err := services.ListCreators(c.UserContext(), h.DB, filter, parsePage(c))
	if err != nil {
		return respond(c, err, "creators.list")
	}
	return c.JSON(page)
}

// Get handles GET /api/creators/:id
// @Summary Get a creator
// @Tags Creators
// @Produce json
// @Param id path int true "Creator ID"
// @Success 200 {object} models.Creator
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /creators/{id} [get]
func (h *CreatorHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	creator, err := services.GetCreator(c.UserContext(), h.DB, id)
	if err != nil {
		return respond(c, err, "creators.get")
	}
	return c.JSON(creator)
}

// Create handles POST /api/creators
// @Summary Create a creator
// @Description A missing email is replaced by a unique placeholder address
// @Tags Creators
// @Accept json
// @Produce json
// @Param body body services.CreatorInput true "Creator"
// @Success 201 {object} models.Creator
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /creators [post]
func (h *CreatorHandler) Create(c *fiber.Ctx) error {
	var body services.CreatorInput
	if err := bind(c, &body); err != nil {
		return err
	}
	creator, err := services.CreateCreator(c.UserContext(), h.DB, body)
	if err != nil {
		return respond(c, err, "creators.create")
	}
	return utils.SuccessResponse(c, creator, fiber.StatusCreated)
}

// Update handles PUT /api/creators/:id
// @Summary Update a creator
// @Tags Creators
// @Accept json
// @Produce json
// @Param id path int true "Creator ID"
// @Param body body services.CreatorInput true "Creator"
// @Success 200 {object} models.Creator
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /creators/{id} [put]
func (h *CreatorHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var body services.CreatorInput
	if err := bind(c, &body); err != nil {
		return err
	}
	creator, err := services.UpdateCreator(c.UserContext(), h.DB, id, body)
	if err != nil {
		return respond(c, err, "creators.update")
	}
	return c.JSON(creator)
}

// Delete handles DELETE /api/creators/:id
// @Summary Delete a creator; their creatives stay
// @Tags Creators
// @Produce json
// @Param id path int true "Creator ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Security CookieAuth
// @Router /creators/{id} [delete]
func (h *CreatorHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := services.DeleteCreator(c.UserContext(), h.DB, id); err != nil {
		return respond(c, err, "creators.delete")
	}
	return utils.MutationSuccessResponse(c, 1)
}

// StartDelivery handles POST /api/creators/:id/deliveries
// @Summary Start a delivery with a fresh C-###### id
// @Tags Creators
// @Produce json
// @Param id path int true "Creator ID"
// @Success 200 {object} models.Creator
// @Router /creators/{id}/deliveries [post]
func (h *CreatorHandler) StartDelivery(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	creator, err := services.StartDelivery(c.UserContext(), h.DB, id)
	if err != nil {
		return respond(c, err, "creators.delivery")
	}
	return c.JSON(creator)
}

// Upload handles POST /api/creators/:id/uploads
// @Summary Upload a delivered file to the creator's Drive folder
// @Tags Creators
// @Accept mpfd
// @Produce json
// @Param id path int true "Creator ID"
// @Param file formData file true "Video or image"
// @Success 201 {object} models.Creative
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 412 {object} utils.ErrorResponseStruct
// @Failure 502 {object} utils.ErrorResponseStruct
// @Router /creators/{id}/uploads [post]
func (h *CreatorHandler) Upload(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	header, err := c.FormFile("file")
	if err != nil {
		return types.NewError(fiber.StatusBadRequest, "creators.upload.validation", "file is required")
	}
	file, err := header.Open()
	if err != nil {
		return respond(c, err, "creators.upload")
	}
	defer file.Close()

	creative, err := services.UploadCreatorFile(c.UserContext(), h.DB, h.Integrations.Google, id,
		header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		return respond(c, err, "creators.upload")
	}
	return utils.SuccessResponse(c, creative, fiber.StatusCreated)
}
