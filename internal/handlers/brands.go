// brands.go
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
	"github.com/localnerve/swipefile/internal/services"
	"github.com/localnerve/swipefile/internal/utils"
)

// BrandHandler handles brand routes and their integration connections
type BrandHandler struct {
	*Deps
}

// List handles GET /api/brands
// @Summary List brands
// @Tags Brands
// @Produce json
// @Success 200 {array} models.Brand
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /brands [get]
func (h *BrandHandler) List(c *fiber.Ctx) error {
	brands, err := services.ListBrands(c.UserContext(), h.DB)
	if err != nil {
		return respond(c, err, "brands.list")
	}
	return c.JSON(brands)
}

// Get handles GET /api/brands/:id
// @Summary Get a brand
// @Tags Brands
// @Produce json
// @Param id path int true "Brand ID"
// @Success 200 {object} models.Brand
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /brands/{id} [get]
func (h *BrandHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	brand, err := services.GetBrand(c.UserContext(), h.DB, id)
	if err != nil {
		return respond(c, err, "brands.get")
	}
	return c.JSON(brand)
}

// Create handles POST /api/brands
// @Summary Create a brand
// @Tags Brands
// @Accept json
// @Produce json
// @Param body body services.BrandInput true "Brand"
// @Success 201 {object} models.Brand
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /brands [post]
func (h *BrandHandler) Create(c *fiber.Ctx) error {
	var body services.BrandInput
	if err := bind(c, &body); err != nil {
		return err
	}
	brand, err := services.CreateBrand(c.UserContext(), h.DB, body)
	if err != nil {
		return respond(c, err, "brands.create")
	}
	return utils.SuccessResponse(c, brand, fiber.StatusCreated)
}

// Update handles PUT /api/brands/:id
// @Summary Update a brand
// @Description Credentials are left untouched
// @Tags Brands
// @Accept json
// @Produce json
// @Param id path int true "Brand ID"
// @Param body body services.BrandInput true "Brand"
// @Success 200 {object} models.Brand
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /brands/{id} [put]
func (h *BrandHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var body services.BrandInput
	if err := bind(c, &body); err != nil {
		return err
	}
	brand, err := services.UpdateBrand(c.UserContext(), h.DB, id, body)
	if err != nil {
		return respond(c, err, "brands.update")
	}
	return c.JSON(brand)
}

// Delete handles DELETE /api/brands/:id
// @Summary Delete a brand and everything it owns
// @Tags Brands
// @Produce json
// @Param id path int true "Brand ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /brands/{id} [delete]
func (h *BrandHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := services.DeleteBrand(c.UserContext(), h.DB, id); err != nil {
		return respond(c, err, "brands.delete")
	}
	return utils.MutationSuccessResponse(c, 1)
}

// ConnectFacebook handles PUT /api/brands/:id/integrations/facebook
// @Summary Store the Facebook ad account credentials of a brand
// @Tags Brands
// @Accept json
// @Produce json
// @Param id path int true "Brand ID"
// @Param body body services.FacebookCredentials true "Credentials"
// @Success 200 {object} models.Brand
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /brands/{id}/integrations/facebook [put]
func (h *BrandHandler) ConnectFacebook(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var body services.FacebookCredentials
	if err := bind(c, &body); err != nil {
		return err
	}
	brand, err := services.SetFacebookCredentials(c.UserContext(), h.DB, id, body)
	if err != nil {
		return respond(c, err, "brands.facebook")
	}
	return c.JSON(brand)
}

// GoogleAuthURL handles GET /api/brands/:id/integrations/google/auth-url
// @Summary Google consent URL for a brand
// @Tags Brands
// @Produce json
// @Param id path int true "Brand ID"
// @Success 200 {object} map[string]string
// @Failure 412 {object} utils.ErrorResponseStruct
// @Router /brands/{id}/integrations/google/auth-url [get]
func (h *BrandHandler) GoogleAuthURL(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	url, err := services.GoogleAuthURL(c.UserContext(), h.DB, h.Integrations.Google, id)
	if err != nil {
		return respond(c, err, "brands.google")
	}
	return c.JSON(fiber.Map{"url": url})
}

// GoogleExchange handles POST /api/brands/:id/integrations/google/exchange
// @Summary Complete the Google consent flow
// @Tags Brands
// @Accept json
// @Produce json
// @Param id path int true "Brand ID"
// @Param body body services.GoogleExchange true "Authorization code"
// @Success 200 {object} models.Brand
// @Failure 412 {object} utils.ErrorResponseStruct
// @Failure 502 {object} utils.ErrorResponseStruct
// @Router /brands/{id}/integrations/google/exchange [post]
func (h *BrandHandler) GoogleExchange(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var body services.GoogleExchange
	if err := bind(c, &body); err != nil {
		return err
	}
	brand, err := services.ExchangeGoogleCode(c.UserContext(), h.DB, h.Integrations.Google, id, body)
	if err != nil {
		return respond(c, err, "brands.google")
	}
	return c.JSON(brand)
}

// Dashboard handles GET /api/brands/:id/dashboard
// @Summary Pipeline counts and ad performance of a brand
// @Tags Brands
// @Produce json
// @Param id path int true "Brand ID"
// @Success 200 {object} services.Dashboard
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /brands/{id}/dashboard [get]
func (h *BrandHandler) Dashboard(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	dashboard, err := services.BrandDashboard(c.UserContext(), h.DB, id)
	if err != nil {
		return respond(c, err, "brands.dashboard")
	}
	return c.JSON(dashboard)
}

// DriveFiles handles GET /api/brands/:id/drive/files
// @Summary List a folder of the brand's Drive
// @Tags Brands
// @Produce json
// @Param id path int true "Brand ID"
// @Param folderId query string false "Folder, defaults to the brand root"
// @Success 200 {array} gdrive.File
// @Failure 412 {object} utils.ErrorResponseStruct
// @Failure 502 {object} utils.ErrorResponseStruct
// @Router /brands/{id}/drive/files [get]
func (h *BrandHandler) DriveFiles(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	files, err := services.ListDriveFolder(c.UserContext(), h.DB, h.Integrations.Google, id, c.Query("folderId"))
	if err != nil {
		return respond(c, err, "brands.drive")
	}
	return c.JSON(files)
}
