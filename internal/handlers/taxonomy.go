// taxonomy.go
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
	"github.com/localnerve/swipefile/internal/utils"
)

// TaxonomyHandler serves one taxonomy table: formats, hooks, themes, desires,
// awareness levels or demographics
type TaxonomyHandler[T any, P services.TaxonPtr[T]] struct {
	*Deps
	kind string
}

func registerTaxonomy[T any, P services.TaxonPtr[T]](router fiber.Router, path string, d *Deps, admin fiber.Handler) {
	h := &TaxonomyHandler[T, P]{Deps: d, kind: path[1:]}
	router.Get(path, h.List)
	router.Post(path, h.QuickAdd)
	router.Get(path+"/:id", h.Get)
	router.Put(path+"/:id", h.Update)
	router.Delete(path+"/:id", admin, h.Delete)
}

// List handles GET /api/{kind}
// @Summary List a taxonomy
// @Tags Taxonomy
// @Produce json
// @Param kind path string true "formats|hooks|themes|desires|awareness-levels|demographics"
// @Param q query string false "Name contains"
// @Success 200 {array} object
// @Router /{kind} [get]
func (h *TaxonomyHandler[T, P]) List(c *fiber.Ctx) error {
	rows, err := services.ListTaxa[T, P](c.UserContext(), h.DB, c.Query("q"))
	if err != nil {
		return respond(c, err, h.kind+".list")
	}
	return c.JSON(rows)
}

// Get handles GET /api/{kind}/:id
// @Summary Get a taxonomy row
// @Tags Taxonomy
// @Produce json
// @Param kind path string true "Taxonomy"
// @Param id path int true "Row ID"
// @Success 200 {object} object
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /{kind}/{id} [get]
func (h *TaxonomyHandler[T, P]) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	row, err := services.GetTaxon[T, P](c.UserContext(), h.DB, id)
	if err != nil {
		return respond(c, err, h.kind+".get")
	}
	return c.JSON(row)
}

// QuickAdd handles POST /api/{kind}
// @Summary Find or create a taxonomy row by name
// @Description Answers 201 when the row was created and 200 when it already existed
// @Tags Taxonomy
// @Accept json
// @Produce json
// @Param kind path string true "Taxonomy"
// @Param body body services.TaxonInput true "Row"
// @Success 200 {object} object
// @Success 201 {object} object
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /{kind} [post]
func (h *TaxonomyHandler[T, P]) QuickAdd(c *fiber.Ctx) error {
	var body services.TaxonInput
	if err := bind(c, &body); err != nil {
		return err
	}
	row, created, err := services.QuickAddTaxon[T, P](c.UserContext(), h.DB, body)
	if err != nil {
		return respond(c, err, h.kind+".create")
	}
	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return utils.SuccessResponse(c, row, status)
}

// Update handles PUT /api/{kind}/:id
// @Summary Rename or describe a taxonomy row
// @Tags Taxonomy
// @Accept json
// @Produce json
// @Param kind path string true "Taxonomy"
// @Param id path int true "Row ID"
// @Param body body services.TaxonInput true "Row"
// @Success 200 {object} object
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /{kind}/{id} [put]
func (h *TaxonomyHandler[T, P]) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var body services.TaxonInput
	if err := bind(c, &body); err != nil {
		return err
	}
	row, err := services.UpdateTaxon[T, P](c.UserContext(), h.DB, id, body)
	if err != nil {
		return respond(c, err, h.kind+".update")
	}
	return c.JSON(row)
}

// Delete handles DELETE /api/{kind}/:id
// @Summary Delete a taxonomy row
// @Description Optional references are cleared; a row still required by an angle answers 409
// @Tags Taxonomy
// @Produce json
// @Param kind path string true "Taxonomy"
// @Param id path int true "Row ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /{kind}/{id} [delete]
func (h *TaxonomyHandler[T, P]) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := services.DeleteTaxon[T, P](c.UserContext(), h.DB, id); err != nil {
		return respond(c, err, h.kind+".delete")
	}
	return utils.MutationSuccessResponse(c, 1)
}

// AngleHandler handles the marketing angle routes
type AngleHandler struct {
	*Deps
}

// List handles GET /api/angles
// @Summary List angles
// @Tags Angles
// @Produce json
// @Param brandId query int false "Brand; brandless angles are included"
// @Param q query string false "Name contains"
// @Success 200 {array} models.AdAngle
// @Router /angles [get]
func (h *AngleHandler) List(c *fiber.Ctx) error {
	angles, err := services.ListAngles(c.UserContext(), h.DB, middleware.BrandID(c), c.Query("q"))
	if err != nil {
		return respond(c, err, "angles.list")
	}
	return c.JSON(angles)
}

// Get handles GET /api/angles/:id
// @Summary Get an angle
// @Tags Angles
// @Produce json
// @Param id path int true "Angle ID"
// @Success 200 {object} models.AdAngle
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /angles/{id} [get]
func (h *AngleHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	angle, err := services.GetAngle(c.UserContext(), h.DB, id)
	if err != nil {
		return respond(c, err, "angles.get")
	}
	return c.JSON(angle)
}

// Create handles POST /api/angles
// @Summary Create an angle
// @Tags Angles
// @Accept json
// @Produce json
// @Param body body services.AngleInput true "Angle"
// @Success 201 {object} models.AdAngle
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /angles [post]
func (h *AngleHandler) Create(c *fiber.Ctx) error {
	var body services.AngleInput
	if err := bind(c, &body); err != nil {
		return err
	}
	angle, err := services.CreateAngle(c.UserContext(), h.DB, body)
	if err != nil {
		return respond(c, err, "angles.create")
	}
	return utils.SuccessResponse(c, angle, fiber.StatusCreated)
}

// Update handles PUT /api/angles/:id
// @Summary Update an angle
// @Tags Angles
// @Accept json
// @Produce json
// @Param id path int true "Angle ID"
// @Param body body services.AngleInput true "Angle"
// @Success 200 {object} models.AdAngle
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /angles/{id} [put]
func (h *AngleHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var body services.AngleInput
	if err := bind(c, &body); err != nil {
		return err
	}
	angle, err := services.UpdateAngle(c.UserContext(), h.DB, id, body)
	if err != nil {
		return respond(c, err, "angles.update")
	}
	return c.JSON(angle)
}

// Delete handles DELETE /api/angles/:id
// @Summary Delete an angle no batch uses
// @Tags Angles
// @Produce json
// @Param id path int true "Angle ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /angles/{id} [delete]
func (h *AngleHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := services.DeleteAngle(c.UserContext(), h.DB, id); err != nil {
		return respond(c, err, "angles.delete")
	}
	return utils.MutationSuccessResponse(c, 1)
}

// ConceptDoc handles POST /api/angles/:id/concept-doc
// @Summary Write the concept document of an angle
// @Tags Angles, AI
// @Produce json
// @Param id path int true "Angle ID"
// @Success 200 {object} models.AdAngle
// @Failure 412 {object} utils.ErrorResponseStruct
// @Failure 502 {object} utils.ErrorResponseStruct
// @Router /angles/{id}/concept-doc [post]
func (h *AngleHandler) ConceptDoc(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	angle, err := services.GenerateConceptDoc(c.UserContext(), h.DB, h.Integrations.AI, id)
	if err != nil {
		return respond(c, err, "angles.conceptDoc")
	}
	return c.JSON(angle)
}
