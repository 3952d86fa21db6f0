// creatives.go
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
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/swipefile/internal/middleware"
	"github.com/localnerve/swipefile/internal/models"
	"github.com/localnerve/swipefile/internal/services"
	"github.com/localnerve/swipefile/internal/types"
	"github.com/localnerve/swipefile/internal/utils"
)

// CreativeHandler handles creatives, their tags and media streaming
type CreativeHandler struct {
	*Deps
}

// List handles GET /api/creatives
// @Summary List creatives, flat or grouped into a deck
// @Tags Creatives
// @Produce json
// @Param brandId query int false "Brand"
// @Param creatorId query int false "Creator"
// @Param type query string false "VIDEO|IMAGE"
// @Param tags query string false "Comma-separated tags; all must match"
// @Param q query string false "Name or folder contains"
// @Param view query string false "flat|deck"
// @Param page query int false "Page (flat view)"
// @Param limit query int false "Page size (flat view)"
// @Success 200 {object} services.PageResult[models.Creative]
// @Success 200 {object} services.Deck
// @Router /creatives [get]
func (h *CreativeHandler) List(c *fiber.Ctx) error {
	filter := services.CreativeFilter{
		BrandID:   middleware.BrandID(c),
		CreatorID: queryID(c, "creatorId"),
		Type:      models.CreativeType(c.Query("type")),
		Tags:      parseList(c, "tags"),
		Query:     c.Query("q"),
	}

	switch c.Query("view", "flat") {
	case "deck":
		deck, err := services.CreativeDeck(c.UserContext(), h.DB, filter)
		if err != nil {
			return respond(c, err, "creatives.deck")
		}
		return c.JSON(deck)
	case "flat":
		page, err := services.ListCreatives(c.UserContext(), h.DB, filter, parsePage(c))
		if err != nil {
			return respond(c, err, "creatives.list")
		}
		return c.JSON(page)
	}
	return utils.ErrorResponse(c, "view must be flat or deck", fiber.StatusBadRequest, "creatives.list.validation")
}

// Get handles GET /api/creatives/:id
// @Summary Get a creative with its tags
// @Tags Creatives
// @Produce json
// @Param id path int true "Creative ID"
// @Success 200 {object} models.Creative
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /creatives/{id} [get]
func (h *CreativeHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	creative, err := services.GetCreative(c.UserContext(), h.DB, id)
	if err != nil {
		return respond(c, err, "creatives.get")
	}
	return c.JSON(creative)
}

// Update handles PUT /api/creatives/:id
// @Summary Update a creative; tags, when given, replace the tag set
// @Tags Creatives
// @Accept json
// @Produce json
// @Param id path int true "Creative ID"
// @Param body body services.CreativeInput true "Creative"
// @Success 200 {object} models.Creative
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /creatives/{id} [put]
func (h *CreativeHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var body services.CreativeInput
	if err := bind(c, &body); err != nil {
		return err
	}
	creative, err := services.UpdateCreative(c.UserContext(), h.DB, id, body)
	if err != nil {
		return respond(c, err, "creatives.update")
	}
	return c.JSON(creative)
}

// Delete handles DELETE /api/creatives/:id
// @Summary Delete a creative record; the Drive file is kept
// @Tags Creatives
// @Produce json
// @Param id path int true "Creative ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Security CookieAuth
// @Router /creatives/{id} [delete]
func (h *CreativeHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := services.DeleteCreative(c.UserContext(), h.DB, id); err != nil {
		return respond(c, err, "creatives.delete")
	}
	return utils.MutationSuccessResponse(c, 1)
}

// Stream handles GET /api/creatives/:id/stream
// @Summary Byte-range proxy of the creative media from Drive
// @Tags Creatives
// @Produce octet-stream
// @Param id path int true "Creative ID"
// @Param Range header string false "Byte range"
// @Success 200 {file} file
// @Success 206 {file} file
// @Failure 412 {object} utils.ErrorResponseStruct
// @Failure 502 {object} utils.ErrorResponseStruct
// @Router /creatives/{id}/stream [get]
func (h *CreativeHandler) Stream(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	media, err := services.OpenCreativeStream(c.UserContext(), h.DB, h.Integrations.Google, id, c.Get(fiber.HeaderRange))
	if err != nil {
		return respond(c, err, "creatives.stream")
	}

	c.Status(media.StatusCode)
	if media.ContentType != "" {
		c.Set(fiber.HeaderContentType, media.ContentType)
	}
	if media.ContentRange != "" {
		c.Set(fiber.HeaderContentRange, media.ContentRange)
	}
	c.Set(fiber.HeaderAcceptRanges, "bytes")
	if media.AcceptRanges != "" {
		c.Set(fiber.HeaderAcceptRanges, media.AcceptRanges)
	}

	size := -1
	if media.ContentLength != "" {
		if n, err := strconv.Atoi(media.ContentLength); err == nil {
			size = n
		}
	}
	// fasthttp closes the body once streamed
	return c.SendStream(media.Body, size)
}

// Tags handles GET /api/tags
// @Summary List tags
// @Tags Tags
// @Produce json
// @Param kind query string false "PLAIN|GROUP_ID|LEVEL1|BUNCH|AI_GENERATED"
// @Success 200 {array} models.Tag
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /tags [get]
func (h *CreativeHandler) Tags(c *fiber.Ctx) error {
	tags, err := services.ListTags(c.UserContext(), h.DB, models.TagKind(c.Query("kind")))
	if err != nil {
		return respond(c, err, "tags.list")
	}
	return c.JSON(tags)
}

// creativeIds accepts an array, a comma separated string or a single id
type tagChangeBody struct {
	Tags        []string                         `json:"tags" validate:"required,min=1,dive,required"`
	CreativeIDs types.FlexList[types.FlexUint64] `json:"creativeIds" validate:"required,min=1" swaggertype:"array,integer"`
}

func (b tagChangeBody) change() services.TagChange {
	return services.TagChange{Tags: b.Tags, CreativeIDs: types.Uint64s(b.CreativeIDs)}
}

// ApplyTags handles POST /api/tags/apply
// @Summary Create missing tags and connect them to creatives
// @Tags Tags
// @Accept json
// @Produce json
// @Param body body tagChangeBody true "Tags and creatives"
// @Success 200 {object} services.TagChangeResult
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /tags/apply [post]
func (h *CreativeHandler) ApplyTags(c *fiber.Ctx) error {
	var body tagChangeBody
	if err := bind(c, &body); err != nil {
		return err
	}
	result, err := services.ApplyTags(c.UserContext(), h.DB, body.change())
	if err != nil {
		return respond(c, err, "tags.apply")
	}
	return c.JSON(result)
}

// RemoveTags handles POST /api/tags/remove
// @Summary Disconnect tags from creatives
// @Tags Tags
// @Accept json
// @Produce json
// @Param body body tagChangeBody true "Tags and creatives"
// @Success 200 {object} services.TagChangeResult
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /tags/remove [post]
func (h *CreativeHandler) RemoveTags(c *fiber.Ctx) error {
	var body tagChangeBody
	if err := bind(c, &body); err != nil {
		return err
	}
	result, err := services.RemoveTags(c.UserContext(), h.DB, body.change())
	if err != nil {
		return respond(c, err, "tags.remove")
	}
	return c.JSON(result)
}
