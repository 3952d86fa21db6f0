// batches.go
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

// BatchHandler handles the production pipeline routes: batches and their items
type BatchHandler struct {
	*Deps
}

type statusBody struct {
	Status string `json:"status" validate:"required"`
}

// creatorIds accepts an array, a comma separated string or a single id
type creatorsBody struct {
	CreatorIDs types.FlexList[types.FlexUint64] `json:"creatorIds" swaggertype:"array,integer"`
}

// itemBody takes formatId and hookId as numbers or numeric strings; 0 or "" clears them
type itemBody struct {
	Status            models.ItemStatus `json:"status"`
	FormatID          types.FlexUint64  `json:"formatId" swaggertype:"integer"`
	HookID            types.FlexUint64  `json:"hookId" swaggertype:"integer"`
	Script            string            `json:"script"`
	Notes             string            `json:"notes"`
	RequestedDuration int               `json:"requestedDuration" validate:"min=0"`
	VideoURL          string            `json:"videoUrl"`
	VideoName         string            `json:"videoName"`
}

func (b itemBody) input() services.BatchItemInput {
	return services.BatchItemInput{
		Status:            b.Status,
		FormatID:          b.FormatID.Ptr(),
		HookID:            b.HookID.Ptr(),
		Script:            b.Script,
		Notes:             b.Notes,
		RequestedDuration: b.RequestedDuration,
		VideoURL:          b.VideoURL,
		VideoName:         b.VideoName,
	}
}

type variationsBody struct {
	Count int  `json:"count"`
	Apply bool `json:"apply"`
}

// List handles GET /api/batches
// @Summary List batches
// @Description TRASHED batches are hidden unless requested through status or includeTrashed
// @Tags Batches
// @Produce json
// @Param brandId query int false "Brand"
// @Param status query string false "Comma-separated statuses"
// @Param batchType query string false "COPYCAT|NET_NEW|ITERATION"
// @Param q query string false "Name contains"
// @Param includeTrashed query bool false "Include trashed batches"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} services.PageResult[models.AdBatch]
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /batches [get]
func (h *BatchHandler) List(c *fiber.Ctx) error {
	filter := services.BatchFilter{
		BrandID:        middleware.BrandID(c),
		BatchType:      models.BatchType(c.Query("batchType")),
		Query:          c.Query("q"),
		IncludeTrashed: c.QueryBool("includeTrashed"),
	}
	for _, s := range parseList(c, "status") {
		status := models.BatchStatus(s)
		if !status.Valid() {
			return utils.ErrorResponse(c, "unknown status "+s, fiber.StatusBadRequest, "batches.list.validation")
		}
		filter.Statuses = append(filter.Statuses, status)
	}
	if filter.BatchType != "" && !filter.BatchType.Valid() {
		return utils.ErrorResponse(c, "unknown batchType "+string(filter.BatchType), fiber.StatusBadRequest, "batches.list.validation")
	}

	page, err := services.ListBatches(c.UserContext(), h.DB, filter, parsePage(c))
	if err != nil {
		return respond(c, err, "batches.list")
	}
	return c.JSON(page)
}

// Board handles GET /api/batches/board
// @Summary Batches grouped by status in pipeline order
// @Tags Batches
// @Produce json
// @Param brandId query int false "Brand"
// @Success 200 {array} services.BoardColumn
// @Router /batches/board [get]
func (h *BatchHandler) Board(c *fiber.Ctx) error {
	board, err := services.BatchBoard(c.UserContext(), h.DB, middleware.BrandID(c))
	if err != nil {
		return respond(c, err, "batches.board")
	}
	return c.JSON(board)
}

// Get handles GET /api/batches/:id
// @Summary Get a batch with items and progress
// @Tags Batches
// @Produce json
// @Param id path int true "Batch ID"
// @Success 200 {object} services.BatchDetail
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /batches/{id} [get]
func (h *BatchHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	batch, err := services.GetBatch(c.UserContext(), h.DB, id)
	if err != nil {
		return respond(c, err, "batches.get")
	}
	return c.JSON(batch)
}

// Create handles POST /api/batches
// @Summary Create a batch
// @Description COPYCAT needs an existing referenceAdId; ITERATION may name an existing referenceBatchId
// @Tags Batches
// @Accept json
// @Produce json
// @Param body body services.BatchInput true "Batch"
// @Success 201 {object} services.BatchDetail
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /batches [post]
func (h *BatchHandler) Create(c *fiber.Ctx) error {
	var body services.BatchInput
	if err := bind(c, &body); err != nil {
		return err
	}
	batch, err := services.CreateBatch(c.UserContext(), h.DB, body)
	if err != nil {
		return respond(c, err, "batches.create")
	}
	return utils.SuccessResponse(c, batch, fiber.StatusCreated)
}

// Update handles PUT /api/batches/:id
// @Summary Update a batch
// @Tags Batches
// @Accept json
// @Produce json
// @Param id path int true "Batch ID"
// @Param body body services.BatchInput true "Batch"
// @Success 200 {object} services.BatchDetail
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /batches/{id} [put]
func (h *BatchHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var body services.BatchInput
	if err := bind(c, &body); err != nil {
		return err
	}
	batch, err := services.UpdateBatch(c.UserContext(), h.DB, id, body)
	if err != nil {
		return respond(c, err, "batches.update")
	}
	return c.JSON(batch)
}

// SetStatus handles PUT /api/batches/:id/status
// @Summary Move a batch to any status
// @Description Entering LEARNING stamps launchedAt when it is unset
// @Tags Batches
// @Accept json
// @Produce json
// @Param id path int true "Batch ID"
// @Param body body statusBody true "Status"
// @Success 200 {object} services.BatchDetail
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /batches/{id}/status [put]
func (h *BatchHandler) SetStatus(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var body statusBody
	if err := bind(c, &body); err != nil {
		return err
	}
	batch, err := services.SetBatchStatus(c.UserContext(), h.DB, id, models.BatchStatus(body.Status))
	if err != nil {
		return respond(c, err, "batches.status")
	}
	return c.JSON(batch)
}

// Trash handles POST /api/batches/:id/trash
// @Summary Move a batch to the trash
// @Tags Batches
// @Produce json
// @Param id path int true "Batch ID"
// @Success 200 {object} services.BatchDetail
// @Router /batches/{id}/trash [post]
func (h *BatchHandler) Trash(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	batch, err := services.TrashBatch(c.UserContext(), h.DB, id)
	if err != nil {
		return respond(c, err, "batches.trash")
	}
	return c.JSON(batch)
}

// Restore handles POST /api/batches/:id/restore
// @Summary Restore a trashed batch to IDEATION
// @Tags Batches
// @Produce json
// @Param id path int true "Batch ID"
// @Success 200 {object} services.BatchDetail
// @Router /batches/{id}/restore [post]
func (h *BatchHandler) Restore(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	batch, err := services.RestoreBatch(c.UserContext(), h.DB, id)
	if err != nil {
		return respond(c, err, "batches.restore")
	}
	return c.JSON(batch)
}

// Delete handles DELETE /api/batches/:id
// @Summary Hard delete a batch and its items
// @Tags Batches
// @Produce json
// @Param id path int true "Batch ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /batches/{id} [delete]
func (h *BatchHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := services.DeleteBatch(c.UserContext(), h.DB, id); err != nil {
		return respond(c, err, "batches.delete")
	}
	return utils.MutationSuccessResponse(c, 1)
}

// Performance handles GET /api/batches/:id/performance
// @Summary Rollup of the Facebook ads linked to a batch
// @Tags Batches, Facebook
// @Produce json
// @Param id path int true "Batch ID"
// @Success 200 {object} services.Rollup
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /batches/{id}/performance [get]
func (h *BatchHandler) Performance(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	rollup, err := services.BatchPerformance(c.UserContext(), h.DB, id)
	if err != nil {
		return respond(c, err, "batches.performance")
	}
	return c.JSON(rollup)
}

// SetCreators handles PUT /api/batches/:id/creators
// @Summary Replace the creators assigned to a batch
// @Tags Batches
// @Accept json
// @Produce json
// @Param id path int true "Batch ID"
// @Param body body creatorsBody true "Creator ids"
// @Success 200 {object} services.BatchDetail
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /batches/{id}/creators [put]
func (h *BatchHandler) SetCreators(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var body creatorsBody
	if err := bind(c, &body); err != nil {
		return err
	}
	batch, err := services.SetBatchCreators(c.UserContext(), h.DB, id, types.Uint64s(body.CreatorIDs))
	if err != nil {
		return respond(c, err, "batches.creators")
	}
	return c.JSON(batch)
}

// Brief handles POST /api/batches/:id/brief
// @Summary Write the brief and creator brief of a batch
// @Tags Batches, AI
// @Produce json
// @Param id path int true "Batch ID"
// @Success 200 {object} services.BatchDetail
// @Failure 412 {object} utils.ErrorResponseStruct
// @Failure 502 {object} utils.ErrorResponseStruct
// @Router /batches/{id}/brief [post]
func (h *BatchHandler) Brief(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	batch, err := services.GenerateBrief(c.UserContext(), h.DB, h.Integrations.AI, id)
	if err != nil {
		return respond(c, err, "batches.brief")
	}
	return c.JSON(batch)
}

// Variations handles POST /api/batches/:id/variations
// @Summary Propose variations, optionally adding them as items
// @Tags Batches, AI
// @Accept json
// @Produce json
// @Param id path int true "Batch ID"
// @Param body body variationsBody false "count defaults to 3"
// @Success 200 {object} services.VariationResult
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 412 {object} utils.ErrorResponseStruct
// @Router /batches/{id}/variations [post]
func (h *BatchHandler) Variations(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	body := variationsBody{Count: 3}
	if len(c.Body()) > 0 {
		if err := bind(c, &body); err != nil {
			return err
		}
	}
	if c.QueryBool("apply") {
		body.Apply = true
	}
	result, err := services.GenerateVariations(c.UserContext(), h.DB, h.Integrations.AI, id, body.Count, body.Apply)
	if err != nil {
		return respond(c, err, "batches.variations")
	}
	return c.JSON(result)
}

// AddItem handles POST /api/batches/:id/items
// @Summary Add a variation under the next free letter
// @Tags Batch Items
// @Accept json
// @Produce json
// @Param id path int true "Batch ID"
// @Param body body itemBody false "Item"
// @Success 201 {object} models.BatchItem
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /batches/{id}/items [post]
func (h *BatchHandler) AddItem(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var body itemBody
	if len(c.Body()) > 0 {
		if err := bind(c, &body); err != nil {
			return err
		}
	}
	item, err := services.AddBatchItem(c.UserContext(), h.DB, id, body.input())
	if err != nil {
		return respond(c, err, "batchItems.create")
	}
	return utils.SuccessResponse(c, item, fiber.StatusCreated)
}

// UpdateItem handles PUT /api/batch-items/:id
// @Summary Update a batch item
// @Tags Batch Items
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param body body itemBody true "Item"
// @Success 200 {object} models.BatchItem
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /batch-items/{id} [put]
func (h *BatchHandler) UpdateItem(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var body itemBody
	if err := bind(c, &body); err != nil {
		return err
	}
	item, err := services.UpdateBatchItem(c.UserContext(), h.DB, id, body.input())
	if err != nil {
		return respond(c, err, "batchItems.update")
	}
	return c.JSON(item)
}

// SetItemStatus handles PUT /api/batch-items/:id/status
// @Summary Mark a batch item PENDING or DONE
// @Tags Batch Items
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param body body statusBody true "Status"
// @Success 200 {object} models.BatchItem
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /batch-items/{id}/status [put]
func (h *BatchHandler) SetItemStatus(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var body statusBody
	if err := bind(c, &body); err != nil {
		return err
	}
	item, err := services.SetItemStatus(c.UserContext(), h.DB, id, models.ItemStatus(body.Status))
	if err != nil {
		return respond(c, err, "batchItems.status")
	}
	return c.JSON(item)
}

// DeleteItem handles DELETE /api/batch-items/:id
// @Summary Delete a batch item, freeing its letter
// @Tags Batch Items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /batch-items/{id} [delete]
func (h *BatchHandler) DeleteItem(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := services.DeleteBatchItem(c.UserContext(), h.DB, id); err != nil {
		return respond(c, err, "batchItems.delete")
	}
	return utils.MutationSuccessResponse(c, 1)
}
