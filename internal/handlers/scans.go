// scans.go
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

// ScanHandler starts Drive scans and reports their jobs
type ScanHandler struct {
	*Deps
}

type scanBody struct {
	FolderID string `json:"folderId"`
}

// Start handles POST /api/brands/:id/scans
// @Summary Start a background scan of the brand's Drive
// @Tags Scans
// @Accept json
// @Produce json
// @Param id path int true "Brand ID"
// @Param body body scanBody false "Folder, defaults to the brand root"
// @Success 202 {object} map[string]string
// @Failure 412 {object} utils.ErrorResponseStruct
// @Router /brands/{id}/scans [post]
func (h *ScanHandler) Start(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var body scanBody
	if len(c.Body()) > 0 {
		if err := bind(c, &body); err != nil {
			return err
		}
	}
	job, err := h.Runner.Start(c.UserContext(), id, body.FolderID)
	if err != nil {
		return respond(c, err, "scans.start")
	}
	return utils.SuccessResponse(c, fiber.Map{"jobId": job.ID}, fiber.StatusAccepted)
}

// Get handles GET /api/scan-jobs/:id
// @Summary Get a scan job
// @Tags Scans
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} models.ScanJob
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /scan-jobs/{id} [get]
func (h *ScanHandler) Get(c *fiber.Ctx) error {
	job, err := services.GetScanJob(c.UserContext(), h.DB, c.Params("id"))
	if err != nil {
		return respond(c, err, "scans.get")
	}
	return c.JSON(job)
}

// List handles GET /api/scan-jobs
// @Summary Recent scan jobs, newest first
// @Tags Scans
// @Produce json
// @Param brandId query int false "Brand"
// @Success 200 {array} models.ScanJob
// @Router /scan-jobs [get]
func (h *ScanHandler) List(c *fiber.Ctx) error {
	jobs, err := services.ListScanJobs(c.UserContext(), h.DB, middleware.BrandID(c))
	if err != nil {
		return respond(c, err, "scans.list")
	}
	return c.JSON(jobs)
}
