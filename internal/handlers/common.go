// common.go
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
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/swipefile/internal/services"
	"github.com/localnerve/swipefile/internal/types"
	"github.com/localnerve/swipefile/internal/utils"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// parseList extracts the values of key from the query string,
// supporting both repeated keys and comma-separated values.
func parseList(c *fiber.Ctx, key string) []string {
	seen := make(map[string]struct{})
	var values []string

	args := c.Context().QueryArgs()
	for k, value := range args.All() {
		if string(k) != key {
			continue
		}
		for _, v := range strings.Split(string(value), ",") {
			v = strings.TrimSpace(v)
			if v == "" {
				continue
			}
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			values = append(values, v)
		}
	}

	return values
}

// paramID parses a positive numeric route parameter
func paramID(c *fiber.Ctx, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || id == 0 {
		return 0, types.NewError(fiber.StatusBadRequest, "validation.param", "invalid %s %q", name, c.Params(name))
	}
	return id, nil
}

// queryID parses an optional numeric query parameter; absent or malformed is zero
func queryID(c *fiber.Ctx, key string) uint64 {
	id, err := strconv.ParseUint(c.Query(key), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

func parsePage(c *fiber.Ctx) services.Page {
	return services.Page{Page: c.QueryInt("page", 1), Limit: c.QueryInt("limit", 0)}.Normalize()
}

// bind parses the JSON body into out and runs its validate tags
func bind(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return types.NewError(fiber.StatusBadRequest, "validation.input", "Invalid input: %v", err)
	}
	if err := validate.Struct(out); err != nil {
		return types.NewError(fiber.StatusBadRequest, "validation.input", "%s", validationMessage(err))
	}
	return nil
}

func validationMessage(err error) string {
	var fields validator.ValidationErrors
	if !errors.As(err, &fields) {
		return err.Error()
	}
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, strings.ToLower(f.Field()[:1])+f.Field()[1:]+" failed "+f.Tag())
	}
	return strings.Join(parts, "; ")
}

// respond maps a service error onto the error envelope
func respond(c *fiber.Ctx, err error, errorType string) error {
	var custom *types.CustomError
	switch {
	case errors.As(err, &custom):
		return utils.ErrorResponse(c, custom.Message, custom.Code, custom.Type)
	case errors.Is(err, services.ErrValidation):
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, errorType+".validation")
	case errors.Is(err, services.ErrNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, services.ErrConflict):
		return utils.ErrorResponse(c, err.Error(), fiber.StatusConflict, errorType+".conflict")
	case errors.Is(err, services.ErrNotConnected):
		return utils.ErrorResponse(c, err.Error(), fiber.StatusPreconditionFailed, errorType+".integration")
	case errors.Is(err, services.ErrUpstream):
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadGateway, errorType+".upstream")
	}
	return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, errorType)
}

// ErrorHandler renders errors escaping the handlers in the standard envelope
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return utils.ErrorResponse(c, fe.Message, fe.Code, "http")
	}
	return respond(c, err, "unknown")
}

// NotFound answers routes nothing else matched
func NotFound(c *fiber.Ctx) error {
	return utils.NotFoundResponse(c, "[404] Resource Not Found")
}

// formID parses an optional numeric multipart field
func formID(c *fiber.Ctx, key string) uint64 {
	id, err := strconv.ParseUint(strings.TrimSpace(c.FormValue(key)), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
