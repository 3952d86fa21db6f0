// handlers_test.go
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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/swipefile/internal/config"
	"github.com/localnerve/swipefile/internal/logger"
	"github.com/localnerve/swipefile/internal/models"
	"github.com/localnerve/swipefile/internal/services"
	"github.com/localnerve/swipefile/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type rejectAll struct{}

func (rejectAll) ValidateSession(string, []string) (map[string]interface{}, error) {
	return nil, errors.New("no session")
}

type envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Ok      bool   `json:"ok"`
	URL     string `json:"url"`
	Type    string `json:"type"`
}

func setupApp(t *testing.T, mutate func(*Deps)) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	log := logger.Nop()
	runner := services.NewScanRunner(db, log, nil, 1)
	t.Cleanup(func() { _ = runner.Shutdown(context.Background()) })

	deps := &Deps{
		Config: &config.Config{DBType: "sqlite", DBDatabase: ":memory:"},
		DB:     db,
		Log:    log,
		Runner: runner,
	}
	if mutate != nil {
		mutate(deps)
	}

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	Register(app.Group("/api"), deps)
	app.Use(NotFound)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestBrandRoutes(t *testing.T) {
	app, _ := setupApp(t, nil)

	resp := doJSON(t, app, http.MethodPost, "/api/brands", map[string]interface{}{"name": "Acme", "breakEvenRoas": 1.8})
	testutil.AssertStatus(t, resp, fiber.StatusCreated)
	var brand models.Brand
	testutil.ParseJSON(t, resp, &brand)
	assert.Equal(t, "Acme", brand.Name)

	resp = doJSON(t, app, http.MethodPost, "/api/brands", map[string]interface{}{"name": "Acme"})
	testutil.AssertStatus(t, resp, fiber.StatusConflict)

	resp = doJSON(t, app, http.MethodPost, "/api/brands", map[string]interface{}{})
	testutil.AssertStatus(t, resp, fiber.StatusBadRequest)
	var env envelope
	testutil.ParseJSON(t, resp, &env)
	assert.False(t, env.Ok)
	assert.Equal(t, "validation.input", env.Type)
	assert.Equal(t, "/api/brands", env.URL)

	resp = doJSON(t, app, http.MethodGet, "/api/brands", nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	var brands []models.Brand
	testutil.ParseJSON(t, resp, &brands)
	assert.Len(t, brands, 1)

	resp = doJSON(t, app, http.MethodGet, "/api/brands/999", nil)
	testutil.AssertStatus(t, resp, fiber.StatusNotFound)

	resp = doJSON(t, app, http.MethodGet, "/api/brands/abc", nil)
	testutil.AssertStatus(t, resp, fiber.StatusBadRequest)
}

func TestIntegrationRoutesWithoutCredentials(t *testing.T) {
	app, db := setupApp(t, nil)
	brand := testutil.CreateBrand(t, db, "Acme")
	angle := testutil.CreateAngle(t, db, "Sleep")
	ad := testutil.CreateAd(t, db, "900", nil)
	batch := testutil.CreateBatch(t, db, "B", models.BatchTypeNetNew, angle.ID, nil)

	targets := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/api/brands/" + itoa(brand.ID) + "/integrations/google/auth-url"},
		{http.MethodPost, "/api/brands/" + itoa(brand.ID) + "/scans"},
		{http.MethodPost, "/api/brands/" + itoa(brand.ID) + "/facebook/sync"},
		{http.MethodGet, "/api/brands/" + itoa(brand.ID) + "/drive/files"},
		{http.MethodPost, "/api/ads/" + itoa(ad.ID) + "/analyze"},
		{http.MethodPost, "/api/angles/" + itoa(angle.ID) + "/concept-doc"},
		{http.MethodPost, "/api/batches/" + itoa(batch.ID) + "/brief"},
	}
	for _, tc := range targets {
		t.Run(tc.target, func(t *testing.T) {
			resp := doJSON(t, app, tc.method, tc.target, nil)
			testutil.AssertStatus(t, resp, fiber.StatusPreconditionFailed)
		})
	}
}

func TestTaxonomyQuickAdd(t *testing.T) {
	app, _ := setupApp(t, nil)

	resp := doJSON(t, app, http.MethodPost, "/api/hooks", map[string]string{"name": "Did you know"})
	testutil.AssertStatus(t, resp, fiber.StatusCreated)
	var hook models.AdHook
	testutil.ParseJSON(t, resp, &hook)

	resp = doJSON(t, app, http.MethodPost, "/api/hooks", map[string]string{"name": "Did you know"})
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	var again models.AdHook
	testutil.ParseJSON(t, resp, &again)
	assert.Equal(t, hook.ID, again.ID)

	resp = doJSON(t, app, http.MethodGet, "/api/hooks?q=know", nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	var hooks []models.AdHook
	testutil.ParseJSON(t, resp, &hooks)
	assert.Len(t, hooks, 1)
}

func TestAdRoutes(t *testing.T) {
	app, _ := setupApp(t, nil)

	resp := doJSON(t, app, http.MethodPost, "/api/ads", map[string]string{"postId": "4242", "headline": "Sleep better"})
	testutil.AssertStatus(t, resp, fiber.StatusCreated)
	var ad models.Ad
	testutil.ParseJSON(t, resp, &ad)

	resp = doJSON(t, app, http.MethodPost, "/api/ads", map[string]string{"postId": "4242"})
	testutil.AssertStatus(t, resp, fiber.StatusConflict)

	resp = doJSON(t, app, http.MethodGet, "/api/ads?q=sleep&sort=priority", nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	var page services.PageResult[models.Ad]
	testutil.ParseJSON(t, resp, &page)
	assert.EqualValues(t, 1, page.Total)

	resp = doJSON(t, app, http.MethodGet, "/api/ads/"+itoa(ad.ID)+"/snapshots", nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)
}

func TestImportAdsMultipart(t *testing.T) {
	app, _ := setupApp(t, nil)

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	require.NoError(t, form.WriteField("batchName", "weekly"))
	part, err := form.CreateFormFile("file", "export.html")
	require.NoError(t, err)
	_, err = part.Write([]byte(`<div class="ad-card"><a href="https://www.facebook.com/acme/posts/31337">post</a>` +
		`<div class="ad-headline">Stay cool</div></div>`))
	require.NoError(t, err)
	require.NoError(t, form.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/ads/import", &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	testutil.AssertStatus(t, resp, fiber.StatusOK)

	var result services.ImportResult
	testutil.ParseJSON(t, resp, &result)
	assert.Equal(t, 1, result.TotalFound)
	assert.Equal(t, 1, result.Processed)
	assert.NotZero(t, result.ImportBatchID)

	resp = doJSON(t, app, http.MethodPost, "/api/ads/import", nil)
	testutil.AssertStatus(t, resp, fiber.StatusBadRequest)
}

func TestBatchRoutes(t *testing.T) {
	app, db := setupApp(t, nil)
	angle := testutil.CreateAngle(t, db, "Back pain")

	resp := doJSON(t, app, http.MethodPost, "/api/batches", map[string]interface{}{
		"name": "Copy the winner", "angleId": angle.ID, "batchType": "COPYCAT",
	})
	testutil.AssertStatus(t, resp, fiber.StatusBadRequest)

	resp = doJSON(t, app, http.MethodPost, "/api/batches", map[string]interface{}{"name": "Fresh", "angleId": angle.ID})
	testutil.AssertStatus(t, resp, fiber.StatusCreated)
	var batch services.BatchDetail
	testutil.ParseJSON(t, resp, &batch)
	assert.Equal(t, models.StatusIdeation, batch.Status)

	id := itoa(batch.ID)
	resp = doJSON(t, app, http.MethodPost, "/api/batches/"+id+"/items", nil)
	testutil.AssertStatus(t, resp, fiber.StatusCreated)
	var item models.BatchItem
	testutil.ParseJSON(t, resp, &item)
	assert.Equal(t, "A", item.VariationIndex)

	resp = doJSON(t, app, http.MethodPut, "/api/batch-items/"+itoa(item.ID)+"/status", map[string]string{"status": "DONE"})
	testutil.AssertStatus(t, resp, fiber.StatusOK)

	resp = doJSON(t, app, http.MethodPut, "/api/batches/"+id+"/status", map[string]string{"status": "LEARNING"})
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	testutil.ParseJSON(t, resp, &batch)
	assert.NotNil(t, batch.LaunchedAt)
	assert.Equal(t, 1, batch.ItemsDone)

	resp = doJSON(t, app, http.MethodPut, "/api/batches/"+id+"/status", map[string]string{"status": "SHIPPED"})
	testutil.AssertStatus(t, resp, fiber.StatusBadRequest)

	resp = doJSON(t, app, http.MethodGet, "/api/batches?status=LEARNING,REVIEW", nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	var page services.PageResult[models.AdBatch]
	testutil.ParseJSON(t, resp, &page)
	assert.EqualValues(t, 1, page.Total)

	resp = doJSON(t, app, http.MethodGet, "/api/batches?status=BOGUS", nil)
	testutil.AssertStatus(t, resp, fiber.StatusBadRequest)

	resp = doJSON(t, app, http.MethodGet, "/api/batches/board", nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	var board []services.BoardColumn
	testutil.ParseJSON(t, resp, &board)
	assert.Equal(t, models.StatusIdeation, board[0].Status)
}

func TestCreativeViews(t *testing.T) {
	app, db := setupApp(t, nil)
	brand := testutil.CreateBrand(t, db, "Acme")
	testutil.CreateCreative(t, db, brand.ID, "a.mp4", "CID-1", "Raw")
	testutil.CreateCreative(t, db, brand.ID, "b.mp4", "CID-1")

	resp := doJSON(t, app, http.MethodGet, "/api/creatives?view=deck&brandId="+itoa(brand.ID), nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	var deck services.Deck
	testutil.ParseJSON(t, resp, &deck)
	require.Len(t, deck.Groups, 1)

	resp = doJSON(t, app, http.MethodGet, "/api/creatives?tags=CID-1,Raw", nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	var page services.PageResult[models.Creative]
	testutil.ParseJSON(t, resp, &page)
	assert.EqualValues(t, 1, page.Total)

	resp = doJSON(t, app, http.MethodGet, "/api/creatives?view=grid", nil)
	testutil.AssertStatus(t, resp, fiber.StatusBadRequest)

	resp = doJSON(t, app, http.MethodPost, "/api/tags/apply", map[string]interface{}{"tags": []string{}, "creativeIds": []uint64{1}})
	testutil.AssertStatus(t, resp, fiber.StatusBadRequest)
}

func TestIDBodiesAcceptStringsAndLists(t *testing.T) {
	app, db := setupApp(t, nil)
	brand := testutil.CreateBrand(t, db, "Acme")
	first := testutil.CreateCreative(t, db, brand.ID, "a.mp4")
	second := testutil.CreateCreative(t, db, brand.ID, "b.mp4")

	resp := doJSON(t, app, http.MethodPost, "/api/tags/apply", map[string]interface{}{
		"tags": []string{"Keeper"}, "creativeIds": itoa(first.ID) + "," + itoa(second.ID),
	})
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	var result services.TagChangeResult
	testutil.ParseJSON(t, resp, &result)
	assert.Equal(t, 2, result.Creatives)

	resp = doJSON(t, app, http.MethodPost, "/api/tags/remove", map[string]interface{}{
		"tags": []string{"Keeper"}, "creativeIds": itoa(first.ID),
	})
	testutil.AssertStatus(t, resp, fiber.StatusOK)

	resp = doJSON(t, app, http.MethodPost, "/api/tags/apply", map[string]interface{}{"tags": []string{"Keeper"}, "creativeIds": "0"})
	testutil.AssertStatus(t, resp, fiber.StatusBadRequest)

	angle := testutil.CreateAngle(t, db, "Back pain")
	hook := testutil.CreateHook(t, db, "Pattern interrupt")
	batch := testutil.CreateBatch(t, db, "Fresh", models.BatchTypeNetNew, angle.ID, nil)

	resp = doJSON(t, app, http.MethodPost, "/api/batches/"+itoa(batch.ID)+"/items", map[string]interface{}{"hookId": itoa(hook.ID), "formatId": ""})
	testutil.AssertStatus(t, resp, fiber.StatusCreated)
	var item models.BatchItem
	testutil.ParseJSON(t, resp, &item)
	require.NotNil(t, item.HookID)
	assert.Equal(t, hook.ID, *item.HookID)
	assert.Nil(t, item.FormatID)

	resp = doJSON(t, app, http.MethodPut, "/api/batch-items/"+itoa(item.ID), map[string]interface{}{"hookId": 0, "script": "Open on the pillow"})
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	testutil.ParseJSON(t, resp, &item)
	assert.Nil(t, item.HookID)

	creator := testutil.CreateCreator(t, db, brand.ID, "Dana", "dana@example.com")
	resp = doJSON(t, app, http.MethodPut, "/api/batches/"+itoa(batch.ID)+"/creators", map[string]interface{}{"creatorIds": itoa(creator.ID)})
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	var detail services.BatchDetail
	testutil.ParseJSON(t, resp, &detail)
	require.Len(t, detail.Creators, 1)
	assert.Equal(t, creator.ID, detail.Creators[0].ID)

	resp = doJSON(t, app, http.MethodPut, "/api/batches/"+itoa(batch.ID)+"/creators", map[string]interface{}{"creatorIds": "x"})
	testutil.AssertStatus(t, resp, fiber.StatusBadRequest)
}

func TestAdminGuardsDestructiveRoutes(t *testing.T) {
	app, db := setupApp(t, func(d *Deps) { d.Admin = rejectAll{} })
	brand := testutil.CreateBrand(t, db, "Acme")

	resp := doJSON(t, app, http.MethodDelete, "/api/brands/"+itoa(brand.ID), nil)
	testutil.AssertStatus(t, resp, fiber.StatusForbidden)

	resp = doJSON(t, app, http.MethodGet, "/api/brands/"+itoa(brand.ID), nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)
}

func TestHealthAndFallback(t *testing.T) {
	app, _ := setupApp(t, nil)

	resp := doJSON(t, app, http.MethodGet, "/api/health", nil)
	testutil.AssertStatus(t, resp, fiber.StatusOK)
	assert.Equal(t, "1.0.0", resp.Header.Get("X-Api-Version"))
	var health services.HealthCheckResult
	testutil.ParseJSON(t, resp, &health)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "disabled", health.Authorizer)

	resp = doJSON(t, app, http.MethodGet, "/nowhere", nil)
	testutil.AssertStatus(t, resp, fiber.StatusNotFound)
}

func itoa(id uint64) string {
	return strconv.FormatUint(id, 10)
}
