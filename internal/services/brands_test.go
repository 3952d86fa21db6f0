package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/localnerve/swipefile/internal/models"
	"github.com/localnerve/swipefile/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrandCredentialsNeverSerialize(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()

	brand, err := CreateBrand(ctx, db, BrandInput{Name: " Acme ", BreakEvenROAS: 1.8})
	require.NoError(t, err)
	assert.Equal(t, "Acme", brand.Name)
	assert.False(t, brand.FacebookConnected)

	_, err = CreateBrand(ctx, db, BrandInput{Name: "Acme"})
	assert.ErrorIs(t, err, ErrConflict)

	brand, err = SetFacebookCredentials(ctx, db, brand.ID, FacebookCredentials{AccessToken: "EAAB-secret", AdAccountID: "act_123"})
	require.NoError(t, err)
	assert.True(t, brand.FacebookConnected)
	assert.Equal(t, "123", brand.FacebookAdAccountID)

	body, err := json.Marshal(brand)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "EAAB-secret")
	assert.Contains(t, string(body), `"facebookConnected":true`)

	// updating the profile keeps the credentials
	brand, err = UpdateBrand(ctx, db, brand.ID, BrandInput{Name: "Acme", BreakEvenROAS: 2})
	require.NoError(t, err)
	assert.True(t, brand.FacebookConnected)
	assert.Equal(t, 2.0, brand.BreakEvenROAS)

	_, err = UpdateBrand(ctx, db, brand.ID, BrandInput{Name: "Acme", BreakEvenROAS: -1})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGoogleConnection(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	brand := testutil.CreateBrand(t, db, "Acme")
	drive := newFakeDrive()
	drive.add("root", folder("raw", "Raw"))
	google := &fakeGoogle{drive: drive}

	url, err := GoogleAuthURL(ctx, db, google, brand.ID)
	require.NoError(t, err)
	assert.Contains(t, url, "state=")

	_, err = ListDriveFolder(ctx, db, google, brand.ID, "")
	assert.ErrorIs(t, err, ErrNotConnected)

	_, err = ExchangeGoogleCode(ctx, db, google, brand.ID, GoogleExchange{Code: "bad"})
	assert.ErrorIs(t, err, ErrUpstream)

	got, err := ExchangeGoogleCode(ctx, db, google, brand.ID, GoogleExchange{Code: "ok", RootFolderID: "root"})
	require.NoError(t, err)
	assert.True(t, got.GoogleConnected)
	assert.Equal(t, "root", got.GoogleRootFolderID)

	files, err := ListDriveFolder(ctx, db, google, brand.ID, "")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.True(t, files[0].IsFolder())

	files, err = ListDriveFolder(ctx, db, google, brand.ID, "empty")
	require.NoError(t, err)
	assert.NotNil(t, files)
	assert.Empty(t, files)

	_, err = GoogleAuthURL(ctx, db, nil, brand.ID)
	assert.ErrorIs(t, err, ErrNotConnected)
}

func TestDeleteBrandCascades(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	brand := testutil.CreateBrand(t, db, "Acme")
	keep := testutil.CreateBrand(t, db, "Keep")
	angle := testutil.CreateAngle(t, db, "Neck pain")
	require.NoError(t, db.Model(angle).Update("brand_id", brand.ID).Error)
	ad := testutil.CreateAd(t, db, "4001", nil)
	require.NoError(t, db.Model(ad).Update("brand_id", brand.ID).Error)

	batch := testutil.CreateBatch(t, db, "Owned", models.BatchTypeNetNew, angle.ID, nil)
	require.NoError(t, db.Model(batch).Update("brand_id", brand.ID).Error)
	_, err := AddBatchItem(ctx, db, batch.ID, BatchItemInput{})
	require.NoError(t, err)
	creator := testutil.CreateCreator(t, db, brand.ID, "Sam", "sam@example.com")
	_, err = SetBatchCreators(ctx, db, batch.ID, []uint64{creator.ID})
	require.NoError(t, err)
	testutil.CreateCreative(t, db, brand.ID, "a.mp4", "Hooks")
	kept := testutil.CreateCreative(t, db, keep.ID, "b.mp4", "Hooks")
	require.NoError(t, db.Create(&models.FacebookAd{ID: "f1", BrandID: brand.ID, BatchID: &batch.ID}).Error)
	require.NoError(t, db.Create(&models.ScanJob{ID: "00000000-0000-0000-0000-00000000000a", BrandID: brand.ID, FolderID: "root", Status: models.ScanCompleted}).Error)

	require.NoError(t, DeleteBrand(ctx, db, brand.ID))

	for _, model := range []any{&models.AdBatch{}, &models.Creator{}, &models.FacebookAd{}, &models.ScanJob{}} {
		var count int64
		require.NoError(t, db.Model(model).Where("brand_id = ?", brand.ID).Count(&count).Error)
		assert.Zero(t, count, "%T", model)
	}
	var items int64
	require.NoError(t, db.Model(&models.BatchItem{}).Count(&items).Error)
	assert.Zero(t, items)

	require.NoError(t, db.First(ad, ad.ID).Error)
	assert.Nil(t, ad.BrandID)
	require.NoError(t, db.First(angle, angle.ID).Error)
	assert.Nil(t, angle.BrandID)

	got, err := GetCreative(ctx, db, kept.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Hooks"}, TagNames(got.Tags))

	_, err = GetBrand(ctx, db, brand.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
