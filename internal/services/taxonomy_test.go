package services

import (
	"context"
	"testing"

	"github.com/localnerve/swipefile/internal/models"
	"github.com/localnerve/swipefile/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuickAddTaxonFindsOrCreates(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()

	hook, created, err := QuickAddTaxon[models.AdHook](ctx, db, TaxonInput{Name: "  Whisper ASMR  ", Category: "Audio"})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "Whisper ASMR", hook.Name)

	again, created, err := QuickAddTaxon[models.AdHook](ctx, db, TaxonInput{Name: "Whisper ASMR"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, hook.ID, again.ID)

	_, _, err = QuickAddTaxon[models.AdHook](ctx, db, TaxonInput{Name: " "})
	assert.ErrorIs(t, err, ErrValidation)

	hooks, err := ListTaxa[models.AdHook](ctx, db, "whisper")
	require.NoError(t, err)
	assert.Len(t, hooks, 1)
}

func TestUpdateTaxonDuplicateName(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	a := testutil.CreateHook(t, db, "First")
	testutil.CreateHook(t, db, "Second")

	_, err := UpdateTaxon[models.AdHook](ctx, db, a.ID, TaxonInput{Name: "Second"})
	assert.ErrorIs(t, err, ErrConflict)

	renamed, err := UpdateTaxon[models.AdHook](ctx, db, a.ID, TaxonInput{Name: "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", renamed.Name)
}

func TestDeleteTaxonNullsOptionalReferences(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	hook := testutil.CreateHook(t, db, "Doomed hook")
	ad := testutil.CreateAd(t, db, "2001", &hook.ID)

	require.NoError(t, DeleteTaxon[models.AdHook](ctx, db, hook.ID))

	require.NoError(t, db.First(ad, ad.ID).Error)
	assert.Nil(t, ad.HookID)
	_, err := GetTaxon[models.AdHook](ctx, db, hook.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteTaxonRefusedByAngle(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	angle := testutil.CreateAngle(t, db, "Neck pain")

	err := DeleteTaxon[models.AdDesire](ctx, db, angle.DesireID)
	assert.ErrorIs(t, err, ErrConflict)

	_, err = GetTaxon[models.AdDesire](ctx, db, angle.DesireID)
	assert.NoError(t, err)
}

func TestAngleLifecycle(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	seed := testutil.CreateAngle(t, db, "Seed")

	in := AngleInput{
		Name:             "Busy parents",
		DesireID:         seed.DesireID,
		ThemeID:          seed.ThemeID,
		DemographicID:    seed.DemographicID,
		AwarenessLevelID: seed.AwarenessLevelID,
	}
	angle, err := CreateAngle(ctx, db, in)
	require.NoError(t, err)
	require.NotNil(t, angle.Desire)

	bad := in
	bad.ThemeID = 9999
	_, err = CreateAngle(ctx, db, bad)
	assert.ErrorIs(t, err, ErrValidation)

	bad = in
	bad.DemographicID = 0
	_, err = UpdateAngle(ctx, db, angle.ID, bad)
	assert.ErrorIs(t, err, ErrValidation)

	testutil.CreateBatch(t, db, "Uses angle", models.BatchTypeNetNew, angle.ID, nil)
	assert.ErrorIs(t, DeleteAngle(ctx, db, angle.ID), ErrConflict)
	assert.NoError(t, DeleteAngle(ctx, db, seed.ID))
}
