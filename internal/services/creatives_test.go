package services

import (
	"context"
	"testing"

	"github.com/localnerve/swipefile/internal/models"
	"github.com/localnerve/swipefile/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tagged(labels ...string) []models.Tag {
	tags := make([]models.Tag, 0, len(labels))
	for _, l := range labels {
		tags = append(tags, models.ParseTag(l))
	}
	return tags
}

func TestGroupKeyPrecedence(t *testing.T) {
	tag, ok := GroupKey(tagged("Hooks", "L1:Raw", "CID-0042", "CID-0007"))
	require.True(t, ok)
	assert.Equal(t, models.TagGroupID, tag.Kind)
	assert.Equal(t, "CID-0007", tag.Label)

	tag, ok = GroupKey(tagged("L1:Zeta", "L1:Alpha", "BUNCH: b1"))
	require.True(t, ok)
	assert.Equal(t, "L1:Alpha", tag.LegacyName())

	tag, ok = GroupKey(tagged("C-123456"))
	require.True(t, ok)
	assert.Equal(t, models.TagGroupID, tag.Kind)

	_, ok = GroupKey(tagged("Hooks", "AI:generated"))
	assert.False(t, ok)
}

func TestBuildDeckKeepsFirstAppearance(t *testing.T) {
	creatives := []models.Creative{
		{ID: 1, Tags: tagged("L1:Raw")},
		{ID: 2, Tags: tagged("CID-0042", "L1:Raw")},
		{ID: 3, Tags: tagged("plain")},
		{ID: 4, Tags: tagged("L1:Raw")},
		{ID: 5, Tags: tagged("CID-0042")},
	}
	deck := BuildDeck(creatives)

	require.Len(t, deck.Groups, 2)
	assert.Equal(t, "L1:Raw", deck.Groups[0].Key)
	assert.Equal(t, "Raw", deck.Groups[0].Label)
	assert.Len(t, deck.Groups[0].Creatives, 2)
	assert.Equal(t, "CID-0042", deck.Groups[1].Key)
	assert.Equal(t, []uint64{2, 5}, []uint64{deck.Groups[1].Creatives[0].ID, deck.Groups[1].Creatives[1].ID})
	require.Len(t, deck.Ungrouped, 1)
	assert.EqualValues(t, 3, deck.Ungrouped[0].ID)
}

func TestApplyAndRemoveTags(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	brand := testutil.CreateBrand(t, db, "Acme")
	a := testutil.CreateCreative(t, db, brand.ID, "a.mp4", "Hooks")
	b := testutil.CreateCreative(t, db, brand.ID, "b.mp4")

	result, err := ApplyTags(ctx, db, TagChange{Tags: []string{"CID-0042", "BUNCH: Summer", "Hooks", "CID-0042"}, CreativeIDs: []uint64{a.ID, b.ID}})
	require.NoError(t, err)
	assert.Len(t, result.Tags, 3)
	assert.Equal(t, 2, result.Creatives)

	got, err := GetCreative(ctx, db, b.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"CID-0042", "BUNCH:Summer", "Hooks"}, TagNames(got.Tags))

	// applying twice is idempotent
	_, err = ApplyTags(ctx, db, TagChange{Tags: []string{"Hooks"}, CreativeIDs: []uint64{a.ID}})
	require.NoError(t, err)
	got, err = GetCreative(ctx, db, a.ID)
	require.NoError(t, err)
	assert.Len(t, got.Tags, 3)

	_, err = ApplyTags(ctx, db, TagChange{Tags: []string{"x"}, CreativeIDs: []uint64{a.ID, 999}})
	assert.ErrorIs(t, err, ErrNotFound)
	tags, err := ListTags(ctx, db, "")
	require.NoError(t, err)
	assert.Len(t, tags, 3)

	removed, err := RemoveTags(ctx, db, TagChange{Tags: []string{"Hooks", "never-existed"}, CreativeIDs: []uint64{a.ID}})
	require.NoError(t, err)
	assert.Len(t, removed.Tags, 1)
	got, err = GetCreative(ctx, db, a.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"CID-0042", "BUNCH:Summer"}, TagNames(got.Tags))

	groupIDs, err := ListTags(ctx, db, models.TagGroupID)
	require.NoError(t, err)
	require.Len(t, groupIDs, 1)
	assert.Equal(t, "CID-0042", groupIDs[0].Name)
}

func TestListCreativesRequiresEveryTag(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	brand := testutil.CreateBrand(t, db, "Acme")
	testutil.CreateCreative(t, db, brand.ID, "both.mp4", "Hooks", "L1:Raw")
	testutil.CreateCreative(t, db, brand.ID, "hooks.mp4", "Hooks")
	testutil.CreateCreative(t, db, brand.ID, "none.mp4")

	page, err := ListCreatives(ctx, db, CreativeFilter{BrandID: brand.ID, Tags: []string{"Hooks", "L1:Raw"}}, Page{})
	require.NoError(t, err)
	require.EqualValues(t, 1, page.Total)
	assert.Equal(t, "both.mp4", page.Items[0].Name)

	page, err = ListCreatives(ctx, db, CreativeFilter{BrandID: brand.ID, Query: "HOOK"}, Page{Limit: 1})
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.Total)
	assert.Len(t, page.Items, 1)

	deck, err := CreativeDeck(ctx, db, CreativeFilter{BrandID: brand.ID})
	require.NoError(t, err)
	require.Len(t, deck.Groups, 1)
	assert.Equal(t, "L1:Raw", deck.Groups[0].Key)
	assert.Len(t, deck.Ungrouped, 2)
}

func TestUpdateCreativeReplacesTags(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	brand := testutil.CreateBrand(t, db, "Acme")
	other := testutil.CreateBrand(t, db, "Other")
	creative := testutil.CreateCreative(t, db, brand.ID, "a.mp4", "Hooks", "L1:Raw")
	outsider := testutil.CreateCreator(t, db, other.ID, "Lee", "lee@example.com")

	tags := []string{"AI:broll"}
	got, err := UpdateCreative(ctx, db, creative.ID, CreativeInput{Name: "renamed.mp4", Tags: &tags})
	require.NoError(t, err)
	assert.Equal(t, "renamed.mp4", got.Name)
	assert.Equal(t, []string{"AI:broll"}, TagNames(got.Tags))

	got, err = UpdateCreative(ctx, db, creative.ID, CreativeInput{Name: "renamed.mp4"})
	require.NoError(t, err)
	assert.Len(t, got.Tags, 1)

	_, err = UpdateCreative(ctx, db, creative.ID, CreativeInput{Name: "x", CreatorID: &outsider.ID})
	assert.ErrorIs(t, err, ErrValidation)

	require.NoError(t, DeleteCreative(ctx, db, creative.ID))
	_, err = GetCreative(ctx, db, creative.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
