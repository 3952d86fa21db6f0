package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/localnerve/swipefile/internal/models"
	"github.com/localnerve/swipefile/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAIRequiresGenerator(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()

	_, err := GenerateConceptDoc(ctx, db, nil, 1)
	assert.ErrorIs(t, err, ErrNotConnected)
	_, err = GenerateBrief(ctx, db, nil, 1)
	assert.ErrorIs(t, err, ErrNotConnected)
	_, err = GenerateVariations(ctx, db, nil, 1, 3, false)
	assert.ErrorIs(t, err, ErrNotConnected)
	_, err = AnalyzeAd(ctx, db, nil, nil, 1)
	assert.ErrorIs(t, err, ErrNotConnected)
}

func TestGenerateConceptDoc(t *testing.T) {
	db := testutil.NewDB(t)
	angle := testutil.CreateAngle(t, db, "Busy parents")
	ai := &fakeGenerator{text: "Concept: sleep more"}

	got, err := GenerateConceptDoc(context.Background(), db, ai, angle.ID)
	require.NoError(t, err)
	assert.Equal(t, "Concept: sleep more", got.ConceptDoc)
	require.Len(t, ai.prompts, 1)
	assert.Contains(t, ai.prompts[0], "Angle: Busy parents")
	assert.Contains(t, ai.prompts[0], "Desire: ")
}

func TestGenerateBrief(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	angle := testutil.CreateAngle(t, db, "Neck pain")
	batch := testutil.CreateBatch(t, db, "Brief me", models.BatchTypeNetNew, angle.ID, nil)

	ai := &fakeGenerator{json: `{"brief": "Cut fast", "creatorBrief": "Film in bed"}`}
	detail, err := GenerateBrief(ctx, db, ai, batch.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cut fast", detail.Brief)
	assert.Equal(t, "Film in bed", detail.CreatorBrief)

	ai.json = `{"brief": ""}`
	_, err = GenerateBrief(ctx, db, ai, batch.ID)
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestGenerateVariationsApply(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	angle := testutil.CreateAngle(t, db, "Neck pain")
	batch := testutil.CreateBatch(t, db, "Vary", models.BatchTypeNetNew, angle.ID, nil)
	ai := &fakeGenerator{json: `{"variations": [
		{"hook": "Wake up without pain", "script": "s1", "notes": "n1", "requestedDuration": 30},
		{"hook": "", "script": "s2", "requestedDuration": -5},
		{"hook": "Extra", "script": "s3"}
	]}`}

	result, err := GenerateVariations(ctx, db, ai, batch.ID, 2, false)
	require.NoError(t, err)
	assert.Len(t, result.Variations, 2)
	assert.Empty(t, result.Items)

	detail, err := GetBatch(ctx, db, batch.ID)
	require.NoError(t, err)
	var stored []VariationProposal
	require.NoError(t, detail.AIVariations.Decode(&stored))
	assert.Len(t, stored, 2)
	assert.Zero(t, detail.ItemsTotal)

	result, err = GenerateVariations(ctx, db, ai, batch.ID, 2, true)
	require.NoError(t, err)
	require.Len(t, result.Items, 2)
	assert.Equal(t, "A", result.Items[0].VariationIndex)
	assert.Equal(t, "B", result.Items[1].VariationIndex)
	require.NotNil(t, result.Items[0].Hook)
	assert.Equal(t, "Wake up without pain", result.Items[0].Hook.Name)
	assert.Nil(t, result.Items[1].HookID)
	assert.Zero(t, result.Items[1].RequestedDuration)

	_, err = GenerateVariations(ctx, db, ai, batch.ID, 0, false)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAnalyzeAd(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "video/mp4")
		_, _ = w.Write([]byte("fake video bytes"))
	}))
	defer server.Close()

	ad := testutil.CreateAd(t, db, "3001", nil)
	require.NoError(t, db.Model(ad).Update("video_url", server.URL+"/clip.mp4").Error)
	ai := &fakeGenerator{text: "Promise: pain free mornings", transcript: "I used to wake up sore"}

	got, err := AnalyzeAd(ctx, db, ai, server.Client(), ad.ID)
	require.NoError(t, err)
	assert.Equal(t, "I used to wake up sore", got.Transcript)
	assert.Equal(t, "Promise: pain free mornings", got.MainMessaging)
	assert.Equal(t, "fake video bytes", string(ai.heard))
	require.Len(t, ai.prompts, 1)
	assert.Contains(t, ai.prompts[0], "Transcript: I used to wake up sore")
}

func TestAnalyzeAdDownloadFailure(t *testing.T) {
	db := testutil.NewDB(t)
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	ad := testutil.CreateAd(t, db, "3002", nil)
	require.NoError(t, db.Model(ad).Update("video_url", server.URL+"/gone.mp4").Error)

	_, err := AnalyzeAd(context.Background(), db, &fakeGenerator{}, server.Client(), ad.ID)
	assert.ErrorIs(t, err, ErrUpstream)
}
