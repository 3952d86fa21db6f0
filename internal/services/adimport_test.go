package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/localnerve/swipefile/internal/logger"
	"github.com/localnerve/swipefile/internal/models"
	"github.com/localnerve/swipefile/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exportFixture = `<html><body>
<div class="ad-card">
  <span class="brand-name">Acme Sleep</span>
  <a class="post-link" href="https://www.facebook.com/acme/posts/123456789/?ref=library#top">post</a>
  <h3>Sleep through the night</h3>
  <div class="ad-text">Our pillow fixes neck pain.</div>
  <video><source src="Ad Library_files/clip.mp4"></video>
  <img src="https://cdn.example/thumb.jpg">
  <span class="likes">1,234</span>
  <span class="shares">56</span>
  <span data-metric="comments">7 comments</span>
  <div><span>Created on: March 3, 2024</span></div>
  <div><span>Last seen on: Apr 10, 2024</span></div>
</div>
<div class="ad-card">
  <h3>A block without a post link</h3>
</div>
</body></html>`

func exportWithLastSeen(lastSeen string) string {
	return strings.Replace(exportFixture, "Apr 10, 2024", lastSeen, 1)
}

func TestExtractPostID(t *testing.T) {
	cases := []struct {
		link string
		want string
		ok   bool
	}{
		{"https://www.facebook.com/acme/posts/123456789/", "123456789", true},
		{"https://www.facebook.com/acme/videos/42/?t=17", "17", true},
		{"https://www.facebook.com/watch/?v=555", "555", true},
		{"https://www.facebook.com/ads/library/?id=987#x", "987", true},
		{"https://www.facebook.com/123/posts/456?comment_id=789", "789", true},
		{"https://www.facebook.com/acme/about/", "", false},
		{"https://facebook.com/100064/posts/200/", "200", true},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := ExtractPostID(tc.link)
		assert.Equal(t, tc.ok, ok, tc.link)
		assert.Equal(t, tc.want, got, tc.link)
	}
}

func TestParseNumber(t *testing.T) {
	assert.EqualValues(t, 1234, ParseNumber("1,234"))
	assert.EqualValues(t, 7, ParseNumber("7 comments"))
	assert.EqualValues(t, 12, ParseNumber("1.2K"))
	assert.EqualValues(t, 0, ParseNumber("none"))
	assert.EqualValues(t, 0, ParseNumber(""))
}

func TestParseLabeledDate(t *testing.T) {
	got, ok := ParseLabeledDate("Created on: March 3, 2024", createdLabel)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC), got)

	got, ok = ParseLabeledDate("last seen on: 2024-04-10", lastSeenLabel)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC), got)

	_, ok = ParseLabeledDate("Created on: yesterday", createdLabel)
	assert.False(t, ok)
}

func TestParseAdExportLabelInNestedMarkup(t *testing.T) {
	html := `<div class="ad-card">
  <a class="post-link" href="https://www.facebook.com/acme/posts/777/">post</a>
  <p><strong>Created on:</strong> Jan 2, 2024</p>
  <p><b>Last seen on:</b> <em>Feb 5, 2024</em></p>
</div>`
	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	blocks, err := ParseAdExport(strings.NewReader(html), now)
	require.NoError(t, err)
	require.Len(t, blocks, 1)

	block := blocks[0]
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), block.PublishDate)
	assert.False(t, block.PublishFallback)
	assert.Equal(t, time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC), block.LastSeen)
	assert.False(t, block.LastSeenFallback)
}

func TestNormalizeMediaURL(t *testing.T) {
	assert.Equal(t, "clip.mp4", NormalizeMediaURL("./Ad Library_files/clip.mp4"))
	assert.Equal(t, "https://video.fbcdn.net/v.mp4", NormalizeMediaURL(" https://video.fbcdn.net/v.mp4 "))
}

func TestParseAdExport(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	blocks, err := ParseAdExport(strings.NewReader(exportFixture), now)
	require.NoError(t, err)
	require.Len(t, blocks, 2)

	first := blocks[0]
	assert.Equal(t, "123456789", first.PostID)
	assert.Equal(t, "Acme Sleep", first.Advertiser)
	assert.Equal(t, "Sleep through the night", first.Headline)
	assert.Equal(t, "clip.mp4", first.VideoURL)
	assert.Equal(t, "https://cdn.example/thumb.jpg", first.ImageURL)
	assert.EqualValues(t, 1234, first.Likes)
	assert.EqualValues(t, 56, first.Shares)
	assert.EqualValues(t, 7, first.Comments)
	assert.False(t, first.PublishFallback)
	assert.Equal(t, time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC), first.LastSeen)

	second := blocks[1]
	assert.Empty(t, second.PostID)
	assert.True(t, second.PublishFallback)
	assert.Equal(t, now, second.LastSeen)
}

func TestParseAdExportPrefersVendorVideo(t *testing.T) {
	html := `<div class="ad-block"><a class="post-link" href="https://facebook.com/p/1/">x</a>
<video src="https://other.example/a.mp4"></video>
<video><source src="https://video.fbcdn.net/b.mp4"></video></div>`
	blocks, err := ParseAdExport(strings.NewReader(html), time.Now())
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, "https://video.fbcdn.net/b.mp4", blocks[0].VideoURL)
}

func TestImportAds(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()

	result, err := ImportAds(ctx, db, logger.Nop(), ImportOptions{Name: "june run"}, strings.NewReader(exportFixture))
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 2, result.TotalFound)
	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Skipped)
	assert.Zero(t, result.Failed)
	assert.NotZero(t, result.ImportBatchID)

	var ad models.Ad
	require.NoError(t, db.Where("post_id = ?", "123456789").First(&ad).Error)
	assert.Equal(t, "Acme Sleep", ad.AdvertiserName)
	require.NotNil(t, ad.PublishDate)
	assert.True(t, ad.PublishDate.Equal(time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)))
	assert.True(t, ad.FirstSeen.Equal(*ad.PublishDate))

	var snapshots []models.AdSnapshot
	require.NoError(t, db.Where("ad_id = ?", ad.ID).Find(&snapshots).Error)
	require.Len(t, snapshots, 1)
	assert.EqualValues(t, 1234, snapshots[0].Likes)
	assert.Equal(t, result.ImportBatchID, *snapshots[0].ImportBatchID)
}

func TestImportAdsTwiceAppendsSnapshots(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	log := logger.Nop()

	_, err := ImportAds(ctx, db, log, ImportOptions{Name: "first"}, strings.NewReader(exportFixture))
	require.NoError(t, err)
	second, err := ImportAds(ctx, db, log, ImportOptions{Name: "second"}, strings.NewReader(exportWithLastSeen("May 1, 2024")))
	require.NoError(t, err)
	assert.Equal(t, 1, second.Updated)
	assert.Zero(t, second.Created)

	var ads []models.Ad
	require.NoError(t, db.Find(&ads).Error)
	require.Len(t, ads, 1)
	assert.True(t, ads[0].LastSeen.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)))

	// an older reading never moves lastSeen back
	_, err = ImportAds(ctx, db, log, ImportOptions{Name: "third"}, strings.NewReader(exportWithLastSeen("Jan 1, 2024")))
	require.NoError(t, err)
	require.NoError(t, db.First(&ads[0], ads[0].ID).Error)
	assert.True(t, ads[0].LastSeen.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)))

	var count int64
	require.NoError(t, db.Model(&models.AdSnapshot{}).Where("ad_id = ?", ads[0].ID).Count(&count).Error)
	assert.EqualValues(t, 3, count)

	summaries, err := ListImportBatches(ctx, db)
	require.NoError(t, err)
	assert.Len(t, summaries, 3)
}

func TestImportAdsCountsDateFallbacks(t *testing.T) {
	db := testutil.NewDB(t)
	html := `<div class="ad-card"><a class="post-link" href="https://facebook.com/x/posts/77">p</a>
<span>Created on: sometime</span></div>`

	result, err := ImportAds(context.Background(), db, logger.Nop(), ImportOptions{Name: "dates"}, strings.NewReader(html))
	require.NoError(t, err)
	assert.Equal(t, 2, result.DateFallbacks)

	var ad models.Ad
	require.NoError(t, db.Where("post_id = ?", "77").First(&ad).Error)
	assert.Nil(t, ad.PublishDate)
}

func TestImportAdsRequiresName(t *testing.T) {
	db := testutil.NewDB(t)
	_, err := ImportAds(context.Background(), db, logger.Nop(), ImportOptions{Name: "  "}, strings.NewReader(exportFixture))
	assert.ErrorIs(t, err, ErrValidation)
}
