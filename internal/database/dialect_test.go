package database_test

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/localnerve/swipefile/internal/database"
	"github.com/localnerve/swipefile/internal/logger"
	"github.com/localnerve/swipefile/internal/models"
	"github.com/localnerve/swipefile/internal/services"
	"github.com/localnerve/swipefile/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const export = `<div class="ad-card">
  <a class="post-link" href="https://www.facebook.com/acme/posts/777001">post</a>
  <span class="advertiser">Acme</span>
  <div class="headline">Sleep cooler tonight</div>
  <span>Created on: March 3, 2024</span>
  <span>Last seen on: April 10, 2024</span>
  <span class="likes">1,204</span>
</div>`

// TestDialects runs the intake and pipeline scenarios against real servers.
// Set TEST_POSTGRES_IMAGE and/or TEST_MARIADB_IMAGE to enable.
func TestDialects(t *testing.T) {
	if testing.Short() {
		t.Skip("container tests skipped with -short")
	}
	images := map[string]string{
		"postgres": os.Getenv("TEST_POSTGRES_IMAGE"),
		"mariadb":  os.Getenv("TEST_MARIADB_IMAGE"),
	}
	for dbType, image := range images {
		t.Run(dbType, func(t *testing.T) {
			if image == "" {
				t.Skipf("TEST_%s_IMAGE not set", strings.ToUpper(dbType))
			}
			ctx := context.Background()
			containers, err := testutil.StartDatabase(ctx, t, dbType, image, "")
			require.NoError(t, err)
			t.Cleanup(func() { containers.Terminate(t) })

			db, err := database.Connect(containers.Config, logger.Nop())
			require.NoError(t, err)
			t.Cleanup(func() { _ = database.Close(db) })
			require.NoError(t, database.AutoMigrate(db))
			require.NoError(t, database.Seed(db))

			log := logger.Nop()
			first, err := services.ImportAds(ctx, db, log, services.ImportOptions{Name: "first"}, strings.NewReader(export))
			require.NoError(t, err)
			assert.Equal(t, 1, first.Created)
			second, err := services.ImportAds(ctx, db, log, services.ImportOptions{Name: "second"}, strings.NewReader(export))
			require.NoError(t, err)
			assert.Equal(t, 1, second.Updated)

			_, err = services.CreateAd(ctx, db, services.AdInput{PostID: "777001"})
			assert.ErrorIs(t, err, services.ErrConflict)

			ads, err := services.ListAds(ctx, db, services.AdFilter{Query: "cooler"}, services.Page{})
			require.NoError(t, err)
			require.EqualValues(t, 1, ads.Total)
			snapshots, err := services.ListSnapshots(ctx, db, ads.Items[0].ID)
			require.NoError(t, err)
			assert.Len(t, snapshots, 2)

			angle := testutil.CreateAngle(t, db, "Hot sleepers")
			batch, err := services.CreateBatch(ctx, db, services.BatchInput{
				Name: "Copycat", AngleID: angle.ID, BatchType: models.BatchTypeCopycat, ReferenceAdID: &ads.Items[0].ID,
			})
			require.NoError(t, err)

			a, err := services.AddBatchItem(ctx, db, batch.ID, services.BatchItemInput{})
			require.NoError(t, err)
			b, err := services.AddBatchItem(ctx, db, batch.ID, services.BatchItemInput{})
			require.NoError(t, err)
			assert.Equal(t, "A", a.VariationIndex)
			assert.Equal(t, "B", b.VariationIndex)

			detail, err := services.SetBatchStatus(ctx, db, batch.ID, models.StatusLearning)
			require.NoError(t, err)
			assert.NotNil(t, detail.LaunchedAt)

			require.NoError(t, services.DeleteAd(ctx, db, ads.Items[0].ID))
			detail, err = services.GetBatch(ctx, db, batch.ID)
			require.NoError(t, err)
			assert.Nil(t, detail.ReferenceAdID)
		})
	}
}
