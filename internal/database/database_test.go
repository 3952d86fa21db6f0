package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/localnerve/swipefile/internal/config"
	"github.com/localnerve/swipefile/internal/logger"
	"github.com/localnerve/swipefile/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormlogger "gorm.io/gorm/logger"
)

func TestDialector(t *testing.T) {
	for _, dbType := range []string{"mysql", "mariadb", "postgres", "sqlite", "sqlite-pure", "sqlserver"} {
		d, err := Dialector(&config.Config{DBType: dbType, DBDatabase: "swipefile"})
		require.NoError(t, err, dbType)
		assert.NotNil(t, d)
	}

	_, err := Dialector(&config.Config{DBType: "oracle"})
	assert.Error(t, err)
}

func TestSqliteDSN(t *testing.T) {
	assert.Equal(t, "a.db?_foreign_keys=on", sqliteDSN("a.db", "_foreign_keys=on"))
	assert.Equal(t, "a.db?mode=ro&_foreign_keys=on", sqliteDSN("a.db?mode=ro", "_foreign_keys=on"))
	assert.Equal(t, "a.db?_pragma=foreign_keys(1)", sqliteDSN("a.db?_pragma=foreign_keys(1)", "_foreign_keys=on"))
}

func TestGormLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Silent, GormLogLevel("silent"))
	assert.Equal(t, gormlogger.Error, GormLogLevel("ERROR"))
	assert.Equal(t, gormlogger.Info, GormLogLevel("debug"))
	assert.Equal(t, gormlogger.Warn, GormLogLevel(""))
}

func TestErrorClassification(t *testing.T) {
	assert.True(t, IsDuplicate(&mysql.MySQLError{Number: 1062}))
	assert.True(t, IsDuplicate(fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: "23505"})))
	assert.True(t, IsDuplicate(errors.New("UNIQUE constraint failed: ads.post_id")))
	assert.False(t, IsDuplicate(&mysql.MySQLError{Number: 1452}))
	assert.False(t, IsDuplicate(nil))

	assert.True(t, IsForeignKey(&mysql.MySQLError{Number: 1452}))
	assert.True(t, IsForeignKey(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsForeignKey(errors.New("boom")))
}

func TestConnectMigrateAndSeed(t *testing.T) {
	cfg := &config.Config{
		DBType:            "sqlite-pure",
		DBDatabase:        "file:database_test?mode=memory&cache=shared",
		LogLevel:          "silent",
		DBConnectionLimit: 10,
	}
	db, err := Connect(cfg, logger.Nop())
	require.NoError(t, err)
	defer Close(db)

	require.NoError(t, AutoMigrate(db))
	require.NoError(t, Seed(db))

	var formats int64
	require.NoError(t, db.Model(&models.AdFormat{}).Count(&formats).Error)
	assert.Positive(t, formats)

	// seeding again adds nothing
	require.NoError(t, Seed(db))
	var again int64
	require.NoError(t, db.Model(&models.AdFormat{}).Count(&again).Error)
	assert.Equal(t, formats, again)

	var copycat models.AdFormat
	require.NoError(t, db.Where("name = ?", "Copycat / Direct Response").First(&copycat).Error)

	err = db.Create(&models.AdFormat{Taxon: models.Taxon{Name: copycat.Name}}).Error
	assert.True(t, IsDuplicate(err))
}
