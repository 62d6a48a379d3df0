package seed

import (
	"testing"

	categorydomain "github.com/smallbiznis/catalog/internal/category/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestEnsureDefaultCategoriesIdempotent(t *testing.T) {
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, conn.AutoMigrate(&categorydomain.Category{}))

	require.NoError(t, EnsureDefaultCategories(conn))
	require.NoError(t, EnsureDefaultCategories(conn))

	var count int64
	require.NoError(t, conn.Model(&categorydomain.Category{}).Count(&count).Error)
	assert.Equal(t, int64(len(defaultCategories)), count)
}

func TestEnsureDefaultCategoriesSkipsNonEmptyStore(t *testing.T) {
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, conn.AutoMigrate(&categorydomain.Category{}))
	require.NoError(t, conn.Create(&categorydomain.Category{ID: 1, Name: "Existente"}).Error)

	require.NoError(t, EnsureDefaultCategories(conn))

	var count int64
	require.NoError(t, conn.Model(&categorydomain.Category{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
