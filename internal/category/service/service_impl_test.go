package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/catalog/internal/category/domain"
	"github.com/smallbiznis/catalog/internal/category/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupService(t *testing.T) domain.Service {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, conn.AutoMigrate(&domain.Category{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(Params{
		DB:    conn,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.Provide(),
	})
}

func TestCreate(t *testing.T) {
	svc := setupService(t)

	resp, err := svc.Create(context.Background(), domain.CreateRequest{Name: "Bebidas"})
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, "Bebidas", resp.Name)
}

func TestCreateTrimsName(t *testing.T) {
	svc := setupService(t)

	resp, err := svc.Create(context.Background(), domain.CreateRequest{Name: "  Lácteos  "})
	require.NoError(t, err)
	assert.Equal(t, "Lácteos", resp.Name)
}

func TestCreateEmptyName(t *testing.T) {
	svc := setupService(t)

	_, err := svc.Create(context.Background(), domain.CreateRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidName)
}

func TestCreateDuplicateName(t *testing.T) {
	svc := setupService(t)

	_, err := svc.Create(context.Background(), domain.CreateRequest{Name: "Bebidas"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), domain.CreateRequest{Name: "Bebidas"})
	assert.ErrorIs(t, err, domain.ErrNameInUse)
}

func TestGet(t *testing.T) {
	svc := setupService(t)

	created, err := svc.Create(context.Background(), domain.CreateRequest{Name: "Snacks"})
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, got.Name)

	_, err = svc.Get(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList(t *testing.T) {
	svc := setupService(t)

	for _, name := range []string{"Bebidas", "Snacks", "Lácteos"} {
		_, err := svc.Create(context.Background(), domain.CreateRequest{Name: name})
		require.NoError(t, err)
	}

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, resp, 3)
}
