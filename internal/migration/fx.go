package migration

import (
	categorydomain "github.com/smallbiznis/catalog/internal/category/domain"
	"github.com/smallbiznis/catalog/internal/config"
	productdomain "github.com/smallbiznis/catalog/internal/product/domain"
	"github.com/smallbiznis/catalog/internal/seed"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
		} else {
			// golang-migrate only ships postgres migrations here; the other
			// engines are for local development and get the gorm schema.
			if err := conn.AutoMigrate(&categorydomain.Category{}, &productdomain.Product{}); err != nil {
				return err
			}
		}

		if cfg.SeedCategories {
			return seed.EnsureDefaultCategories(conn)
		}
		return nil
	}),
)
