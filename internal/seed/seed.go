package seed

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	categorydomain "github.com/smallbiznis/catalog/internal/category/domain"
	"gorm.io/gorm"
)

var defaultCategories = []string{
	"Bebidas",
	"Bebidas Frías",
	"Lácteos",
	"Panadería",
	"Snacks",
}

// EnsureDefaultCategories seeds a starter set of categories on an empty
// install so products can be created right away.
func EnsureDefaultCategories(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&categorydomain.Category{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		for _, name := range defaultCategories {
			c := categorydomain.Category{
				ID:   node.Generate().Int64(),
				Name: name,
			}
			if err := tx.Create(&c).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
