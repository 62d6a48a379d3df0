package domain

import (
	"time"

	"github.com/shopspring/decimal"
	categorydomain "github.com/smallbiznis/catalog/internal/category/domain"
)

type Product struct {
	ID          int64                    `json:"id" gorm:"primaryKey"`
	Code        string                   `json:"code" gorm:"type:varchar(10);not null;uniqueIndex"`
	Name        string                   `json:"name" gorm:"type:varchar(100);not null"`
	Description string                   `json:"description" gorm:"type:varchar(200);not null"`
	Price       decimal.Decimal          `json:"price" gorm:"type:numeric(10,2);not null"`
	RegDate     time.Time                `json:"reg_date" gorm:"column:reg_date;not null"`
	ModDate     *time.Time               `json:"mod_date" gorm:"column:mod_date"`
	State       bool                     `json:"state" gorm:"not null"`
	CategoryID  int64                    `json:"-" gorm:"not null"`
	Category    *categorydomain.Category `json:"-" gorm:"foreignKey:CategoryID"`
}

func (Product) TableName() string { return "products" }
