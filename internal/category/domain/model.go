package domain

type Category struct {
	ID   int64  `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"type:varchar(100);not null;uniqueIndex"`
}

func (Category) TableName() string { return "categories" }
