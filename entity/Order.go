package entity

import (
	"errors"

	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	Name        string `json:"name" gorm:"not null"`
	Price       int    `json:"price" gorm:"not null"`
	Quantity    int    `json:"quantity" gorm:"not null"`
	Observation string `json:"observation"`
	Served      bool   `json:"served" gorm:"not null;default:false"`
	Ready       bool   `json:"ready" gorm:"not null;default:false"`

	TableID uint `json:"table_id"`
	// table_number ของโต๊ะ (ซ้ำกับ FK ไว้ filter ตรงๆ ไม่ต้อง join)
	Table int `json:"table" gorm:"column:table;not null"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if n := len(o.Name); n < 5 || n > 400 {
		return errors.New("name must be 5-400 characters")
	}
	if o.Price < 1 || o.Price > 9999 {
		return errors.New("price must be between 1 and 9999")
	}
	if o.Quantity < 1 || o.Quantity > 999 {
		return errors.New("quantity must be between 1 and 999")
	}
	if len(o.Observation) > 200 {
		return errors.New("observation must be at most 200 characters")
	}
	if o.Table < 1 {
		return errors.New("table is required")
	}
	return nil
}
