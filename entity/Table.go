package entity

import (
	"errors"

	"gorm.io/gorm"
)

// Table = หนึ่ง session ของโต๊ะ (เปิดโต๊ะ → เสิร์ฟ → เก็บเงิน)
type Table struct {
	gorm.Model
	TableNumber int      `json:"table_number" gorm:"column:table_number;not null"`
	Waiter      int      `json:"waiter" gorm:"not null"`
	Status      string   `json:"status" gorm:"not null"`
	Payment     *string  `json:"payment"`
	Total       *float64 `json:"total" gorm:"type:decimal(8,2)"`
	Tip         *float64 `json:"tip" gorm:"type:decimal(8,2)"`

	Orders []Order `json:"orders" gorm:"foreignKey:TableID"`
}

// ตรวจ field ตามกติกา ใช้ทั้งตอน create และตอนเช็คแถวที่ merge แล้วก่อน update
func (t *Table) Validate() error {
	if t.TableNumber < 1 || t.TableNumber > 999 {
		return errors.New("table_number must be between 1 and 999")
	}
	if t.Waiter < 1 || t.Waiter > 999 {
		return errors.New("waiter must be between 1 and 999")
	}
	if n := len(t.Status); n < 2 || n > 40 {
		return errors.New("status must be 2-40 characters")
	}
	if t.Payment != nil {
		if n := len(*t.Payment); n < 3 || n > 6 {
			return errors.New("payment must be 3-6 characters")
		}
	}
	return nil
}

func (t *Table) BeforeCreate(tx *gorm.DB) error {
	return t.Validate()
}
