package repository

import (
	"github.com/kashann/aldente-restaurant/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) Create(o *entity.Order) error {
	return r.DB.Create(o).Error
}

func (r *OrderRepository) ListAll() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) FindByID(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListByTableID(tableID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("table_id = ?", tableID).Find(&orders).Error
	return orders, err
}

// filter ด้วยคอลัมน์ table (เลขโต๊ะซ้ำ) กับ id แยกกัน ไม่ใช่ composite key
func (r *OrderRepository) ListByTableNumberAndID(tableNumber int, orderID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("`table` = ? AND id = ?", tableNumber, orderID).Find(&orders).Error
	return orders, err
}

// set ready=true อย่างเดียว field อื่นไม่แตะ
func (r *OrderRepository) MarkReady(id uint) error {
	return r.DB.Model(&entity.Order{}).Where("id = ?", id).Update("ready", true).Error
}

// set served อย่างเดียว
func (r *OrderRepository) UpdateServed(id uint, served bool) error {
	return r.DB.Model(&entity.Order{}).Where("id = ?", id).Update("served", served).Error
}

func (r *OrderRepository) DeleteByTableID(tableID uint) error {
	return r.DB.Unscoped().Where("table_id = ?", tableID).Delete(&entity.Order{}).Error
}

func (r *OrderRepository) DeleteOne(id uint) error {
	return r.DB.Unscoped().Delete(&entity.Order{}, id).Error
}
