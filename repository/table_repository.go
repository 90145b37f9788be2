package repository

import (
	"github.com/kashann/aldente-restaurant/entity"

	"gorm.io/gorm"
)

type TableRepository struct {
	DB *gorm.DB
}

func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{DB: db}
}

func (r *TableRepository) Create(t *entity.Table) error {
	return r.DB.Create(t).Error
}

func (r *TableRepository) ListAll() ([]entity.Table, error) {
	var tables []entity.Table
	err := r.DB.Find(&tables).Error
	return tables, err
}

// GET /tables/:id → ทุก session ของ table_number นั้น พร้อม orders
func (r *TableRepository) FindByNumber(number int) ([]entity.Table, error) {
	var tables []entity.Table
	err := r.DB.Preload("Orders").Where("table_number = ?", number).Find(&tables).Error
	return tables, err
}

func (r *TableRepository) FindByWaiter(waiter int) ([]entity.Table, error) {
	var tables []entity.Table
	err := r.DB.Preload("Orders").Where("waiter = ?", waiter).Find(&tables).Error
	return tables, err
}

// แถวแรกที่ตรง table_number (ใช้ตอน update / place orders)
func (r *TableRepository) FirstByNumber(number int) (*entity.Table, error) {
	var t entity.Table
	if err := r.DB.Where("table_number = ?", number).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// update เฉพาะ field ที่ whitelist ไว้
func (r *TableRepository) UpdateFields(number int, fields map[string]any) error {
	return r.DB.Model(&entity.Table{}).
		Where("table_number = ?", number).
		Updates(fields).Error
}

func (r *TableRepository) DeleteByNumber(number int) error {
	return r.DB.Unscoped().Where("table_number = ?", number).Delete(&entity.Table{}).Error
}
