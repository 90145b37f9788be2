package services

import (
	"errors"

	"github.com/kashann/aldente-restaurant/entity"
	"github.com/kashann/aldente-restaurant/repository"

	"gorm.io/gorm"
)

type TableService struct {
	Repo   *repository.TableRepository
	Orders *repository.OrderRepository
	Bus    Broadcaster
}

func NewTableService(repo *repository.TableRepository, orders *repository.OrderRepository, bus Broadcaster) *TableService {
	return &TableService{Repo: repo, Orders: orders, Bus: bus}
}

// ----- DTO from Controller -----

// รับเฉพาะ field ที่อนุญาตให้แก้ (pointer = ไม่ส่งมาก็ไม่แตะ)
type UpdateTableReq struct {
	TableNumber *int     `json:"table_number"`
	Waiter      *int     `json:"waiter"`
	Status      *string  `json:"status"`
	Payment     *string  `json:"payment"`
	Total       *float64 `json:"total"`
	Tip         *float64 `json:"tip"`
}

// ----- Create / Reads -----

func (s *TableService) Create(t *entity.Table) error {
	return s.Repo.Create(t)
}

func (s *TableService) ListAll() ([]entity.Table, error) {
	return s.Repo.ListAll()
}

func (s *TableService) GetByNumber(number int) ([]entity.Table, error) {
	tables, err := s.Repo.FindByNumber(number)
	if err != nil {
		return nil, err
	}
	if len(tables) == 0 {
		return nil, ErrNotFound
	}
	return tables, nil
}

func (s *TableService) GetByWaiter(waiter int) ([]entity.Table, error) {
	tables, err := s.Repo.FindByWaiter(waiter)
	if err != nil {
		return nil, err
	}
	if len(tables) == 0 {
		return nil, ErrNotFound
	}
	return tables, nil
}

// ----- Update -----

// แก้สถานะโต๊ะ: ประกาศ event ก่อน แล้วค่อย commit ลง DB
// ถ้า write พังหลังประกาศ client เห็นสถานะที่ไม่เคยถูกบันทึก
// อันนี้เป็น contract เดิม ไม่ใช่ bug ห้ามสลับลำดับ
func (s *TableService) UpdateStatus(number int, req *UpdateTableReq) error {
	t, err := s.Repo.FirstByNumber(number)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	status := ""
	if req.Status != nil {
		status = *req.Status
	}
	s.Bus.Broadcast(EventWaiter, WaiterEvent{ID: t.Waiter, Table: t.TableNumber, Status: status})

	// merge ลงแถวเดิมแล้วตรวจ constraint ก่อนเขียน
	// ตรวจไม่ผ่าน = commit ล้มหลังประกาศไปแล้ว (หน้าต่างตาม contract ข้างบน)
	merged := *t
	fields := map[string]any{}
	if req.TableNumber != nil {
		merged.TableNumber = *req.TableNumber
		fields["table_number"] = *req.TableNumber
	}
	if req.Waiter != nil {
		merged.Waiter = *req.Waiter
		fields["waiter"] = *req.Waiter
	}
	if req.Status != nil {
		merged.Status = *req.Status
		fields["status"] = *req.Status
	}
	if req.Payment != nil {
		merged.Payment = req.Payment
		fields["payment"] = *req.Payment
	}
	if req.Total != nil {
		fields["total"] = *req.Total
	}
	if req.Tip != nil {
		fields["tip"] = *req.Tip
	}
	if len(fields) == 0 {
		return nil
	}
	if err := merged.Validate(); err != nil {
		return err
	}
	return s.Repo.UpdateFields(number, fields)
}

// ----- Delete -----

// ปิดโต๊ะ: ลบ orders ของทุก session ที่ตรงเลขโต๊ะก่อน แล้วค่อยลบโต๊ะ
// สองขั้นนี้ไม่ได้อยู่ใน transaction เดียวกัน ล้มกลางทาง = ค้างครึ่งเดียว (ยอมรับ)
func (s *TableService) Delete(number int) error {
	tables, err := s.Repo.FindByNumber(number)
	if err != nil {
		return err
	}
	if len(tables) == 0 {
		return ErrNotFound
	}
	for _, t := range tables {
		if err := s.Orders.DeleteByTableID(t.ID); err != nil {
			return err
		}
	}
	return s.Repo.DeleteByNumber(number)
}
