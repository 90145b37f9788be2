package services

import (
	"errors"
	"log"

	"github.com/kashann/aldente-restaurant/entity"
	"github.com/kashann/aldente-restaurant/repository"

	"gorm.io/gorm"
)

type OrderService struct {
	Repo   *repository.OrderRepository
	Tables *repository.TableRepository
	Bus    Broadcaster
}

func NewOrderService(repo *repository.OrderRepository, tables *repository.TableRepository, bus Broadcaster) *OrderService {
	return &OrderService{Repo: repo, Tables: tables, Bus: bus}
}

// ----- DTOs from Controller -----

type OrderLineIn struct {
	Name        string `json:"name" binding:"required"`
	Price       int    `json:"price" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required"`
	Observation string `json:"observation"`
}

type LineResult struct {
	Index int    `json:"index"`
	ID    uint   `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

type PlaceOrdersResult struct {
	Created int          `json:"created"`
	Lines   []LineResult `json:"lines"`
}

// ----- Place batch -----

// วางออเดอร์ทั้ง batch ให้โต๊ะเดียว
// แต่ละบรรทัดพยายามแยกกัน บรรทัดที่สร้างไปแล้วไม่ rollback (ตั้งใจ ไม่ atomic)
func (s *OrderService) PlaceOrders(tableNumber int, lines []OrderLineIn) (*PlaceOrdersResult, error) {
	t, err := s.Tables.FirstByNumber(tableNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	// แจ้งโต๊ะก่อน แล้วค่อยไล่สร้างทีละบรรทัด
	s.Bus.Broadcast(EventWaiter, WaiterEvent{ID: t.Waiter, Status: StatusOrdered, Table: t.TableNumber})

	res := &PlaceOrdersResult{Lines: make([]LineResult, 0, len(lines))}
	for i, line := range lines {
		o := entity.Order{
			Name:        line.Name,
			Price:       line.Price,
			Quantity:    line.Quantity,
			Observation: line.Observation,
			TableID:     t.ID,
			Table:       t.TableNumber,
		}
		if err := s.Repo.Create(&o); err != nil {
			log.Printf("place order line %d failed: %v", i, err)
			res.Lines = append(res.Lines, LineResult{Index: i, Error: err.Error()})
			continue
		}
		s.Bus.Broadcast(EventOrder, OrderEvent{
			ID:          o.ID,
			Quantity:    o.Quantity,
			Name:        o.Name,
			Observation: o.Observation,
			Waiter:      t.Waiter,
		})
		res.Created++
		res.Lines = append(res.Lines, LineResult{Index: i, ID: o.ID})
	}
	return res, nil
}

// ----- Kitchen / waiter transitions -----

// ครัวกดว่าออเดอร์เสร็จแล้ว มาจากทาง socket เลยเป็น fire-and-forget:
// ไม่เจอ order → drop เงียบๆ แค่ log ไม่มี event ออก
func (s *OrderService) MarkReady(orderID uint, waiterID int) error {
	o, err := s.Repo.FindByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("kitchen ready: order %d not found, dropped", orderID)
			return nil
		}
		return err
	}
	if err := s.Repo.MarkReady(o.ID); err != nil {
		return err
	}
	s.Bus.Broadcast(EventWaiter, WaiterEvent{ID: waiterID, Status: StatusReady, Table: o.Table})
	return nil
}

// waiter ติ๊กว่าเสิร์ฟแล้ว อัปเดตแค่ field served
// ไม่มี guard ว่าต้อง ready ก่อน (พฤติกรรมเดิม ปล่อยไว้)
func (s *OrderService) MarkServed(orderID uint, served bool) error {
	if _, err := s.Repo.FindByID(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.Repo.UpdateServed(orderID, served)
}

// ----- Reads -----

func (s *OrderService) ListAll() ([]entity.Order, error) {
	return s.Repo.ListAll()
}

func (s *OrderService) ListByTable(tableNumber int) ([]entity.Order, error) {
	t, err := s.Tables.FirstByNumber(tableNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.Repo.ListByTableID(t.ID)
}

func (s *OrderService) ListByTableAndID(tableNumber int, orderID uint) ([]entity.Order, error) {
	orders, err := s.Repo.ListByTableNumberAndID(tableNumber, orderID)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, ErrNotFound
	}
	return orders, nil
}

// ----- Deletes -----

// เคลียร์ออเดอร์ทั้งโต๊ะ โต๊ะไม่มี = ไม่มีอะไรให้ลบ จบแบบไม่ error
// (route นี้ไม่เคยตอบ not found)
func (s *OrderService) DeleteByTable(tableNumber int) error {
	t, err := s.Tables.FirstByNumber(tableNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return s.Repo.DeleteByTableID(t.ID)
}

func (s *OrderService) DeleteOne(tableNumber int, orderID uint) error {
	orders, err := s.Repo.ListByTableNumberAndID(tableNumber, orderID)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		return ErrNotFound
	}
	return s.Repo.DeleteOne(orderID)
}
