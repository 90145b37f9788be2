package services

import (
	"testing"

	"github.com/kashann/aldente-restaurant/entity"
	"github.com/kashann/aldente-restaurant/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTableFixture(t *testing.T) (*TableService, *OrderService, *fakeBus, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	bus := &fakeBus{}
	tableRepo := repository.NewTableRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	return NewTableService(tableRepo, orderRepo, bus),
		NewOrderService(orderRepo, tableRepo, bus),
		bus, db
}

func TestCreateTableRoundTrip(t *testing.T) {
	tables, _, bus, _ := newTableFixture(t)

	require.NoError(t, tables.Create(&entity.Table{TableNumber: 5, Waiter: 2, Status: "Open"}))
	// สร้างโต๊ะไม่มี broadcast
	assert.Empty(t, bus.events)

	got, err := tables.GetByNumber(5)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 5, got[0].TableNumber)
	assert.Equal(t, 2, got[0].Waiter)
	assert.Equal(t, "Open", got[0].Status)
	assert.Nil(t, got[0].Payment)
}

func TestCreateTableValidation(t *testing.T) {
	tables, _, _, _ := newTableFixture(t)

	assert.Error(t, tables.Create(&entity.Table{TableNumber: 0, Waiter: 2, Status: "Open"}))
	assert.Error(t, tables.Create(&entity.Table{TableNumber: 5, Waiter: 1000, Status: "Open"}))
	assert.Error(t, tables.Create(&entity.Table{TableNumber: 5, Waiter: 2, Status: "X"}))
	bad := "AB"
	assert.Error(t, tables.Create(&entity.Table{TableNumber: 5, Waiter: 2, Status: "Open", Payment: &bad}))
}

func TestGetByNumberMissing(t *testing.T) {
	tables, _, _, _ := newTableFixture(t)
	_, err := tables.GetByNumber(99)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetByWaiterIncludesOrders(t *testing.T) {
	tables, orders, _, _ := newTableFixture(t)
	require.NoError(t, tables.Create(&entity.Table{TableNumber: 5, Waiter: 2, Status: "Open"}))
	_, err := orders.PlaceOrders(5, []OrderLineIn{{Name: "Grilled salmon", Price: 1800, Quantity: 1}})
	require.NoError(t, err)

	got, err := tables.GetByWaiter(2)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Len(t, got[0].Orders, 1)
	assert.Equal(t, "Grilled salmon", got[0].Orders[0].Name)

	_, err = tables.GetByWaiter(9)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateStatusBroadcastsBeforeCommit(t *testing.T) {
	tables, _, bus, db := newTableFixture(t)
	require.NoError(t, tables.Create(&entity.Table{TableNumber: 5, Waiter: 2, Status: "Open"}))

	// ขณะ event ออก สถานะใน DB ต้องยังเป็นของเก่า (ประกาศก่อน commit)
	var statusAtBroadcast string
	bus.onBroadcast = func(event string, data any) {
		var row entity.Table
		require.NoError(t, db.Where("table_number = ?", 5).First(&row).Error)
		statusAtBroadcast = row.Status
	}

	status := "Billed"
	payment := "CASH"
	total := 18.00
	require.NoError(t, tables.UpdateStatus(5, &UpdateTableReq{
		Status:  &status,
		Payment: &payment,
		Total:   &total,
	}))

	require.Len(t, bus.events, 1)
	assert.Equal(t, EventWaiter, bus.events[0].name)
	assert.Equal(t, WaiterEvent{ID: 2, Table: 5, Status: "Billed"}, bus.events[0].data)
	assert.Equal(t, "Open", statusAtBroadcast)

	var row entity.Table
	require.NoError(t, db.Where("table_number = ?", 5).First(&row).Error)
	assert.Equal(t, "Billed", row.Status)
	require.NotNil(t, row.Payment)
	assert.Equal(t, "CASH", *row.Payment)
	require.NotNil(t, row.Total)
	assert.InDelta(t, 18.00, *row.Total, 0.001)
}

func TestUpdateStatusRejectsInvalidFields(t *testing.T) {
	tables, _, _, db := newTableFixture(t)
	require.NoError(t, tables.Create(&entity.Table{TableNumber: 5, Waiter: 2, Status: "Open"}))

	// ค่าที่หลุดกติกาทุกแบบต้องโดนปัดตอนเขียน แถวเดิมห้ามขยับ
	badStatus := "X"
	badNumber := 5000
	badPayment := "TOOLONGPAY"
	for _, req := range []*UpdateTableReq{
		{Status: &badStatus},
		{TableNumber: &badNumber},
		{Payment: &badPayment},
	} {
		require.Error(t, tables.UpdateStatus(5, req))
	}

	var row entity.Table
	require.NoError(t, db.Where("table_number = ?", 5).First(&row).Error)
	assert.Equal(t, 5, row.TableNumber)
	assert.Equal(t, "Open", row.Status)
	assert.Nil(t, row.Payment)
}

func TestUpdateStatusEventOutrunsFailedCommit(t *testing.T) {
	// commit ล้มหลังประกาศ: client เห็นสถานะที่ DB ไม่เคยบันทึก
	// หน้าต่างนี้เป็น contract ของ flow แจ้งก่อน-เขียนทีหลัง
	tables, _, bus, db := newTableFixture(t)
	require.NoError(t, tables.Create(&entity.Table{TableNumber: 5, Waiter: 2, Status: "Open"}))

	bad := "B" // สั้นกว่า 2 ตัว เขียนไม่ผ่าน
	require.Error(t, tables.UpdateStatus(5, &UpdateTableReq{Status: &bad}))

	// event ออกไปแล้วพร้อมสถานะใหม่ ทั้งที่แถวยังเป็นของเดิม
	require.Len(t, bus.events, 1)
	assert.Equal(t, EventWaiter, bus.events[0].name)
	assert.Equal(t, WaiterEvent{ID: 2, Table: 5, Status: "B"}, bus.events[0].data)

	var row entity.Table
	require.NoError(t, db.Where("table_number = ?", 5).First(&row).Error)
	assert.Equal(t, "Open", row.Status)
}

func TestUpdateStatusMissingTable(t *testing.T) {
	tables, _, bus, _ := newTableFixture(t)
	status := "Billed"
	require.ErrorIs(t, tables.UpdateStatus(77, &UpdateTableReq{Status: &status}), ErrNotFound)
	assert.Empty(t, bus.events)
}

func TestDeleteTableCascadesOrders(t *testing.T) {
	tables, orders, _, db := newTableFixture(t)
	require.NoError(t, tables.Create(&entity.Table{TableNumber: 5, Waiter: 2, Status: "Open"}))
	require.NoError(t, tables.Create(&entity.Table{TableNumber: 6, Waiter: 2, Status: "Open"}))
	_, err := orders.PlaceOrders(5, []OrderLineIn{
		{Name: "Grilled salmon", Price: 1800, Quantity: 1},
		{Name: "House salad", Price: 600, Quantity: 1},
	})
	require.NoError(t, err)
	_, err = orders.PlaceOrders(6, []OrderLineIn{{Name: "Tiramisu slice", Price: 700, Quantity: 1}})
	require.NoError(t, err)

	require.NoError(t, tables.Delete(5))

	_, err = tables.GetByNumber(5)
	require.ErrorIs(t, err, ErrNotFound)

	// orders ของโต๊ะ 5 หายหมด ของโต๊ะ 6 ไม่โดน
	var count int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	left, err := orders.ListByTable(6)
	require.NoError(t, err)
	assert.Len(t, left, 1)

	require.ErrorIs(t, tables.Delete(5), ErrNotFound)
}
