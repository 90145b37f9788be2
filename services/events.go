package services

// event ที่ broadcast ออก notification bus
const (
	EventWaiter = "waiter"
	EventOrder  = "order"
)

// status ที่ส่งใน waiter event
const (
	StatusOrdered = "Ordered"
	StatusReady   = "Ready"
)

// Broadcaster = ช่องกระจาย event ให้ client ทุกตัวที่ต่ออยู่
// ยิงแล้วจบ ไม่มี ack ไม่มี replay
type Broadcaster interface {
	Broadcast(event string, data any)
}

// แจ้งพนักงานเสิร์ฟ (id = waiter ที่ดูแลโต๊ะ client กรองเอง)
type WaiterEvent struct {
	ID     int    `json:"id"`
	Status string `json:"status"`
	Table  int    `json:"table"`
}

// แจ้งครัวว่ามี order ใหม่เข้า
type OrderEvent struct {
	ID          uint   `json:"id"`
	Quantity    int    `json:"quantity"`
	Name        string `json:"name"`
	Observation string `json:"observation"`
	Waiter      int    `json:"waiter"`
}
