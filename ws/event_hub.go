package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Envelope = frame ที่วิ่งบน socket ทั้งสองทาง
type Envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

// สัญญาณจากจอครัว: ออเดอร์ไหนเสร็จ ใครเป็นคนเสิร์ฟ
type kitchenSignal struct {
	OrderID  uint `json:"oid"`
	WaiterID int  `json:"wid"`
}

// ฝั่งครัวต้องการแค่นี้ ให้ main เสียบ OrderService เข้ามา
type KitchenService interface {
	MarkReady(orderID uint, waiterID int) error
}

// EventHub = ศูนย์กลาง broadcast ของร้าน ทุก client อยู่ห้องเดียวกันหมด
// (จอครัว + tablet ของ waiter) event ที่ออกไปถึงทุกคน client กรองเอง
type EventHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan Envelope
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	connected  atomic.Int64

	Kitchen KitchenService
}

func NewEventHub() *EventHub {
	return &EventHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan Envelope, 256),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

// จำนวน client ที่ต่ออยู่ เอาไว้ดูเฉยๆ ห้ามใช้ตัดสิน logic
func (h *EventHub) Connected() int64 {
	return h.connected.Load()
}

// ยิง event แบบไม่ block: คิวเต็มก็ทิ้ง ไม่มี ack
func (h *EventHub) Broadcast(event string, data any) {
	select {
	case h.broadcast <- Envelope{Event: event, Data: data}:
	default:
		log.Printf("ws broadcast queue full, dropping %q event", event)
	}
}

// คอยฟัง register/unregister/broadcast ตลอดเวลา (เรียกใน goroutine เดียว)
func (h *EventHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.clients[conn] = true
			log.Printf("connected: %d sockets connected", h.connected.Add(1))

		case conn := <-h.unregister:
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
				log.Printf("disconnected: %d sockets connected", h.connected.Add(-1))
			}

		case env := <-h.broadcast:
			for conn := range h.clients {
				if err := conn.WriteJSON(env); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients, conn)
					h.connected.Add(-1)
				}
			}
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws
func (h *EventHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	h.register <- conn
	go h.listenSignals(conn)
}

// ฟัง signal จาก client แล้ว route ไปตาม event
func (h *EventHub) listenSignals(conn *websocket.Conn) {
	defer func() { h.unregister <- conn }()

	for {
		_, msgData, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var env struct {
			Event string          `json:"event"`
			Data  json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(msgData, &env); err != nil {
			log.Printf("invalid frame: %v", err)
			continue
		}

		switch env.Event {
		case "kitchen":
			var sig kitchenSignal
			if err := json.Unmarshal(env.Data, &sig); err != nil {
				log.Printf("invalid kitchen signal: %v", err)
				continue
			}
			if h.Kitchen == nil {
				continue
			}
			if err := h.Kitchen.MarkReady(sig.OrderID, sig.WaiterID); err != nil {
				log.Printf("kitchen signal failed: %v", err)
			}

		case "request":
			// client เก่ายังยิง event นี้อยู่ รับไว้เฉยๆ
			log.Println("request")

		default:
			log.Printf("unknown event %q ignored", env.Event)
		}
	}
}
