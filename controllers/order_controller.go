package controllers

import (
	"errors"
	"strconv"

	"github.com/kashann/aldente-restaurant/pkg/resp"
	"github.com/kashann/aldente-restaurant/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Service: s}
}

// GET /orders → ทุกออเดอร์ในระบบ (จอครัวใช้)
func (oc *OrderController) ListAll(c *gin.Context) {
	orders, err := oc.Service.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /tables/:id/orders
func (oc *OrderController) ListByTable(c *gin.Context) {
	tid, _ := strconv.Atoi(c.Param("id"))
	orders, err := oc.Service.ListByTable(tid)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c)
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// POST /tables/:id/orders → body เป็น array ของรายการอาหาร
func (oc *OrderController) Place(c *gin.Context) {
	tid, _ := strconv.Atoi(c.Param("id"))

	var lines []services.OrderLineIn
	if err := c.ShouldBindJSON(&lines); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	res, err := oc.Service.PlaceOrders(tid, lines)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c)
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, res)
}

// DELETE /tables/:id/orders → เคลียร์ออเดอร์ทั้งโต๊ะ (ไม่มี 404)
func (oc *OrderController) DeleteByTable(c *gin.Context) {
	tid, _ := strconv.Atoi(c.Param("id"))
	if err := oc.Service.DeleteByTable(tid); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Removed(c)
}

// GET /tables/:id/orders/:oid
func (oc *OrderController) GetOne(c *gin.Context) {
	tid, _ := strconv.Atoi(c.Param("id"))
	oid, _ := strconv.Atoi(c.Param("oid"))

	orders, err := oc.Service.ListByTableAndID(tid, uint(oid))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c)
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

type UpdateServedReq struct {
	Served *bool `json:"served" binding:"required"`
}

// PUT /tables/:id/orders/:oid → waiter ติ๊กเสิร์ฟแล้ว แตะแค่ field served
func (oc *OrderController) UpdateServed(c *gin.Context) {
	oid, _ := strconv.Atoi(c.Param("oid"))

	var req UpdateServedReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := oc.Service.MarkServed(uint(oid), *req.Served); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c)
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Modified(c)
}

// DELETE /tables/:id/orders/:oid
func (oc *OrderController) DeleteOne(c *gin.Context) {
	tid, _ := strconv.Atoi(c.Param("id"))
	oid, _ := strconv.Atoi(c.Param("oid"))

	if err := oc.Service.DeleteOne(tid, uint(oid)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c)
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Removed(c)
}
