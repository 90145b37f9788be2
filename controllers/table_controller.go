package controllers

import (
	"errors"
	"strconv"

	"github.com/kashann/aldente-restaurant/entity"
	"github.com/kashann/aldente-restaurant/pkg/resp"
	"github.com/kashann/aldente-restaurant/services"

	"github.com/gin-gonic/gin"
)

type TableController struct {
	Service *services.TableService
}

func NewTableController(s *services.TableService) *TableController {
	return &TableController{Service: s}
}

// ===== Create =====

type CreateTableReq struct {
	TableNumber int      `json:"table_number" binding:"required"`
	Waiter      int      `json:"waiter" binding:"required"`
	Status      string   `json:"status" binding:"required"`
	Payment     *string  `json:"payment"`
	Total       *float64 `json:"total"`
	Tip         *float64 `json:"tip"`
}

// POST /tables
func (tc *TableController) Create(c *gin.Context) {
	var req CreateTableReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	t := entity.Table{
		TableNumber: req.TableNumber,
		Waiter:      req.Waiter,
		Status:      req.Status,
		Payment:     req.Payment,
		Total:       req.Total,
		Tip:         req.Tip,
	}
	// constraint พังตอนเขียน → นับเป็น persistence failure ตอบ 500
	if err := tc.Service.Create(&t); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"id": t.ID})
}

// ===== Reads =====

// GET /tables
func (tc *TableController) List(c *gin.Context) {
	tables, err := tc.Service.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, tables)
}

// GET /tables/:id → รวม orders ของโต๊ะมาด้วย
func (tc *TableController) GetByNumber(c *gin.Context) {
	n, _ := strconv.Atoi(c.Param("id"))
	tables, err := tc.Service.GetByNumber(n)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c)
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, tables)
}

// GET /tables/waiter/:wid
func (tc *TableController) GetByWaiter(c *gin.Context) {
	w, _ := strconv.Atoi(c.Param("wid"))
	tables, err := tc.Service.GetByWaiter(w)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c)
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, tables)
}

// ===== Update / Delete =====

// PUT /tables/:id
func (tc *TableController) Update(c *gin.Context) {
	n, _ := strconv.Atoi(c.Param("id"))

	var req services.UpdateTableReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := tc.Service.UpdateStatus(n, &req); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c)
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Modified(c)
}

// DELETE /tables/:id → ลบ orders ของโต๊ะตามไปด้วย
func (tc *TableController) Delete(c *gin.Context) {
	n, _ := strconv.Atoi(c.Param("id"))
	if err := tc.Service.Delete(n); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c)
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Removed(c)
}
