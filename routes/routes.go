package routes

import (
	"github.com/kashann/aldente-restaurant/configs"
	"github.com/kashann/aldente-restaurant/controllers"
	"github.com/kashann/aldente-restaurant/pkg/resp"
	"github.com/kashann/aldente-restaurant/repository"
	"github.com/kashann/aldente-restaurant/services"
	"github.com/kashann/aldente-restaurant/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, hub *ws.EventHub) {
	// Repositories / Services
	tableRepo := repository.NewTableRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	tableSvc := services.NewTableService(tableRepo, orderRepo, hub)
	orderSvc := services.NewOrderService(orderRepo, tableRepo, hub)
	hub.Kitchen = orderSvc

	// Controllers
	tableCtrl := controllers.NewTableController(tableSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "connected": hub.Connected()})
	})
	r.GET("/ws", hub.HandleWebSocket)

	// ล้างแล้วสร้าง schema ใหม่ (จอครัวกดตอนเปิดร้าน)
	r.GET("/create", func(c *gin.Context) {
		if err := configs.ResetDatabase(db); err != nil {
			resp.ServerError(c, err)
			return
		}
		resp.Created(c, nil)
	})

	r.GET("/orders", orderCtrl.ListAll)

	// Tables
	r.GET("/tables", tableCtrl.List)
	r.POST("/tables", tableCtrl.Create)
	r.GET("/tables/waiter/:wid", tableCtrl.GetByWaiter)
	r.GET("/tables/:id", tableCtrl.GetByNumber)
	r.PUT("/tables/:id", tableCtrl.Update)
	r.DELETE("/tables/:id", tableCtrl.Delete)

	// Orders of a table
	r.GET("/tables/:id/orders", orderCtrl.ListByTable)
	r.POST("/tables/:id/orders", orderCtrl.Place)
	r.DELETE("/tables/:id/orders", orderCtrl.DeleteByTable)
	r.GET("/tables/:id/orders/:oid", orderCtrl.GetOne)
	r.PUT("/tables/:id/orders/:oid", orderCtrl.UpdateServed)
	r.DELETE("/tables/:id/orders/:oid", orderCtrl.DeleteOne)
}
