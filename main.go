package main

import (
	"fmt"
	"log"

	"github.com/kashann/aldente-restaurant/configs"
	"github.com/kashann/aldente-restaurant/middlewares"
	"github.com/kashann/aldente-restaurant/routes"
	"github.com/kashann/aldente-restaurant/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	// Notification hub
	hub := ws.NewEventHub()
	go hub.Run()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, hub)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("🚀 Server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
