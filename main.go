package main

import (
	"fmt"
	"log"

	"campuseats/configs"
	"campuseats/repository"
	"campuseats/routes"
	"campuseats/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	configs.SetupDatabase()

	if err := configs.SeedAdmin(); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}

	// vendor order feed
	hub := ws.NewOrderHub(repository.NewStoreRepository(configs.DB()))
	go hub.Run()

	r := gin.Default()
	routes.RegisterRoutes(r, cfg, hub)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("listening on", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
