package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gustavoSo3/adogtame-back/config"
	deps "github.com/gustavoSo3/adogtame-back/internal/debs"
	api "github.com/gustavoSo3/adogtame-back/internal/http/rest"
)

const (
	allowConnectionsAfterShutdown = 1 * time.Second
)

func main() {
	cfg := config.New()
	deps := deps.New(cfg)

	a := &api.API{
		Config: cfg,
		Deps:   deps,
		DB:     deps.Pool(),
	}
	go deps.Feed.Run()
	go func() {
		log.Printf("Server running on port %v ...", cfg.Port)
		log.Fatal(a.Serve())
	}()

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	<-stopChan

	log.Println("Request to shutdown server. Doing nothing for ", allowConnectionsAfterShutdown)
	waitTimer := time.NewTimer(allowConnectionsAfterShutdown)
	<-waitTimer.C

	log.Println("Shutting down server...")

	deps.DB.Close()
	log.Println("Database connections closed.")

	log.Fatal(a.Shutdown())
}
