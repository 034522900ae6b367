package main

import (
	"context"
	"log"

	"github.com/reddsec/scoreboard/internal/server"
	"github.com/reddsec/scoreboard/internal/server/config"
)

func main() {
	cfg := config.LoadConfig()

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Fatalf("startup: %v", err)
	}

	app.Run(context.Background())
}
