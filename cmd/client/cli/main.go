package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/mertsakar/wantmart/internal/client/cli"
	"github.com/mertsakar/wantmart/internal/client/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
