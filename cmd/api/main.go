package main

import (
	"context"
	"log"

	gcs "cloud.google.com/go/storage"
	"github.com/joho/godotenv"
	"github.com/mihirp/lostfound/internal/ai"
	"github.com/mihirp/lostfound/internal/config"
	"github.com/mihirp/lostfound/internal/db"
	"github.com/mihirp/lostfound/internal/model"
	"github.com/mihirp/lostfound/internal/server"
	"github.com/mihirp/lostfound/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	conn, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}
	if err := conn.AutoMigrate(&model.Item{}); err != nil {
		log.Fatalf("auto migrate error: %v", err)
	}

	// Image hosting is optional; reports are stored without images when
	// the bucket is not configured or the client cannot start.
	var uploader storage.Uploader
	if cfg.StorageBucket != "" {
		client, err := gcs.NewClient(context.Background())
		if err != nil {
			log.Printf("storage client init failed, uploads disabled: %v", err)
		} else {
			uploader = storage.NewUploader(client, cfg.StorageBucket)
		}
	} else {
		log.Printf("STORAGE_BUCKET not set, uploads disabled")
	}

	tagger := ai.NewClassifier(cfg.HFAPIKey, cfg.HFModel, nil)

	srv, err := server.New(conn, uploader, tagger)
	if err != nil {
		log.Fatalf("server init error: %v", err)
	}

	addr := ":" + cfg.Port
	log.Printf("starting server on %s", addr)
	if err := srv.Start(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
