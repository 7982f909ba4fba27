package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/mihirp/lostfound/internal/ai"
	"github.com/mihirp/lostfound/internal/config"
	"github.com/mihirp/lostfound/internal/db"
	"github.com/mihirp/lostfound/internal/model"
	"github.com/mihirp/lostfound/internal/repository"
	"github.com/mihirp/lostfound/internal/service"
)

// Seeds a handful of sample reports through the real submission path so a
// fresh database has tagged, browsable data.
func main() {
	if err := run(); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}

func run() error {
	ctx := context.Background()
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	conn, err := db.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	if err := conn.AutoMigrate(&model.Item{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	itemRepo := repository.NewItemRepository(conn)
	tagger := ai.NewClassifier(cfg.HFAPIKey, cfg.HFModel, nil)
	reports := service.NewReportService(itemRepo, nil, tagger)

	samples := []service.SubmitInput{
		{
			ItemType:    model.ItemTypeLost,
			ItemName:    "Blue Backpack",
			Description: "Navy blue backpack with a laptop sleeve and a water bottle pocket.",
			Location:    "Library 2nd floor",
			ContactInfo: "555-0100",
		},
		{
			ItemType:    model.ItemTypeFound,
			ItemName:    "Silver Wristwatch",
			Description: "Analog watch with a leather strap, found near the gym entrance.",
			Location:    "Sports hall",
			ContactInfo: "found-desk@campus.example",
		},
		{
			ItemType:    model.ItemTypeLost,
			ItemName:    "Student ID Card",
			Description: "ID card in a red plastic holder.",
			Location:    "Cafeteria",
			ContactInfo: "555-0133",
		},
		{
			ItemType:    model.ItemTypeFound,
			ItemName:    "Black Umbrella",
			Description: "",
			Location:    "Bus stop by the main gate",
			ContactInfo: "555-0177",
		},
	}

	for _, in := range samples {
		item, err := reports.Submit(ctx, in)
		if err != nil {
			return fmt.Errorf("submit %q: %w", in.ItemName, err)
		}
		log.Printf("seeded id=%d name=%q tag=%q", item.ID, item.ItemName, item.Tag)
	}

	log.Printf("seeded %d reports", len(samples))
	return nil
}
