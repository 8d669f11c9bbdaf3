package main

import (
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/Domenick1991/airreserve/config"
	"github.com/Domenick1991/airreserve/internal/catalog"
	"github.com/Domenick1991/airreserve/internal/console"
	"github.com/Domenick1991/airreserve/internal/domain"
	"github.com/Domenick1991/airreserve/internal/service/reservation"
	"github.com/Domenick1991/airreserve/internal/store"
	"github.com/Domenick1991/airreserve/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Fatalf("load config: %v", err)
		}
		cfg = config.Default()
	}

	lg, err := logger.New(logger.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	fares := map[domain.Category]float64{
		domain.CategoryDomestic:      cfg.Fares.Domestic,
		domain.CategoryInternational: cfg.Fares.International,
	}
	cat := catalog.New(fares, lg)
	if err := cat.LoadFile(domain.CategoryDomestic, cfg.Flights.DomesticFile); err != nil {
		lg.Warn("could not load domestic flights", logger.Error(err))
	}
	if err := cat.LoadFile(domain.CategoryInternational, cfg.Flights.InternationalFile); err != nil {
		lg.Warn("could not load international flights", logger.Error(err))
	}

	st := store.NewFileStore(cfg.Store.Path, lg)
	svc := reservation.NewService(cat, st, reservation.NewRandomIDGenerator(), lg)

	console.New(cat, svc, os.Stdin, os.Stdout).Run()
}
