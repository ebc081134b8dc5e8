// cmd/discord/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ffinfo/internal/access"
	"ffinfo/internal/config"
	"ffinfo/internal/cooldown"
	"ffinfo/internal/discord"
	"ffinfo/internal/ffapi"
	"ffinfo/internal/imaging"
	"ffinfo/internal/pipeline"
	"ffinfo/internal/storage"
	v "ffinfo/internal/version"
)

func main() {
	log.Printf("[INFO] Starting %v bot...", v.AppName)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.New()

	store, err := storage.New(cfg.StoragePath)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	tracker := cooldown.NewTracker()
	go cooldown.RunCleaner(ctx, tracker, 1*time.Minute, 1*time.Hour)

	client := ffapi.NewClient(
		&http.Client{Timeout: cfg.UpstreamTimeout},
		cfg.InfoAPIURL,
		cfg.OutfitAPIURL,
		cfg.ProfileCardAPIURL,
	)

	pl := pipeline.New(
		access.New(store, tracker),
		client,
		imaging.ForCapability(cfg.ImageComposition),
	)

	errCh := make(chan error, 1)
	go func() {
		if err := discord.StartBot(ctx, cfg, store, pl); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Printf("[INFO] Received signal %s, shutting down...\n", s)
		cancel()
	case err := <-errCh:
		if err != nil {
			log.Println("[ERR] Discord bot error:", err)
		}
		cancel()
	case <-ctx.Done():
	}

	log.Println("[INFO] Discord bot exited cleanly")
}
