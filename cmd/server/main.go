package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"pokedex/internal/api"
	"pokedex/internal/engine"
)

type Configuration struct {
	DataPath string
	Addr     string
	Rate     float64
	Seed     uint64
}

func main() {
	config := parseArguments()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. Echo starts instantly with the full middleware stack
	e := api.NewEcho(config.Rate)

	// 2. Handler without an engine answers 503 until the load finishes
	h := api.NewHandler(nil)
	h.RegisterRoutes(e)

	g, ctx := errgroup.WithContext(ctx)

	// 3. Load in the background
	g.Go(func() error {
		log.Println("BACKGROUND: Loading pokedex...")
		t0 := time.Now()

		store, err := engine.Load(config.DataPath)
		if err != nil {
			return err
		}
		// The store is read-only; only the random source needs a lock.
		rng := engine.NewLockedRand(engine.NewRand(config.Seed))
		h.SetEngine(engine.New(store, engine.DefaultColumns(), rng))

		log.Printf("BACKGROUND: Load complete in %v. API is fully ready.", time.Since(t0))
		return nil
	})

	// 4. Serve until a signal arrives or the load fails
	g.Go(func() error {
		log.Printf("Server ready on %s (pokedex loading in background...)", config.Addr)
		if err := e.Start(config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

func parseArguments() Configuration {
	var config Configuration

	flag.StringVar(&config.DataPath, "data", "Pokemon.csv", "Path to the pokedex CSV file")
	flag.StringVar(&config.Addr, "addr", ":8080", "Listen address")
	flag.Float64Var(&config.Rate, "rate", 20, "Requests per second allowed per client (0 disables)")
	flag.Uint64Var(&config.Seed, "seed", 0, "Seed for random teams (0 picks one)")

	flag.Parse()

	return config
}
