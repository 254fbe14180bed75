// README: One-shot CLI; runs a single query through the assistant and prints the envelope.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"compass/internal/app"
	"compass/internal/config"
	"compass/internal/logger"
	"compass/internal/service"
)

func main() {
	location := flag.String("location", "", "location hint, free text or \"lat,lng\"")
	origin := flag.String("origin", "", "directions origin")
	destination := flag.String("destination", "", "directions destination")
	flag.Parse()

	query := strings.Join(flag.Args(), " ")
	if query == "" {
		fmt.Fprintln(os.Stderr, "usage: assist [-location L] [-origin O -destination D] <query>")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	zl, err := logger.New(cfg.Env, cfg.Log.Level)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()

	ctx := context.Background()
	services, err := app.Build(ctx, cfg, zl)
	if err != nil {
		log.Fatalf("Failed to initialize services: %v", err)
	}
	defer services.Close()

	env, err := services.Assistant.Handle(ctx, service.Query{
		Text:        query,
		Location:    *location,
		Origin:      *origin,
		Destination: *destination,
	})
	if err != nil {
		log.Fatalf("Error handling query: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(env); err != nil {
		log.Fatal(err)
	}
}
