package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"

	"filmgram/cli"
	"filmgram/config"
	"filmgram/telegram"
	"filmgram/tmdb"

	"github.com/gorilla/mux"
)

type Server struct {
	config    *config.Config
	tmdb      *tmdb.Client
	providers *tmdb.ProviderCache
	router    *mux.Router
}

func main() {
	cliMode := flag.Bool("cli", false, "run the interactive search prompt instead of the bot")
	flag.Parse()

	cfg := config.Load()

	client := tmdb.NewClient(cfg.TMDBToken,
		tmdb.WithRegion(cfg.WatchRegion),
		tmdb.WithLanguage(cfg.Language),
	)
	providers := tmdb.NewProviderCache(client)

	if *cliMode {
		if err := cli.Run(context.Background(), client, os.Stdin, os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}

	if cfg.TelegramToken == "" {
		log.Fatal("TELEGRAM_TOKEN is required")
	}

	if _, err := telegram.InitBot(cfg, client, providers); err != nil {
		log.Fatal("Failed to initialize Telegram bot:", err)
	}

	server := &Server{
		config:    cfg,
		tmdb:      client,
		providers: providers,
		router:    mux.NewRouter(),
	}

	server.setupRoutes()

	log.Printf("→ Server starting on port %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, server.router))
}

func (s *Server) setupRoutes() {
	s.router.Use(loggingMiddleware)
	s.router.Use(enableCORS)

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/search", s.handleSearch).Methods("GET")
	api.HandleFunc("/movie/{id:[0-9]+}", s.handleMovieDetails).Methods("GET")
	api.HandleFunc("/tv/{id:[0-9]+}", s.handleTVDetails).Methods("GET")
	api.HandleFunc("/{type:movie|tv}/{id:[0-9]+}/providers", s.handleWatchProviders).Methods("GET")
	api.HandleFunc("/providers/{type:movie|tv}", s.handleProviderCatalog).Methods("GET")
	api.HandleFunc("/imdb/{imdb_id}", s.handleIMDBRating).Methods("GET")
}
