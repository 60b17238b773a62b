package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"net/http/pprof"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hylla/browse/pkg/common"
	"github.com/hylla/browse/pkg/server"
	"github.com/hylla/browse/pkg/shopapi"
	"github.com/hylla/browse/pkg/tracking"
)

var enableProfiling = flag.Bool("profiling", false, "enable profiling endpoints")
var configPath = flag.String("config", "browse.toml", "path to the config file")

func main() {
	_ = godotenv.Load()
	flag.Parse()

	cfg := LoadConfig(*configPath)
	if cfg.ShopApiUrl == "" {
		log.Fatalf("No shop api url provided")
	}

	redisUrl := os.Getenv("REDIS_URL")
	redisPassword := os.Getenv("REDIS_PASSWORD")
	rabbitUrl := os.Getenv("RABBIT_URL")
	country := os.Getenv("COUNTRY")

	srv := server.WebServer{
		Client:  shopapi.NewHttpClient(cfg.ShopApiUrl, time.Duration(cfg.RequestTimeout)*time.Second),
		Options: cfg.Facets,
	}

	if redisUrl != "" {
		srv.Cache = server.NewCache(redisUrl, redisPassword, 0)
		log.Printf("Lookup cache enabled, url: %s", redisUrl)
	}

	if rabbitUrl != "" {
		trk, err := tracking.NewRabbitTracking(rabbitUrl, country)
		if err != nil {
			log.Fatalf("Failed to create rabbit tracking: %v", err)
		}
		srv.Tracking = trk
	}

	debugMux := http.NewServeMux()
	debugMux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	debugMux.Handle("/metrics", promhttp.Handler())
	if *enableProfiling {
		log.Println("Profiling enabled")
		debugMux.HandleFunc("/debug/pprof/", pprof.Index)
		debugMux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
		debugMux.HandleFunc("/debug/pprof/profile", pprof.Profile)
		debugMux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
		debugMux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	}
	go func() {
		log.Printf("Starting debug server %v", cfg.DebugListen)
		log.Fatal(http.ListenAndServe(cfg.DebugListen, debugMux))
	}()

	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", srv.ClientHandler()))

	timeouts := common.LoadTimeoutConfig(common.TimeoutConfig{
		ReadHeader: 5 * time.Second,
		Read:       30 * time.Second,
		Write:      30 * time.Second,
		Idle:       60 * time.Second,
		Shutdown:   15 * time.Second,
	})
	apiServer := &http.Server{
		Addr:              cfg.Listen,
		Handler:           mux,
		ReadHeaderTimeout: timeouts.ReadHeader,
		ReadTimeout:       timeouts.Read,
		WriteTimeout:      timeouts.Write,
		IdleTimeout:       timeouts.Idle,
	}

	common.RunServerWithShutdown(apiServer, "browse api", timeouts.Shutdown, func(ctx context.Context) error {
		if srv.Tracking != nil {
			return srv.Tracking.Close()
		}
		return nil
	})
}
