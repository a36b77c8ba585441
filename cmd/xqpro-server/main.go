package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/muli0525/xqpro/internal/analysis"
	"github.com/muli0525/xqpro/internal/engine"
	"github.com/muli0525/xqpro/internal/server/httpapi"
	"github.com/muli0525/xqpro/internal/uciengine"
)

func main() {
	addr := flag.String("addr", ":2888", "listen address")
	externalPath := flag.String("external", "", "path to an external UCI engine binary (optional)")
	flag.Parse()

	local := func() analysis.Analyzer { return engine.NewEngine() }

	var external analysis.Analyzer
	if *externalPath != "" {
		client := uciengine.New(*externalPath)
		if err := client.Start(); err != nil {
			log.Fatalf("start external engine: %v", err)
		}
		defer client.Close()
		external = client
		log.Printf("external engine ready: %s", *externalPath)
	}

	h := httpapi.NewHandler(local, external)

	server := &http.Server{
		Addr:    *addr,
		Handler: h.Router(),
	}
	serverErrCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
		}
		close(serverErrCh)
	}()

	log.Printf("listening on %s", *addr)

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case <-sigCtx.Done():
		log.Printf("shutdown signal received")
	case err, ok := <-serverErrCh:
		if ok {
			log.Printf("server error: %v", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
