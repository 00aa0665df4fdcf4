package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/xtding233/lotto-predictor/internal/config"
	"github.com/xtding233/lotto-predictor/internal/game"
	"github.com/xtding233/lotto-predictor/internal/lotto"
	"github.com/xtding233/lotto-predictor/internal/metrics"
	"github.com/xtding233/lotto-predictor/internal/predict"
	"github.com/xtding233/lotto-predictor/internal/rpc"
	"github.com/xtding233/lotto-predictor/internal/server"
)

func main() {
	if config.WantsHelp(os.Args[1:]) {
		if err := config.Usage(os.Stderr); err != nil {
			log.Fatal(err)
		}
		return
	}
	conf, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %s", err)
	}
	log.Printf("%#v", &conf)

	catalog, err := game.NewCatalog(game.NewLoader(conf.ConfigDir))
	if err != nil {
		log.Fatalf("failed to load profiles: %s", err)
	}
	log.Printf("profiles %v (version %s)", catalog.IDs(), catalog.Version())

	var m *metrics.Metrics
	if conf.Metrics {
		m = metrics.New()
	}
	svc := predict.NewService(lotto.NewEngine(nil, nil), catalog, m)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go game.WatchCatalog(ctx, catalog, conf.WatchInterval, m.ObserveReload)

	mux := http.NewServeMux()
	server.NewHandler(svc).Register(mux)
	if conf.Metrics {
		mux.Handle("GET /metrics", m.Handler())
		log.Printf("Prometheus metrics: http://%s/metrics", conf.HttpListen)
	}
	httpServer := &http.Server{Addr: conf.HttpListen, Handler: mux}

	if conf.GrpcListen != "" {
		lis, err := net.Listen("tcp", conf.GrpcListen)
		if err != nil {
			log.Fatalf("failed to listen for gRPC: %s", err)
		}
		gs := rpc.NewServer(svc)
		go func() {
			log.Printf("gRPC %s listening on %s", rpc.ServiceName, lis.Addr())
			if err := gs.Serve(lis); err != nil {
				log.Printf("gRPC server stopped: %s", err)
			}
		}()
		defer gs.GracefulStop()
	}

	go func() {
		<-ctx.Done()
		log.Println("Received shutdown signal. Shutting down...")
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdown)
	}()

	log.Printf("listening on %s ...", conf.HttpListen)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("oops: %s", err)
	}
}
