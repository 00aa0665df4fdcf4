package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/xtding233/lotto-predictor/internal/game"
	"github.com/xtding233/lotto-predictor/internal/lotto"
	"github.com/xtding233/lotto-predictor/internal/predict"
	"github.com/xtding233/lotto-predictor/internal/rpc"
)

var (
	flagProfile  string
	flagStrategy string
	flagN        int
	flagConfig   string
	flagRemote   string
	flagSimulate int
)

func main() {
	flag.StringVar(&flagProfile, "profile", "A", "game profile id or alias")
	flag.StringVar(&flagStrategy, "strategy", "", "time_seeded, frequency_weighted or uniform_random (default: profile default)")
	flag.IntVar(&flagN, "n", 1, "number of draws")
	flag.StringVar(&flagConfig, "config", "", "directory with games/*.yaml profile files")
	flag.StringVar(&flagRemote, "remote", "", "gRPC address of a running server; draws locally when empty")
	flag.IntVar(&flagSimulate, "simulate", 0, "run this many trials and print number frequencies instead of drawing")
	flag.Parse()

	if err := checkFlags(flagN, flagSimulate, flagRemote, flagConfig); err != nil {
		log.Fatalf("%v", err)
	}

	var draw func() (lotto.DrawResult, error)
	if flagRemote != "" {
		conn, err := grpc.NewClient(flagRemote, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			log.Fatalf("failed to connect to %s: %v", flagRemote, err)
		}
		defer conn.Close()
		client := rpc.NewClient(conn)
		draw = func() (lotto.DrawResult, error) {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return client.Predict(ctx, flagProfile, flagStrategy)
		}
	} else {
		catalog, err := game.NewCatalog(game.NewLoader(flagConfig))
		if err != nil {
			log.Fatalf("failed to load profiles: %v", err)
		}
		svc := predict.NewService(lotto.NewEngine(nil, nil), catalog, nil)
		if flagSimulate > 0 {
			simulate(svc)
			return
		}
		draw = func() (lotto.DrawResult, error) {
			return svc.Predict(flagProfile, flagStrategy)
		}
	}

	var bar *progressbar.ProgressBar
	if flagN > 1 {
		bar = progressbar.Default(int64(flagN))
	}
	results, err := drawAll(flagN, draw, bar)
	if err != nil {
		log.Fatalf("prediction failed: %v", err)
	}

	for _, r := range results {
		line := fmt.Sprintf("%s %-18s %s", r.Profile, r.Strategy, r.Format())
		if r.Seed != nil {
			line += fmt.Sprintf("  (seed %08d)", *r.Seed)
		}
		fmt.Println(line)
	}
}

// drawAll calls draw n times, advancing bar (if any) after each result.
func drawAll(n int, draw func() (lotto.DrawResult, error), bar *progressbar.ProgressBar) ([]lotto.DrawResult, error) {
	results := make([]lotto.DrawResult, 0, n)
	for i := 0; i < n; i++ {
		r, err := draw()
		if err != nil {
			return nil, err
		}
		results = append(results, r)
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	return results, nil
}

// checkFlags rejects flag combinations that would otherwise be ignored.
func checkFlags(n, simulate int, remote, configDir string) error {
	if n < 1 {
		return errors.New("-n must be >= 1")
	}
	if simulate < 0 {
		return errors.New("-simulate must be >= 0")
	}
	if remote != "" && simulate > 0 {
		return errors.New("-simulate runs locally and cannot be combined with -remote")
	}
	if remote != "" && configDir != "" {
		return errors.New("-config is read by the server and cannot be combined with -remote")
	}
	return nil
}

func simulate(svc *predict.Service) {
	log.Printf("Simulating %d draws of %s...", flagSimulate, flagProfile)
	f, err := svc.Simulate(flagProfile, flagStrategy, flagSimulate)
	if err != nil {
		log.Fatalf("simulation failed: %v", err)
	}
	fmt.Fprintf(os.Stdout, "%s %s over %d trials\n", f.Profile, f.Strategy, f.Trials)
	fmt.Fprintf(os.Stdout, "hottest: %v\n", f.Hottest(10))
	s := f.MainStats
	fmt.Fprintf(os.Stdout, "hits per number: mean %.1f stddev %.1f p50 %.0f p90 %.0f p99 %.0f\n", s.Mean, s.StdDev, s.P50, s.P90, s.P99)
}
