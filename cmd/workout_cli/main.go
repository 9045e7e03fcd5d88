package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/2beens/undergroundgym/internal/logging"
	"github.com/2beens/undergroundgym/internal/workout"
	"github.com/2beens/undergroundgym/internal/workout/apiclient"

	log "github.com/sirupsen/logrus"
)

func main() {
	apiURL := flag.String("api", "http://localhost:8000", "base URL of the workout API")
	dropDuplicates := flag.Bool("drop-duplicates", false, "list an exercise reachable from two muscle groups only once")
	logLevel := flag.String("log-level", "warn", "log level")
	flag.Parse()

	logging.Setup(logging.LoggerSetupParams{
		LogToStdout: true,
		LogLevel:    *logLevel,
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	opts := workout.WorklistOptions{Duplicates: workout.DuplicatesKeep}
	if *dropDuplicates {
		opts.Duplicates = workout.DuplicatesDrop
	}

	r := newRunner(apiclient.NewClient(*apiURL, nil), os.Stdout, opts)
	if err := r.Run(ctx, os.Stdin); err != nil {
		log.Errorf("workout cli: %s", err)
		os.Exit(1)
	}
	fmt.Println("bye")
}
