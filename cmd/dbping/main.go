// Command dbping checks that the configured MongoDB deployment is reachable
// and reports how many documents each API collection holds.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"

	"crowdcube/internal/domain"
	"crowdcube/internal/infra"
)

func main() {
	var (
		envFile    string
		timeout    time.Duration
		skipCounts bool
	)
	flag.StringVar(&envFile, "env", ".env", "optional env file to load before reading configuration")
	flag.DurationVar(&timeout, "timeout", 10*time.Second, "overall timeout")
	flag.BoolVar(&skipCounts, "no-counts", false, "only ping, do not count documents")
	flag.Parse()

	_ = godotenv.Load(envFile)

	if err := run(timeout, skipCounts); err != nil {
		exitWithError(err)
	}
}

// run owns the client so it is disconnected on every return path.
func run(timeout time.Duration, skipCounts bool) error {
	cfg, err := infra.LoadConfig()
	if err != nil {
		return err
	}
	if cfg.MemoryStore {
		return errors.New("MEMORY_STORE is enabled, nothing to ping")
	}
	cfg.MongoTimeout = timeout

	logger := infra.NewLogger("cli").With().Str("cmd", "dbping").Logger()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	start := time.Now()
	client, err := infra.NewMongoClient(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			logger.Error().Err(err).Msg("disconnect failed")
		}
	}()
	logger.Info().Dur("took", time.Since(start)).Msg("ping ok")

	fmt.Printf("Pinged %s, database %s is reachable\n", cfg.DBHost, cfg.DBName)
	if skipCounts {
		return nil
	}

	db := client.Database(cfg.DBName)
	for _, name := range []string{domain.CollectionCampaigns, domain.CollectionUsers, domain.CollectionDonations} {
		n, err := db.Collection(name).CountDocuments(ctx, bson.D{})
		if err != nil {
			return fmt.Errorf("count %s: %w", name, err)
		}
		fmt.Printf("%s=%d\n", name, n)
	}
	return nil
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
