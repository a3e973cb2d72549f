// Cleanup utility — destructive maintenance over the Elephantasm database.
// Purges all entity data for one user, or every record created after a
// cutoff timestamp. Dry-run by default; pass --yes to actually delete.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/hejijunhao/elephantasm/pkg/cleanup"
	"github.com/hejijunhao/elephantasm/pkg/database"
)

func main() {
	userEmail := flag.String("user-email", "", "Purge all entity data owned by this user (user row survives)")
	cutoff := flag.String("cutoff", "", "Purge all records created after this RFC3339 timestamp")
	confirm := flag.Bool("yes", false, "Actually delete; without this flag only counts are printed")
	envFile := flag.String("env-file", ".env", "Path to environment file")
	flag.Parse()

	if (*userEmail == "") == (*cutoff == "") {
		fmt.Fprintln(os.Stderr, "exactly one of --user-email or --cutoff is required")
		flag.Usage()
		os.Exit(2)
	}

	if err := godotenv.Load(*envFile); err != nil {
		slog.Warn("Could not load env file, continuing with existing environment",
			"path", *envFile, "error", err)
	}

	ctx := context.Background()

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()

	purger := cleanup.NewPurger(dbClient.Client)
	dryRun := !*confirm

	var results []cleanup.TableCount
	switch {
	case *userEmail != "":
		results, err = purger.PurgeUser(ctx, *userEmail, dryRun)
	default:
		var ts time.Time
		ts, err = time.Parse(time.RFC3339, *cutoff)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid --cutoff %q: %v\n", *cutoff, err)
			os.Exit(2)
		}
		results, err = purger.PurgeAfter(ctx, ts, dryRun)
	}
	if err != nil {
		slog.Error("Purge failed", "error", err)
		os.Exit(1)
	}

	verb := "deleted"
	if dryRun {
		verb = "would delete"
	}
	total := 0
	for _, r := range results {
		fmt.Printf("%-22s %s %d rows\n", r.Table, verb, r.Count)
		total += r.Count
	}
	fmt.Printf("%-22s %s %d rows\n", "total", verb, total)
	if dryRun {
		fmt.Println("\ndry run — re-run with --yes to delete")
	}
}
