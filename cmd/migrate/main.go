package main

import (
	"flag"
	"fmt"
	"os"

	"mealplanner/config"
	"mealplanner/internal/infra/persistence/migrations"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - up:      apply all pending migrations
// - down:    roll back migrations
// - version: print the current schema version

func main() {
	upCmd := flag.NewFlagSet("up", flag.ExitOnError)
	upURL := upCmd.String("database-url", "", "postgres:// URL (defaults to migration.databaseUrl from config)")

	downCmd := flag.NewFlagSet("down", flag.ExitOnError)
	downURL := downCmd.String("database-url", "", "postgres:// URL (defaults to migration.databaseUrl from config)")
	downSteps := downCmd.Int("steps", 1, "Number of migrations to roll back (0 rolls back everything)")

	versionCmd := flag.NewFlagSet("version", flag.ExitOnError)
	versionURL := versionCmd.String("database-url", "", "postgres:// URL (defaults to migration.databaseUrl from config)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "up":
		err = runUp(upCmd, upURL)
	case "down":
		err = runDown(downCmd, downURL, downSteps)
	case "version":
		err = runVersion(versionCmd, versionURL)
	default:
		printUsage()
		err = errors.New("unknown subcommand")
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runUp(cmd *flag.FlagSet, url *string) error {
	databaseURL, err := parse(cmd, url)
	if err != nil {
		return err
	}

	if err := migrations.Up(databaseURL); err != nil {
		return err
	}
	fmt.Println("Migrations applied")

	return nil
}

func runDown(cmd *flag.FlagSet, url *string, steps *int) error {
	databaseURL, err := parse(cmd, url)
	if err != nil {
		return err
	}

	if err := migrations.Down(databaseURL, *steps); err != nil {
		return err
	}
	fmt.Println("Migrations rolled back")

	return nil
}

func runVersion(cmd *flag.FlagSet, url *string) error {
	databaseURL, err := parse(cmd, url)
	if err != nil {
		return err
	}

	version, dirty, err := migrations.Version(databaseURL)
	if err != nil {
		return err
	}
	fmt.Printf("version=%d dirty=%t\n", version, dirty)

	return nil
}

func parse(cmd *flag.FlagSet, url *string) (string, error) {
	if err := cmd.Parse(os.Args[2:]); err != nil {
		return "", errors.Wrapf(err, "failed to parse %s flags", cmd.Name())
	}

	if *url != "" {
		return *url, nil
	}

	cfg, err := config.New()
	if err != nil {
		return "", errors.Wrap(err, "failed to load config")
	}
	if cfg.Migration == nil || cfg.Migration.DatabaseURL == "" {
		return "", errors.New("--database-url flag or migration.databaseUrl config is required")
	}

	return cfg.Migration.DatabaseURL, nil
}

func printUsage() {
	fmt.Println("Usage: migrate <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  up        Apply all pending migrations")
	fmt.Println("  down      Roll back migrations (--steps, default 1)")
	fmt.Println("  version   Print the current schema version")
}
