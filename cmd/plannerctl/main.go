package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"mealplanner/config"
	"mealplanner/internal/client"
	"mealplanner/internal/client/notify"
	logs "mealplanner/internal/infra/log"

	"github.com/pkg/errors"
)

type command struct {
	name  string
	usage string
	run   func(ctx context.Context, ws *client.Workspace, args []string) error
}

// Supported subcommands, in usage order.
var commands = []command{
	{name: "register", usage: "Create an account and log in", run: runRegister},
	{name: "login", usage: "Log in and store the session locally", run: runLogin},
	{name: "logout", usage: "Revoke and forget the stored session", run: runLogout},
	{name: "whoami", usage: "Show the logged-in account", run: runWhoami},
	{name: "plans", usage: "List meal plans (-date, or -from/-to)", run: runPlans},
	{name: "plan-add", usage: "Create a meal plan", run: runPlanAdd},
	{name: "shopping", usage: "List shopping logs", run: runShopping},
	{name: "shopping-add", usage: "Create a shopping log", run: runShoppingAdd},
	{name: "detail-add", usage: "Add items to a shopping log", run: runDetailAdd},
	{name: "detail-check", usage: "Tick or untick a shopping item", run: runDetailCheck},
	{name: "snacks", usage: "List snack logs (-from/-to)", run: runSnacks},
	{name: "snack-add", usage: "Record a snack", run: runSnackAdd},
	{name: "sync", usage: "Load every resource and refresh the local cache", run: runSync},
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, name string, args []string) error {
	var cmd *command
	for i := range commands {
		if commands[i].name == name {
			cmd = &commands[i]

			break
		}
	}
	if cmd == nil {
		printUsage()

		return errors.Errorf("unknown subcommand %q", name)
	}

	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	logger, err := logs.NewStderr(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to build logger")
	}

	ws, err := client.Open(cfg.Client, notify.NewLogger(logger), logger)
	if err != nil {
		return errors.Wrap(err, "failed to open local cache")
	}
	defer ws.Close()

	return cmd.run(ctx, ws, args)
}

func printUsage() {
	fmt.Println("Usage: plannerctl <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	for _, cmd := range commands {
		fmt.Printf("  %-14s%s\n", cmd.name, cmd.usage)
	}
	fmt.Println("")
	fmt.Println("Use 'plannerctl <command> -h' for more information about a command.")
}
