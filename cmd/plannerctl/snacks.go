package main

import (
	"context"
	"flag"

	"mealplanner/internal/client"
	"mealplanner/internal/delivery/api/dto"

	"github.com/pkg/errors"
)

func runSnacks(ctx context.Context, ws *client.Workspace, args []string) error {
	cmd := flag.NewFlagSet("snacks", flag.ExitOnError)
	from := cmd.String("from", "", "Range start (YYYY-MM-DD)")
	to := cmd.String("to", "", "Range end (YYYY-MM-DD)")
	if err := cmd.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse snacks flags")
	}

	if *from != "" || *to != "" {
		snacks, err := ws.SnackAPI.List(ctx, *from, *to)
		if err != nil {
			return err
		}
		printSnacks(snacks)

		return nil
	}

	if err := ws.Snacks.Init(ctx); err != nil {
		return err
	}
	printSource(ws.Snacks.Name(), ws.Snacks.Source())
	printSnacks(ws.Snacks.Items())

	return nil
}

func runSnackAdd(ctx context.Context, ws *client.Workspace, args []string) error {
	cmd := flag.NewFlagSet("snack-add", flag.ExitOnError)
	date := cmd.String("date", "", "Date (YYYY-MM-DD)")
	item := cmd.String("item", "", "What you ate")
	place := cmd.String("place", "", "Where you bought it")
	amount := cmd.Float64("amount", 0, "Amount spent")
	note := cmd.String("note", "", "Free-form note")
	if err := cmd.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse snack-add flags")
	}
	if *date == "" || *item == "" {
		return errors.New("--date and --item are required")
	}

	req := &dto.SnackRequest{
		Date:     *date,
		ItemName: *item,
		Place:    optional(*place),
		Amount:   *amount,
		Note:     optional(*note),
	}

	var created *dto.SnackResponse
	err := ws.Snacks.Mutate(ctx, func(ctx context.Context) error {
		var err error
		created, err = ws.SnackAPI.Create(ctx, req)

		return err
	})
	if created != nil {
		printSnacks([]dto.SnackResponse{*created})
	}

	return err
}

func optional(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
