package main

import (
	"context"
	"flag"
	"fmt"

	"mealplanner/internal/client"
	"mealplanner/internal/delivery/api/dto"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func runShopping(ctx context.Context, ws *client.Workspace, args []string) error {
	cmd := flag.NewFlagSet("shopping", flag.ExitOnError)
	id := cmd.String("id", "", "Show one log with its items")
	if err := cmd.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse shopping flags")
	}

	if *id != "" {
		logID, err := uuid.Parse(*id)
		if err != nil {
			return errors.Wrap(err, "invalid --id")
		}
		shoppingLog, err := ws.ShoppingAPI.Get(ctx, logID)
		if err != nil {
			return err
		}
		printShoppingLogs([]dto.ShoppingLogResponse{*shoppingLog})
		printShoppingDetails(shoppingLog.Details)

		return nil
	}

	if err := ws.ShoppingLogs.Init(ctx); err != nil {
		return err
	}
	printSource(ws.ShoppingLogs.Name(), ws.ShoppingLogs.Source())
	printShoppingLogs(ws.ShoppingLogs.Items())

	return nil
}

func runShoppingAdd(ctx context.Context, ws *client.Workspace, args []string) error {
	cmd := flag.NewFlagSet("shopping-add", flag.ExitOnError)
	topic := cmd.String("topic", "", "What the trip is for")
	store := cmd.String("store", "", "Store name")
	date := cmd.String("date", "", "Shopping date (YYYY-MM-DD)")
	status := cmd.String("status", "Planned", "Planned or Done")
	total := cmd.Float64("total", -1, "Total amount, only used when no items are given")
	var items itemFlags
	cmd.Var(&items, "item", `Item as "name:quantity:unit:unitCost" (repeatable)`)
	if err := cmd.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse shopping-add flags")
	}
	if *topic == "" || *date == "" {
		return errors.New("--topic and --date are required")
	}

	req := &dto.CreateShoppingLogRequest{
		Topic:     *topic,
		StoreName: *store,
		Date:      *date,
		Status:    *status,
		Details:   items,
	}
	if *total >= 0 {
		req.TotalAmount = total
	}

	var created *dto.ShoppingLogResponse
	err := ws.ShoppingLogs.Mutate(ctx, func(ctx context.Context) error {
		var err error
		created, err = ws.ShoppingAPI.Create(ctx, req)

		return err
	})
	if created != nil {
		printShoppingLogs([]dto.ShoppingLogResponse{*created})
	}

	return err
}

func runDetailAdd(ctx context.Context, ws *client.Workspace, args []string) error {
	cmd := flag.NewFlagSet("detail-add", flag.ExitOnError)
	id := cmd.String("log", "", "Shopping log ID")
	var items itemFlags
	cmd.Var(&items, "item", `Item as "name:quantity:unit:unitCost" (repeatable)`)
	if err := cmd.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse detail-add flags")
	}

	logID, err := uuid.Parse(*id)
	if err != nil {
		return errors.Wrap(err, "invalid --log")
	}
	if len(items) == 0 {
		return errors.New("at least one --item is required")
	}

	var added []dto.ShoppingDetailResponse
	err = ws.ShoppingLogs.Mutate(ctx, func(ctx context.Context) error {
		var err error
		added, err = ws.ShoppingAPI.AddDetails(ctx, logID, &dto.CreateShoppingDetailsRequest{Details: items})

		return err
	})
	printShoppingDetails(added)

	return err
}

func runDetailCheck(ctx context.Context, ws *client.Workspace, args []string) error {
	cmd := flag.NewFlagSet("detail-check", flag.ExitOnError)
	id := cmd.String("detail", "", "Shopping detail ID")
	unchecked := cmd.Bool("unchecked", false, "Untick instead of tick")
	if err := cmd.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse detail-check flags")
	}

	detailID, err := uuid.Parse(*id)
	if err != nil {
		return errors.Wrap(err, "invalid --detail")
	}

	checked := !*unchecked
	var updated *dto.ShoppingDetailResponse
	err = ws.ShoppingLogs.Mutate(ctx, func(ctx context.Context) error {
		var err error
		updated, err = ws.ShoppingAPI.UpdateDetail(ctx, detailID, &dto.UpdateShoppingDetailRequest{IsChecked: &checked})

		return err
	})
	if updated != nil {
		fmt.Printf("%s checked=%t\n", updated.ItemName, updated.IsChecked)
	}

	return err
}
