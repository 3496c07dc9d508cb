package main

import (
	"context"
	"flag"
	"time"

	"mealplanner/internal/client"
	"mealplanner/internal/delivery/api/dto"

	"github.com/pkg/errors"
)

func runPlans(ctx context.Context, ws *client.Workspace, args []string) error {
	cmd := flag.NewFlagSet("plans", flag.ExitOnError)
	date := cmd.String("date", "", "Only plans on this date (YYYY-MM-DD)")
	from := cmd.String("from", "", "Range start (YYYY-MM-DD)")
	to := cmd.String("to", "", "Range end (YYYY-MM-DD)")
	if err := cmd.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse plans flags")
	}

	switch {
	case *date != "":
		plans, err := ws.MealPlanAPI.ByDate(ctx, *date)
		if err != nil {
			return err
		}
		printMealPlans(plans)
	case *from != "" || *to != "":
		if *from == "" || *to == "" {
			return errors.New("--from and --to must be given together")
		}
		plans, err := ws.MealPlanAPI.ByRange(ctx, *from, *to)
		if err != nil {
			return err
		}
		printMealPlans(plans)
	default:
		if err := ws.MealPlans.Init(ctx); err != nil {
			return err
		}
		printSource(ws.MealPlans.Name(), ws.MealPlans.Source())
		printMealPlans(ws.MealPlans.Items())
	}

	return nil
}

func runPlanAdd(ctx context.Context, ws *client.Workspace, args []string) error {
	cmd := flag.NewFlagSet("plan-add", flag.ExitOnError)
	date := cmd.String("date", "", "Plan date (YYYY-MM-DD)")
	weekday := cmd.String("weekday", "", "Weekday label (defaults to the date's weekday)")
	var sessions sessionFlags
	cmd.Var(&sessions, "session", `Mealtime and dishes, e.g. "Lunch:Nasi goreng,Es teh" (repeatable)`)
	if err := cmd.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse plan-add flags")
	}
	if *date == "" {
		return errors.New("--date is required")
	}
	if *weekday == "" {
		parsed, err := time.Parse(time.DateOnly, *date)
		if err != nil {
			return errors.Wrap(err, "invalid --date")
		}
		*weekday = parsed.Weekday().String()
	}

	req := &dto.MealPlanRequest{Date: *date, Weekday: *weekday, Sessions: sessions}

	var created *dto.MealPlanResponse
	err := ws.MealPlans.Mutate(ctx, func(ctx context.Context) error {
		var err error
		created, err = ws.MealPlanAPI.Create(ctx, req)

		return err
	})
	if created != nil {
		printMealPlans([]dto.MealPlanResponse{*created})
	}

	return err
}
