package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"mealplanner/internal/client"
)

func runSync(ctx context.Context, ws *client.Workspace, _ []string) error {
	if err := ws.InitAll(ctx); err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RESOURCE\tSOURCE\tITEMS")
	fmt.Fprintf(w, "%s\t%s\t%d\n", ws.MealPlans.Name(), ws.MealPlans.Source(), len(ws.MealPlans.Items()))
	fmt.Fprintf(w, "%s\t%s\t%d\n", ws.ShoppingLogs.Name(), ws.ShoppingLogs.Source(), len(ws.ShoppingLogs.Items()))
	fmt.Fprintf(w, "%s\t%s\t%d\n", ws.Snacks.Name(), ws.Snacks.Source(), len(ws.Snacks.Items()))

	return w.Flush()
}
