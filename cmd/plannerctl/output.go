package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"mealplanner/internal/client/resource"
	"mealplanner/internal/delivery/api/dto"
)

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
}

func printSource(name string, source resource.Source) {
	if source != resource.SourceRemote {
		fmt.Fprintf(os.Stderr, "(%s: showing %s data)\n", name, source)
	}
}

func printMealPlans(plans []dto.MealPlanResponse) {
	w := newTable()
	fmt.Fprintln(w, "ID\tDATE\tWEEKDAY\tSESSIONS")
	for _, plan := range plans {
		sessions := make([]string, 0, len(plan.Sessions))
		for _, session := range plan.Sessions {
			menus := make([]string, 0, len(session.Menus))
			for _, menu := range session.Menus {
				menus = append(menus, menu.Name)
			}
			sessions = append(sessions, fmt.Sprintf("%s: %s", session.Mealtime, strings.Join(menus, ", ")))
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", plan.ID, plan.Date, plan.Weekday, strings.Join(sessions, "; "))
	}
	_ = w.Flush()
}

func printShoppingLogs(logs []dto.ShoppingLogResponse) {
	w := newTable()
	fmt.Fprintln(w, "ID\tDATE\tTOPIC\tSTORE\tSTATUS\tITEMS\tTOTAL")
	for _, l := range logs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%.2f\n", l.ID, l.Date, l.Topic, l.StoreName, l.Status, len(l.Details), l.TotalAmount)
	}
	_ = w.Flush()
}

func printShoppingDetails(details []dto.ShoppingDetailResponse) {
	if len(details) == 0 {
		return
	}

	w := newTable()
	fmt.Fprintln(w, "ID\tITEM\tQTY\tUNIT\tUNIT COST\tLINE\tCHECKED")
	for _, d := range details {
		fmt.Fprintf(w, "%s\t%s\t%g\t%s\t%.2f\t%.2f\t%t\n", d.ID, d.ItemName, d.Quantity, d.Unit, d.UnitCost, d.LineCost, d.IsChecked)
	}
	_ = w.Flush()
}

func printSnacks(snacks []dto.SnackResponse) {
	w := newTable()
	fmt.Fprintln(w, "ID\tDATE\tITEM\tPLACE\tAMOUNT")
	for _, s := range snacks {
		place := ""
		if s.Place != nil {
			place = *s.Place
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f\n", s.ID, s.Date, s.ItemName, place, s.Amount)
	}
	_ = w.Flush()
}
