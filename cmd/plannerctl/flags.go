package main

import (
	"strconv"
	"strings"

	"mealplanner/internal/delivery/api/dto"

	"github.com/pkg/errors"
)

// sessionFlags collects repeated -session "Mealtime:dish,dish" values.
type sessionFlags []dto.SessionRequest

func (s *sessionFlags) String() string {
	parts := make([]string, 0, len(*s))
	for _, session := range *s {
		names := make([]string, 0, len(session.Menus))
		for _, menu := range session.Menus {
			names = append(names, menu.Name)
		}
		parts = append(parts, session.Mealtime+":"+strings.Join(names, ","))
	}

	return strings.Join(parts, " ")
}

func (s *sessionFlags) Set(value string) error {
	mealtime, dishes, _ := strings.Cut(value, ":")
	mealtime = strings.TrimSpace(mealtime)
	if mealtime == "" {
		return errors.Errorf("session %q has no mealtime", value)
	}

	session := dto.SessionRequest{Mealtime: mealtime, Menus: []dto.MenuRequest{}}
	for dish := range strings.SplitSeq(dishes, ",") {
		if dish = strings.TrimSpace(dish); dish != "" {
			session.Menus = append(session.Menus, dto.MenuRequest{Name: dish})
		}
	}
	*s = append(*s, session)

	return nil
}

// itemFlags collects repeated -item "name:quantity:unit:unitCost" values.
// Trailing fields may be omitted; quantity defaults to 1.
type itemFlags []dto.ShoppingDetailRequest

func (f *itemFlags) String() string {
	parts := make([]string, 0, len(*f))
	for _, item := range *f {
		parts = append(parts, item.ItemName)
	}

	return strings.Join(parts, ",")
}

func (f *itemFlags) Set(value string) error {
	fields := strings.Split(value, ":")
	item := dto.ShoppingDetailRequest{ItemName: strings.TrimSpace(fields[0]), Quantity: 1}
	if item.ItemName == "" {
		return errors.Errorf("item %q has no name", value)
	}

	if len(fields) > 1 && strings.TrimSpace(fields[1]) != "" {
		quantity, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			return errors.Wrapf(err, "item %q: invalid quantity", value)
		}
		item.Quantity = quantity
	}
	if len(fields) > 2 {
		item.Unit = strings.TrimSpace(fields[2])
	}
	if len(fields) > 3 && strings.TrimSpace(fields[3]) != "" {
		cost, err := strconv.ParseFloat(strings.TrimSpace(fields[3]), 64)
		if err != nil {
			return errors.Wrapf(err, "item %q: invalid unit cost", value)
		}
		item.UnitCost = cost
	}
	if len(fields) > 4 {
		return errors.Errorf("item %q has too many fields", value)
	}

	*f = append(*f, item)

	return nil
}
