package impl

import (
	"strconv"
	"strings"
	"time"

	"mealplanner/internal/domain/entity"
	domainerrors "mealplanner/internal/domain/errors"
	"mealplanner/internal/usecase"

	"github.com/google/uuid"
)

const (
	maxNameLength  = 255
	maxMenusPerRun = 500
)

var weekdayNames = func() map[string]string {
	names := make(map[string]string, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		names[strings.ToLower(d.String())] = d.String()
	}

	return names
}()

// parseDateField parses a YYYY-MM-DD value, recording a field problem when it is absent or malformed.
func parseDateField(verr *domainerrors.ValidationError, field, value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		verr.Add(field, "is required")

		return time.Time{}
	}

	date, err := entity.ParseDate(value)
	if err != nil {
		verr.Add(field, "must be a date in YYYY-MM-DD format")

		return time.Time{}
	}

	return date
}

func normalizeWeekday(verr *domainerrors.ValidationError, value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		verr.Add("weekday", "is required")

		return ""
	}

	name, ok := weekdayNames[strings.ToLower(value)]
	if !ok {
		verr.Add("weekday", "must be a day of the week")

		return ""
	}

	return name
}

func requireText(verr *domainerrors.ValidationError, field, value string) string {
	value = strings.TrimSpace(value)
	switch {
	case value == "":
		verr.Add(field, "is required")
	case len(value) > maxNameLength:
		verr.Add(field, "is too long")
	}

	return value
}

// buildSessions validates the session payload and returns session entities with fresh IDs,
// positions following payload order.
func buildSessions(verr *domainerrors.ValidationError, mealPlanID uuid.UUID, inputs []usecase.SessionInput, firstPosition int) []*entity.Session {
	sessions := make([]*entity.Session, 0, len(inputs))
	menuCount := 0
	for i, in := range inputs {
		field := "sessions[" + strconv.Itoa(i) + "]"
		mealtime := entity.Mealtime(strings.TrimSpace(in.Mealtime))
		if !mealtime.Valid() {
			verr.Add(field+".mealtime", "must be one of Breakfast, Lunch, Dinner, Snack")
		}

		session := &entity.Session{
			ID:         uuid.New(),
			MealPlanID: mealPlanID,
			Mealtime:   mealtime,
			Position:   firstPosition + i,
		}
		session.Menus = buildMenus(verr, field, session.ID, in.Menus, 0)
		menuCount += len(session.Menus)
		sessions = append(sessions, session)
	}
	if menuCount > maxMenusPerRun {
		verr.Add("sessions", "too many menus in one request")
	}

	return sessions
}

func buildMenus(verr *domainerrors.ValidationError, prefix string, sessionID uuid.UUID, inputs []usecase.MenuInput, firstPosition int) []*entity.Menu {
	menus := make([]*entity.Menu, 0, len(inputs))
	for i, in := range inputs {
		field := "menus[" + strconv.Itoa(i) + "].name"
		if prefix != "" {
			field = prefix + "." + field
		}
		menus = append(menus, &entity.Menu{
			ID:        uuid.New(),
			SessionID: sessionID,
			Name:      requireText(verr, field, in.Name),
			Note:      trimOptional(in.Note),
			Position:  firstPosition + i,
		})
	}

	return menus
}

func validateDetail(verr *domainerrors.ValidationError, field string, in *usecase.ShoppingDetailInput) {
	in.ItemName = requireText(verr, field+".itemName", in.ItemName)
	in.Unit = strings.TrimSpace(in.Unit)
	if in.Quantity <= 0 {
		verr.Add(field+".quantity", "must be greater than zero")
	}
	if in.UnitCost < 0 {
		verr.Add(field+".unitCost", "must not be negative")
	}
}

func parseStatus(verr *domainerrors.ValidationError, value string) entity.ShoppingStatus {
	if strings.TrimSpace(value) == "" {
		return entity.ShoppingStatusPlanned
	}

	status := entity.ShoppingStatus(strings.TrimSpace(value))
	if !status.Valid() {
		verr.Add("status", "must be Planned or Done")
	}

	return status
}

func trimOptional(v *string) *string {
	if v == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
