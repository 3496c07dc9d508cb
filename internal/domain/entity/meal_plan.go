package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Mealtime is the slot of the day a Session belongs to.
type Mealtime string

const (
	MealtimeBreakfast Mealtime = "Breakfast"
	MealtimeLunch     Mealtime = "Lunch"
	MealtimeDinner    Mealtime = "Dinner"
	MealtimeSnack     Mealtime = "Snack"
)

// Mealtimes lists the allowed values in day order.
var Mealtimes = []Mealtime{MealtimeBreakfast, MealtimeLunch, MealtimeDinner, MealtimeSnack}

// Valid reports whether m is one of the allowed mealtimes.
func (m Mealtime) Valid() bool {
	return slices.Contains(Mealtimes, m)
}

// Rank orders mealtimes through the day. Unknown values sort last.
func (m Mealtime) Rank() int {
	if i := slices.Index(Mealtimes, m); i >= 0 {
		return i
	}

	return len(Mealtimes)
}

// MealPlan is the root of the MealPlan → Session → Menu aggregate.
// OwnerID is the only ownership anchor for the whole tree.
type MealPlan struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Date      time.Time // Calendar date, time part is always zero UTC.
	Weekday   string
	Sessions  []*Session
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Session groups the menus served at one mealtime of a plan.
// Duplicate mealtimes inside one plan are allowed.
type Session struct {
	ID         uuid.UUID
	MealPlanID uuid.UUID
	Mealtime   Mealtime
	Position   int
	Menus      []*Menu
	CreatedAt  time.Time
}

// Menu is a single dish inside a session.
type Menu struct {
	ID        uuid.UUID
	SessionID uuid.UUID
	Name      string
	Note      *string
	Position  int
	CreatedAt time.Time
}

// GetOwnerID implements Owned. A nil receiver has no owner.
func (p *MealPlan) GetOwnerID() uuid.UUID {
	if p == nil {
		return uuid.Nil
	}

	return p.OwnerID
}

// SortSessions orders sessions by mealtime rank, then by insertion position,
// and menus inside each session by position.
func (p *MealPlan) SortSessions() {
	slices.SortStableFunc(p.Sessions, func(a, b *Session) int {
		if d := a.Mealtime.Rank() - b.Mealtime.Rank(); d != 0 {
			return d
		}

		return a.Position - b.Position
	})
	for _, s := range p.Sessions {
		s.SortMenus()
	}
}

// SortMenus orders menus by insertion position.
func (s *Session) SortMenus() {
	slices.SortStableFunc(s.Menus, func(a, b *Menu) int {
		return a.Position - b.Position
	})
}

// MenuCount returns the number of menus across all sessions.
func (p *MealPlan) MenuCount() int {
	n := 0
	for _, s := range p.Sessions {
		n += len(s.Menus)
	}

	return n
}
