package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MealPlanModel mirrors the 'meal_plans' table.
type MealPlanModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	OwnerID   uuid.UUID      `gorm:"type:uuid;not null;index:idx_meal_plans_owner_date"`
	Date      datatypes.Date `gorm:"not null;index:idx_meal_plans_owner_date"`
	Weekday   string         `gorm:"type:varchar(16);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Sessions []*MealSessionModel `gorm:"foreignKey:MealPlanID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (MealPlanModel) TableName() string {
	return "meal_plans"
}

// MealSessionModel mirrors the 'meal_sessions' table.
type MealSessionModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	MealPlanID uuid.UUID `gorm:"type:uuid;not null;index"`
	Mealtime   string    `gorm:"type:varchar(16);not null"`
	Position   int       `gorm:"not null"`
	CreatedAt  time.Time

	Menus []*MenuModel `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (MealSessionModel) TableName() string {
	return "meal_sessions"
}

// MenuModel mirrors the 'menus' table.
type MenuModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	SessionID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(200);not null"`
	Note      *string   `gorm:"type:text"`
	Position  int       `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (MenuModel) TableName() string {
	return "menus"
}
