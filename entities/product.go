package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Food group codes as presented on the product form.
const (
	GroupDairy = iota + 1
	GroupFruits
	GroupVegetables
	GroupGrains
	GroupProtein
	GroupOther
)

var foodGroupNames = [...]string{"Dairy", "Fruits", "Vegetables", "Grains", "Protein", "Other"}

// FoodGroupName maps a group code (1-6) to its display name.
func FoodGroupName(code int) string {
	if code < GroupDairy || code > GroupOther {
		return "Unknown"
	}
	return foodGroupNames[code-1]
}

// DietaryFlags are independent markers, none of them mutually exclusive.
type DietaryFlags struct {
	Vegetarian bool `json:"vegetarian"`
	Vegan      bool `json:"vegan"`
	Gluten     bool `json:"gluten"`
	Lactose    bool `json:"lactose"`
	Eggs       bool `json:"eggs"`
	Nuts       bool `json:"nuts"`
	Halal      bool `json:"halal"`
	Kosher     bool `json:"kosher"`
}

// Summary returns the set flags as a comma-separated list, or "None".
func (f DietaryFlags) Summary() string {
	var set []string
	for _, entry := range []struct {
		name string
		on   bool
	}{
		{"Vegetarian", f.Vegetarian},
		{"Vegan", f.Vegan},
		{"Gluten", f.Gluten},
		{"Lactose", f.Lactose},
		{"Eggs", f.Eggs},
		{"Nuts", f.Nuts},
		{"Halal", f.Halal},
		{"Kosher", f.Kosher},
	} {
		if entry.on {
			set = append(set, entry.name)
		}
	}
	if len(set) == 0 {
		return "None"
	}
	return strings.Join(set, ", ")
}

// Product is one inventory entry. The composite primary key
// (user_id, name, expiration) is the lookup key for update and delete.
type Product struct {
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Name       string    `gorm:"primaryKey" json:"name"`
	Expiration time.Time `gorm:"primaryKey" json:"expiration"`
	Quantity   int       `json:"quantity"`
	Group      int       `gorm:"column:food_group" json:"group"`
	DateAdded  time.Time `json:"date_added"`

	DietaryFlags `gorm:"embedded"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
