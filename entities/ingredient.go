package entities

import (
	"github.com/google/uuid"
)

type Food struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name string    `gorm:"uniqueIndex;not null" json:"name"`

	Timestamp
}

type Ingredient struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID uuid.UUID `json:"recipe_id"`
	FoodID   uuid.UUID `json:"food_id"`
	Amount   string    `gorm:"type:numeric(10,3);not null" json:"amount"`
	Unit     string    `json:"unit"`
	Notes    string    `gorm:"type:text" json:"notes"`

	Food   *Food   `gorm:"foreignKey:FoodID;constraint:OnDelete:RESTRICT" json:"food,omitempty"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID" json:"-"`
	Timestamp
}
