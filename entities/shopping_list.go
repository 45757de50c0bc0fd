package entities

import (
	"github.com/google/uuid"
)

type ShoppingList struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `json:"user_id"`
	Name   string    `gorm:"not null" json:"name"`

	User  *User               `gorm:"foreignKey:UserID" json:"-"`
	Items []*ShoppingListItem `gorm:"foreignKey:ShoppingListID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	Timestamp
}

type ShoppingListItem struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ShoppingListID uuid.UUID `json:"shopping_list_id"`
	FoodName       string    `gorm:"not null" json:"food_name"`
	Amount         string    `json:"amount"`
	Unit           string    `json:"unit"`
	Notes          string    `json:"notes"`
	Checked        bool      `gorm:"default:false" json:"checked"`

	ShoppingList *ShoppingList `gorm:"foreignKey:ShoppingListID" json:"-"`
	Timestamp
}
