package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Title        string     `gorm:"not null" json:"title"`
	Introduction string     `gorm:"type:text" json:"introduction"`
	Directions   string     `gorm:"type:text" json:"directions"`
	PrepTime     string     `json:"prep_time"`
	Servings     *string    `gorm:"type:numeric(5,2)" json:"servings"` // nil means servings unknown
	Notes        string     `gorm:"type:text" json:"notes"`
	Public       bool       `gorm:"default:false" json:"public"`
	AuthorID     *uuid.UUID `json:"author_id,omitempty"`

	Author         *User         `gorm:"foreignKey:AuthorID;constraint:OnDelete:SET NULL" json:"author,omitempty"`
	Categories     []*Category   `gorm:"many2many:recipe_categories" json:"categories,omitempty"`
	RelatedRecipes []*Recipe     `gorm:"many2many:recipe_relations;joinForeignKey:RecipeID;joinReferences:RelatedID" json:"related_recipes,omitempty"`
	Ingredients    []*Ingredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"ingredients,omitempty"`
	Images         []*Image      `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	Timestamp
}

type Category struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Title string    `gorm:"uniqueIndex;not null" json:"title"`

	Recipes []*Recipe `gorm:"many2many:recipe_categories" json:"recipes,omitempty"`
	Timestamp
}

type Image struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID  uuid.UUID `json:"recipe_id"`
	ObjectKey string    `json:"object_key"`
	URL       string    `json:"url"`
	IsPrimary bool      `gorm:"default:false" json:"is_primary"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID" json:"-"`
	Timestamp
}
