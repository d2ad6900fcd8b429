package models

import "time"

// Property is a listing as stored and served. The id is an opaque string
// assigned at creation; created_at is server-assigned and immutable.
type Property struct {
	ID           string    `bson:"id" json:"id"`
	Title        string    `bson:"title" json:"title"`
	Location     string    `bson:"location" json:"location"`
	Price        int       `bson:"price" json:"price"`
	PropertyType string    `bson:"property_type" json:"property_type"` // villa, penthouse, estate, apartment
	Bedrooms     int       `bson:"bedrooms" json:"bedrooms"`
	Bathrooms    int       `bson:"bathrooms" json:"bathrooms"`
	Area         int       `bson:"area" json:"area"` // sq ft
	Description  string    `bson:"description" json:"description"`
	Features     []string  `bson:"features" json:"features"`
	Images       []string  `bson:"images" json:"images"`
	Featured     bool      `bson:"featured" json:"featured"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// PropertyCreate carries the required create fields. The numeric fields are
// pointers so that an absent field fails validation while an explicit zero
// is accepted.
type PropertyCreate struct {
	Title        string   `json:"title" validate:"required"`
	Location     string   `json:"location" validate:"required"`
	Price        *int     `json:"price" validate:"required,gte=0"`
	PropertyType string   `json:"property_type" validate:"required"`
	Bedrooms     *int     `json:"bedrooms" validate:"required,gte=0"`
	Bathrooms    *int     `json:"bathrooms" validate:"required,gte=0"`
	Area         *int     `json:"area" validate:"required,gte=0"`
	Description  string   `json:"description" validate:"required"`
	Features     []string `json:"features"`
	Images       []string `json:"images"`
	Featured     bool     `json:"featured"`
}

// PropertyUpdate is a partial update. Nil fields are left untouched; only
// non-nil fields make it into the $set document, so an omitted field can
// never null out a stored value.
type PropertyUpdate struct {
	Title        *string   `json:"title"`
	Location     *string   `json:"location"`
	Price        *int      `json:"price"`
	PropertyType *string   `json:"property_type"`
	Bedrooms     *int      `json:"bedrooms"`
	Bathrooms    *int      `json:"bathrooms"`
	Area         *int      `json:"area"`
	Description  *string   `json:"description"`
	Features     *[]string `json:"features"`
	Images       *[]string `json:"images"`
	Featured     *bool     `json:"featured"`
}
