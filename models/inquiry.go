package models

import "time"

// Inquiry is a buyer inquiry. PropertyID is a loose reference: it is never
// validated against the properties collection, and PropertyTitle is an
// independent denormalized snapshot taken by the client.
type Inquiry struct {
	ID            string    `bson:"id" json:"id"`
	PropertyID    string    `bson:"property_id,omitempty" json:"property_id,omitempty"`
	PropertyTitle string    `bson:"property_title,omitempty" json:"property_title,omitempty"`
	Name          string    `bson:"name" json:"name"`
	Email         string    `bson:"email" json:"email"`
	Phone         string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Message       string    `bson:"message" json:"message"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}

type InquiryCreate struct {
	PropertyID    string `json:"property_id"`
	PropertyTitle string `json:"property_title"`
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone"`
	Message       string `json:"message" validate:"required"`
}
