package domain

import "time"

// Contact is the single contact record owned by a user. The contacts table is
// keyed by user_id, which enforces one record per owner at the store level.
type Contact struct {
	UserID    string    `json:"user_id" dynamodbav:"user_id"`
	ContactID string    `json:"id" dynamodbav:"contact_id"`
	Name      string    `json:"name" dynamodbav:"name"`
	Phone     string    `json:"phone" dynamodbav:"phone"`
	CreatedAt time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt time.Time `json:"updated" dynamodbav:"updated_at"`
}

type ContactRequest struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required"`
}
