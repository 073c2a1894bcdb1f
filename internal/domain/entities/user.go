package entities

import "time"

// User is a storefront account. Only the demo user exists today.
//
// Storage model (DynamoDB):
//   - PK: email
type User struct {
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
