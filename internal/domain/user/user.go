package user

import "time"

type User struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Username  string    `json:"username" bson:"username"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

type CreateUserRequest struct {
	Username string `json:"username"`
}

type CreateUserResponse struct {
	Message string `json:"message"`
}
