package domain

import (
	"errors"
	"time"
)

const (
	RoleCustomer = "customer"
	RoleWorker   = "worker"
	RoleAdmin    = "admin"
)

var ErrCustomerNotFound = errors.New("customer not found")
var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid email or password")

// Customer models an account that posts jobs and rates completed work.
// Email uniqueness is scoped to the customers collection; a worker may share
// the same email without conflict.
type Customer struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Phone        string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Address      string    `json:"address,omitempty" bson:"address,omitempty"`
	Role         string    `json:"role" bson:"role"`
	JoinedAt     time.Time `json:"joined_at" bson:"joined_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}
