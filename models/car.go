package models

import (
	"time"
)

type Car struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	Make       string    `json:"make"`
	Model      string    `json:"model"`
	Year       int       `json:"year"`
	Color      string    `json:"color"`
	Plate      string    `json:"plate"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
