package domain

import "time"

type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "active"
	ClientStatusInactive ClientStatus = "inactive"
)

type Client struct {
	ID          string       `json:"id"`
	CompanyName string       `json:"company_name"`
	Status      ClientStatus `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
}
