package models

import "time"

// Invite is a free-text event invitation. From and To are plain addresses,
// not account references; invites are independent of the friend graph.
type Invite struct {
	ID        string    `json:"id"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Place     string    `json:"place"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
