package models

import "time"

const (
	MessageUnread  = "unread"
	MessageRead    = "read"
	MessageReplied = "replied"
)

type Reply struct {
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	IsAdmin   bool      `json:"isAdmin"`
}

type Message struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Subject   string    `json:"subject"`
	Content   string    `json:"content"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	Replies   []Reply   `json:"replies,omitempty"`
}
