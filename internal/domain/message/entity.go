package message

import "time"

type Message struct {
	ID          int64      `json:"id"`
	SenderID    int64      `json:"sender_id"`
	RecipientID int64      `json:"recipient_id"`
	Subject     string     `json:"subject"`
	Body        string     `json:"body"`
	Read        bool       `json:"read"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

type SendRequest struct {
	RecipientID int64  `json:"recipient_id" binding:"required"`
	Subject     string `json:"subject" binding:"required"`
	Body        string `json:"body" binding:"required"`
}
