package entity

import "time"

type Conversation struct {
	ID            string    `json:"id"`
	UserAID       string    `json:"user_a_id"`
	UserBID       string    `json:"user_b_id"`
	LastMessageAt time.Time `json:"last_message_at"`
	CreatedAt     time.Time `json:"created_at"`

	// Populated for listings.
	Peer        *User    `json:"peer,omitempty"`
	LastMessage *Message `json:"last_message,omitempty"`
	UnseenCount int      `json:"unseen_count"`
}

type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	SenderID       string    `json:"sender_id"`
	RecipientID    string    `json:"recipient_id"`
	Text           string    `json:"text"`
	Attachment     string    `json:"attachment,omitempty"`
	Seen           bool      `json:"seen"`
	CreatedAt      time.Time `json:"created_at"`
}
