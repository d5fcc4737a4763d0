package model

// RecipientStatus is the approval state gating broadcast delivery.
type RecipientStatus string

const (
	RecipientPending  RecipientStatus = "pending"
	RecipientApproved RecipientStatus = "approved"
)

// Recipient is one user's delivery preferences. Either channel may be empty.
type Recipient struct {
	ID             int64           `db:"id"`
	Name           string          `db:"name"`
	Email          string          `db:"email"`
	TelegramChatID string          `db:"telegram_chat_id"`
	Status         RecipientStatus `db:"status"`
}
