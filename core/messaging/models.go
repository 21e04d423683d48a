package messaging

import "time"

type (
	// Conversation is one counterpart the user can message; the listing
	// endpoint returns the users reachable from this account.
	Conversation struct {
		ID        string `json:"_id"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Role      string `json:"role"`
	}

	Message struct {
		ID         string    `json:"_id"`
		SenderID   string    `json:"senderId"`
		ReceiverID string    `json:"receiverId"`
		Body       string    `json:"message"`
		CreatedAt  time.Time `json:"createdAt"`
	}

	// PaymentNotification is the one push-channel event: delivered outside
	// the request/response stores and prepended to an independent feed.
	PaymentNotification struct {
		Event     string    `json:"event"` // always "paymentReceived"
		StudentID string    `json:"studentId"`
		Amount    float64   `json:"amount"`
		Reference string    `json:"reference"`
		At        time.Time `json:"at"`
	}
)

// FromMe reports whether the message was sent by the given user.
func (m Message) FromMe(userID string) bool {
	return m.SenderID == userID
}
