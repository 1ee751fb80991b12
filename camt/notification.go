package camt

import (
	"github.com/finbridge-dev/finbridge/statement"
	"github.com/finbridge-dev/finbridge/validation"
)

// Notification is the debit/credit notification: posted entries without any
// balance information.
type Notification struct {
	MessageID      string
	NotificationID string
	Account        string
	Entries        []statement.Entry
}

// NotificationParams is the field set consumed by NewNotification.
type NotificationParams struct {
	MessageID      string `json:"message_id" validate:"required,max=35"`
	NotificationID string `json:"notification_id" validate:"required,max=35"`
	Account        string `json:"account" validate:"required,max=35"`
	Entries        []statement.Entry
}

// NewNotification builds a validated Notification.
func NewNotification(p NotificationParams) (*Notification, error) {
	if err := validation.Struct(p); err != nil {
		return nil, err
	}
	return &Notification{
		MessageID:      p.MessageID,
		NotificationID: p.NotificationID,
		Account:        p.Account,
		Entries:        copyEntries(p.Entries),
	}, nil
}

// AccountID returns the identifier of the notified account.
func (n *Notification) AccountID() string { return n.Account }

// OpeningBalance returns nil: notifications carry no balances.
func (n *Notification) OpeningBalance() *statement.Balance { return nil }

// ClosingBalance returns nil: notifications carry no balances.
func (n *Notification) ClosingBalance() *statement.Balance { return nil }

// StatementEntries returns the notified entries.
func (n *Notification) StatementEntries() []statement.Entry { return n.Entries }
