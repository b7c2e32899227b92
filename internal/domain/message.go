package domain

import "time"

// Address is a parsed sender identity. For bare addresses with no display
// name, Name and Email hold the same value.
type Address struct {
	Name  string
	Email string
}

func (a Address) String() string {
	if a.Name == "" || a.Name == a.Email {
		return a.Email
	}
	return a.Name + " <" + a.Email + ">"
}

// Message is a normalized Gmail message. Immutable once constructed.
type Message struct {
	ID       string
	ThreadID string
	Subject  string
	From     Address
	To       string // raw To header, not parsed
	Date     time.Time
	Snippet  string
	Body     string
	Labels   []string
	Unread   bool
}

func (m *Message) HasLabel(label string) bool {
	for _, l := range m.Labels {
		if l == label {
			return true
		}
	}
	return false
}

// Gmail system label IDs.
const (
	LabelUnread    = "UNREAD"
	LabelInbox     = "INBOX"
	LabelStarred   = "STARRED"
	LabelImportant = "IMPORTANT"
	LabelSpam      = "SPAM"
	LabelTrash     = "TRASH"
)
