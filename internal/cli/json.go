package cli

import (
	"time"

	"github.com/jcortez/mailgrab/internal/domain"
)

type jsonMessage struct {
	ID       string   `json:"id"`
	ThreadID string   `json:"thread_id"`
	Subject  string   `json:"subject"`
	From     jsonFrom `json:"from"`
	To       string   `json:"to,omitempty"`
	Date     string   `json:"date"`
	Snippet  string   `json:"snippet,omitempty"`
	Body     string   `json:"body,omitempty"`
	Labels   []string `json:"labels,omitempty"`
	Unread   bool     `json:"unread"`
}

type jsonFrom struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func toJSONMessages(messages []domain.Message) []jsonMessage {
	out := make([]jsonMessage, 0, len(messages))
	for _, m := range messages {
		out = append(out, jsonMessage{
			ID:       m.ID,
			ThreadID: m.ThreadID,
			Subject:  m.Subject,
			From:     jsonFrom{Name: m.From.Name, Email: m.From.Email},
			To:       m.To,
			Date:     m.Date.Format(time.RFC3339),
			Snippet:  m.Snippet,
			Body:     m.Body,
			Labels:   m.Labels,
			Unread:   m.Unread,
		})
	}
	return out
}

type jsonStatus struct {
	LastRun         string `json:"last_run,omitempty"`
	SecondsSinceRun int64  `json:"seconds_since_run,omitempty"`
	NeverRun        bool   `json:"never_run"`
}

func toJSONStatus(last time.Time, ok bool) jsonStatus {
	if !ok {
		return jsonStatus{NeverRun: true}
	}
	return jsonStatus{
		LastRun:         last.Format(time.RFC3339),
		SecondsSinceRun: int64(time.Since(last).Seconds()),
	}
}

type jsonAction struct {
	OK     bool   `json:"ok"`
	Action string `json:"action"`
	Email  string `json:"email,omitempty"`
}
