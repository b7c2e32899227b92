package cli

import (
	"testing"
	"time"

	"github.com/jcortez/mailgrab/internal/domain"
)

func TestToJSONMessages(t *testing.T) {
	date := time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC)
	messages := []domain.Message{
		{
			ID:       "m1",
			ThreadID: "t1",
			Subject:  "Hello",
			From:     domain.Address{Name: "Alice", Email: "alice@example.com"},
			To:       "bob@example.com",
			Date:     date,
			Snippet:  "preview",
			Body:     "body text",
			Labels:   []string{"INBOX", "UNREAD"},
			Unread:   true,
		},
	}

	out := toJSONMessages(messages)
	if len(out) != 1 {
		t.Fatalf("got %d messages, want 1", len(out))
	}
	m := out[0]
	if m.ID != "m1" || m.ThreadID != "t1" {
		t.Errorf("ids = %q/%q, want m1/t1", m.ID, m.ThreadID)
	}
	if m.From.Name != "Alice" || m.From.Email != "alice@example.com" {
		t.Errorf("from = %+v, want Alice <alice@example.com>", m.From)
	}
	if m.Date != date.Format(time.RFC3339) {
		t.Errorf("date = %q, want RFC3339 rendering", m.Date)
	}
	if !m.Unread {
		t.Error("unread flag lost in projection")
	}
}

func TestToJSONMessages_EmptyIsNotNil(t *testing.T) {
	out := toJSONMessages(nil)
	if out == nil {
		t.Error("toJSONMessages(nil) = nil, want empty slice so JSON renders []")
	}
}

func TestToJSONStatus(t *testing.T) {
	t.Run("never run", func(t *testing.T) {
		s := toJSONStatus(time.Time{}, false)
		if !s.NeverRun {
			t.Error("NeverRun = false, want true")
		}
		if s.LastRun != "" {
			t.Errorf("LastRun = %q, want empty", s.LastRun)
		}
	})

	t.Run("with marker", func(t *testing.T) {
		last := time.Now().Add(-90 * time.Minute)
		s := toJSONStatus(last, true)
		if s.NeverRun {
			t.Error("NeverRun = true, want false")
		}
		if s.LastRun == "" {
			t.Error("LastRun is empty")
		}
		if s.SecondsSinceRun < 5390 || s.SecondsSinceRun > 5410 {
			t.Errorf("SecondsSinceRun = %d, want about 5400", s.SecondsSinceRun)
		}
	})
}
