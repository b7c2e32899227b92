package gmail

import (
	"strings"
	"testing"
	"time"
)

func TestBuildQuery_Empty(t *testing.T) {
	if got := BuildQuery(Filter{}); got != "" {
		t.Errorf("BuildQuery(empty) = %q, want empty string", got)
	}
}

func TestBuildQuery_UnreadOnlyAlone(t *testing.T) {
	if got := BuildQuery(Filter{UnreadOnly: true}); got != "is:unread" {
		t.Errorf("BuildQuery(unread only) = %q, want %q", got, "is:unread")
	}
}

func TestBuildQuery_Days(t *testing.T) {
	got := BuildQuery(Filter{Days: 7})
	want := "after:" + time.Now().AddDate(0, 0, -7).Format(queryDateFormat)
	if got != want {
		t.Errorf("BuildQuery(days=7) = %q, want %q", got, want)
	}
}

func TestBuildQuery_DaysOverridesDateBounds(t *testing.T) {
	after := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	before := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	got := BuildQuery(Filter{Days: 3, After: after, Before: before})

	want := "after:" + time.Now().AddDate(0, 0, -3).Format(queryDateFormat)
	if got != want {
		t.Errorf("BuildQuery(days + bounds) = %q, want days to win: %q", got, want)
	}
	if strings.Contains(got, "2026/01/01") || strings.Contains(got, "before:") {
		t.Errorf("BuildQuery(days + bounds) = %q, should ignore after/before", got)
	}
}

func TestBuildQuery_AfterBefore(t *testing.T) {
	after := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)
	before := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		filter Filter
		want   string
	}{
		{"after only", Filter{After: after}, "after:2026/01/02"},
		{"before only", Filter{Before: before}, "before:2026/03/04"},
		{"both bounds", Filter{After: after, Before: before}, "after:2026/01/02 before:2026/03/04"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildQuery(tt.filter); got != tt.want {
				t.Errorf("BuildQuery() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildQuery_Labels(t *testing.T) {
	got := BuildQuery(Filter{Labels: []string{"INBOX", "IMPORTANT"}})
	if got != "label:INBOX label:IMPORTANT" {
		t.Errorf("BuildQuery(labels) = %q, want %q", got, "label:INBOX label:IMPORTANT")
	}
}

func TestBuildQuery_LabelOrderPreserved(t *testing.T) {
	got := BuildQuery(Filter{Labels: []string{"b", "a", "c"}})
	if got != "label:b label:a label:c" {
		t.Errorf("BuildQuery() = %q, want label order preserved", got)
	}
}

func TestBuildQuery_AllTerms(t *testing.T) {
	after := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	got := BuildQuery(Filter{UnreadOnly: true, After: after, Labels: []string{"INBOX"}})
	want := "is:unread after:2026/01/01 label:INBOX"
	if got != want {
		t.Errorf("BuildQuery() = %q, want %q", got, want)
	}
	if !strings.HasPrefix(got, "is:unread") {
		t.Errorf("BuildQuery() = %q, read-state term must come first", got)
	}
}

func TestBuildQuery_MalformedLabelPassedThrough(t *testing.T) {
	got := BuildQuery(Filter{Labels: []string{"has spaces!"}})
	if got != "label:has spaces!" {
		t.Errorf("BuildQuery() = %q, malformed labels pass through verbatim", got)
	}
}
