package gmail

import (
	"strings"
	"time"
)

// queryDateFormat is the date layout Gmail search accepts for after:/before:.
const queryDateFormat = "2006/01/02"

// Filter holds the message filters that translate into a Gmail search query.
// Days is a convenience shorthand: when set, it wins over After/Before.
type Filter struct {
	After      time.Time
	Before     time.Time
	Days       int
	UnreadOnly bool
	Labels     []string
}

// BuildQuery renders a Filter as a Gmail search query string.
// An empty filter yields the empty string, which matches everything;
// bounding the result set is the caller's max-results cap.
func BuildQuery(f Filter) string {
	var terms []string

	if f.UnreadOnly {
		terms = append(terms, "is:unread")
	}

	if f.Days > 0 {
		target := time.Now().AddDate(0, 0, -f.Days)
		terms = append(terms, "after:"+target.Format(queryDateFormat))
	} else {
		if !f.After.IsZero() {
			terms = append(terms, "after:"+f.After.Format(queryDateFormat))
		}
		if !f.Before.IsZero() {
			terms = append(terms, "before:"+f.Before.Format(queryDateFormat))
		}
	}

	// Label values are passed through verbatim; Gmail is the source of
	// truth for label validity.
	for _, label := range f.Labels {
		terms = append(terms, "label:"+label)
	}

	return strings.Join(terms, " ")
}
