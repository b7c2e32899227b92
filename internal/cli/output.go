package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jcortez/mailgrab/internal/domain"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true)
	subjectStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	unreadStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
)

const snippetPreviewLen = 100

// printJSON encodes v as indented JSON to stdout.
func printJSON(v any) error {
	return fprintJSON(os.Stdout, v)
}

// fprintJSON encodes v as indented JSON to w.
func fprintJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// printFetchPlan announces which range the fetch will cover.
func printFetchPlan(w io.Writer, days int, since time.Time) {
	switch {
	case days > 0:
		fmt.Fprintf(w, "Fetching messages from the last %d days...\n", days)
	case !since.IsZero():
		fmt.Fprintf(w, "Fetching messages since %s...\n", since.Format(time.DateTime))
	default:
		fmt.Fprintln(w, "Fetching messages...")
	}
}

// renderMessages prints a numbered listing of fetched messages.
func renderMessages(w io.Writer, messages []domain.Message) {
	if len(messages) == 0 {
		fmt.Fprintln(w, "No messages found.")
		return
	}

	fmt.Fprintf(w, "\nFound %d message(s)\n", len(messages))
	for i, m := range messages {
		marker := " "
		if m.Unread {
			marker = unreadStyle.Render("*")
		}
		fmt.Fprintf(w, "\n[%d]%s %s\n", i+1, marker, subjectStyle.Render(m.Subject))
		fmt.Fprintf(w, "    From: %s\n", m.From)
		fmt.Fprintf(w, "    Date: %s\n", m.Date.Format(time.DateTime))
		if m.Snippet != "" {
			fmt.Fprintf(w, "    %s\n", mutedStyle.Render(truncate(m.Snippet, snippetPreviewLen)))
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
