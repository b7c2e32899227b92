package gmail

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	gmailapi "google.golang.org/api/gmail/v1"

	"github.com/jcortez/mailgrab/internal/domain"
)

// noSubject is substituted when a message carries no Subject header.
const noSubject = "(No subject)"

// Normalize converts a full-format Gmail API message into a domain Message.
// Header-level problems (missing subject, unparseable date) recover with safe
// defaults; an undecodable body aborts with an error.
func Normalize(msg *gmailapi.Message) (*domain.Message, error) {
	var headers []*gmailapi.MessagePartHeader
	if msg.Payload != nil {
		headers = msg.Payload.Headers
	}

	subject := findHeader(headers, "Subject")
	if subject == "" {
		subject = noSubject
	}

	date := parseDate(findHeader(headers, "Date"))
	if date.IsZero() {
		date = time.Now()
	}

	body, err := decodeBody(msg.Payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode body of message %s: %w", msg.Id, err)
	}

	return &domain.Message{
		ID:       msg.Id,
		ThreadID: msg.ThreadId,
		Subject:  subject,
		From:     parseSender(findHeader(headers, "From")),
		To:       findHeader(headers, "To"),
		Date:     date,
		Snippet:  msg.Snippet,
		Body:     body,
		Labels:   msg.LabelIds,
		Unread:   containsLabel(msg.LabelIds, domain.LabelUnread),
	}, nil
}

// findHeader performs a case-insensitive lookup for a header value.
// The first match wins; an absent header yields the empty string.
func findHeader(headers []*gmailapi.MessagePartHeader, name string) string {
	lower := strings.ToLower(name)
	for _, h := range headers {
		if strings.ToLower(h.Name) == lower {
			return h.Value
		}
	}
	return ""
}

// parseSender splits a From header into display name and address.
// "John Doe <john@example.com>" yields ("John Doe", "john@example.com");
// a bare address is used as both name and address.
func parseSender(header string) domain.Address {
	header = strings.TrimSpace(header)
	open := strings.Index(header, "<")
	end := strings.Index(header, ">")
	if open >= 0 && end > open {
		name := strings.TrimSpace(header[:open])
		name = strings.Trim(name, `"`)
		return domain.Address{
			Name:  strings.TrimSpace(name),
			Email: strings.TrimSpace(header[open+1 : end]),
		}
	}
	return domain.Address{Name: header, Email: header}
}

// parseDate tries the date formats commonly used in Date headers.
// Returns the zero time when nothing matches.
func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}

	formats := []string{
		time.RFC1123Z,                           // "Mon, 02 Jan 2006 15:04:05 -0700"
		time.RFC1123,                            // "Mon, 02 Jan 2006 15:04:05 MST"
		time.RFC822Z,                            // "02 Jan 06 15:04 -0700"
		time.RFC822,                             // "02 Jan 06 15:04 MST"
		"Mon, 2 Jan 2006 15:04:05 -0700",        // single-digit day
		"Mon, 2 Jan 2006 15:04:05 MST",          // single-digit day with named zone
		"2 Jan 2006 15:04:05 -0700",             // no weekday
		"2006-01-02T15:04:05Z07:00",             // ISO 8601
		"Mon, 02 Jan 2006 15:04:05 -0700 (MST)", // with parenthesized zone
	}

	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// containsLabel checks if a label is present in the list.
func containsLabel(labels []string, label string) bool {
	for _, l := range labels {
		if l == label {
			return true
		}
	}
	return false
}

// decodeBody extracts the message body from a payload tree.
//
// A part carrying inline data is terminal: its decoded data is the body. For
// a multipart node, children are walked in list order with immediate-return
// short-circuits: a text/plain child wins outright, a text/html child is
// remembered as the fallback while the walk continues, and a nested multipart
// child that yields a non-empty body wins over the remaining siblings and the
// HTML fallback. The ordering is observable on asymmetric trees, so this must
// stay a strict in-order walk rather than a collect-then-prefer pass.
func decodeBody(payload *gmailapi.MessagePart) (string, error) {
	if payload == nil {
		return "", nil
	}

	if hasBodyData(payload) {
		return decodeBase64URL(payload.Body.Data)
	}

	var html string
	for _, part := range payload.Parts {
		if part.MimeType == "text/plain" && hasBodyData(part) {
			return decodeBase64URL(part.Body.Data)
		}
		if part.MimeType == "text/html" && hasBodyData(part) {
			h, err := decodeBase64URL(part.Body.Data)
			if err != nil {
				return "", err
			}
			html = h
		}
		if len(part.Parts) > 0 {
			nested, err := decodeBody(part)
			if err != nil {
				return "", err
			}
			if nested != "" {
				return nested, nil
			}
		}
	}
	return html, nil
}

func hasBodyData(part *gmailapi.MessagePart) bool {
	return part.Body != nil && part.Body.Data != ""
}

// decodeBase64URL decodes Gmail's URL-safe base64 encoded strings (without padding).
func decodeBase64URL(s string) (string, error) {
	data, err := base64.URLEncoding.WithPadding(base64.NoPadding).DecodeString(s)
	if err != nil {
		return "", fmt.Errorf("failed to decode base64 body data: %w", err)
	}
	return string(data), nil
}
