package gmail

import (
	"context"
	"fmt"

	gmailapi "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/jcortez/mailgrab/internal/store"
)

const userID = "me"

// maxPageSize is the largest page the Gmail list endpoint serves.
const maxPageSize = 500

// Client is the narrow Gmail surface the fetch pipeline depends on.
type Client interface {
	// ListMessageIDs returns up to maxResults message IDs matching query,
	// in the order Gmail returns them.
	ListMessageIDs(ctx context.Context, query string, maxResults int64) ([]string, error)
	// GetMessage returns the full-format message for the given ID.
	GetMessage(ctx context.Context, id string) (*gmailapi.Message, error)
}

// APIClient implements Client against the Gmail REST API, loading its OAuth
// token from the token store and initializing the service lazily.
type APIClient struct {
	tokenStore *store.KeyringTokenStore
	accountID  string
	service    *gmailapi.Service
}

// NewAPIClient creates a Gmail client for the given account.
func NewAPIClient(accountID string, tokenStore *store.KeyringTokenStore) *APIClient {
	return &APIClient{
		accountID:  accountID,
		tokenStore: tokenStore,
	}
}

// Authenticate runs the OAuth2 flow, saves the token, and initializes the service.
func (c *APIClient) Authenticate(ctx context.Context) error {
	token, err := authenticate(ctx)
	if err != nil {
		return fmt.Errorf("failed to authenticate gmail: %w", err)
	}

	if err := c.tokenStore.SaveToken(c.accountID, token); err != nil {
		return fmt.Errorf("failed to save gmail token: %w", err)
	}

	srv, err := gmailapi.NewService(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, token)))
	if err != nil {
		return fmt.Errorf("failed to create gmail service: %w", err)
	}
	c.service = srv
	return nil
}

// initService loads the token from the keyring and creates the Gmail service.
// The oauth2 token source refreshes expired tokens transparently.
func (c *APIClient) initService(ctx context.Context) error {
	token, err := c.tokenStore.LoadToken(c.accountID)
	if err != nil {
		return fmt.Errorf("failed to load gmail token (run 'mailgrab auth login' first): %w", err)
	}

	srv, err := gmailapi.NewService(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, token)))
	if err != nil {
		return fmt.Errorf("failed to create gmail service: %w", err)
	}
	c.service = srv
	return nil
}

// ensureService lazily initializes the Gmail service if not already done.
func (c *APIClient) ensureService(ctx context.Context) error {
	if c.service != nil {
		return nil
	}
	return c.initService(ctx)
}

// ListMessageIDs pages through the message-list endpoint until maxResults IDs
// are collected or the listing is exhausted.
func (c *APIClient) ListMessageIDs(ctx context.Context, query string, maxResults int64) ([]string, error) {
	if err := c.ensureService(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure gmail service: %w", err)
	}

	var ids []string
	pageToken := ""
	for int64(len(ids)) < maxResults {
		call := c.service.Users.Messages.List(userID).
			MaxResults(min(maxResults-int64(len(ids)), maxPageSize))
		if query != "" {
			call = call.Q(query)
		}
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list gmail messages: %w", err)
		}

		for _, m := range resp.Messages {
			ids = append(ids, m.Id)
		}
		if resp.NextPageToken == "" || len(resp.Messages) == 0 {
			break
		}
		pageToken = resp.NextPageToken
	}

	if int64(len(ids)) > maxResults {
		ids = ids[:maxResults]
	}
	return ids, nil
}

// GetMessage returns a single full-format message by ID.
func (c *APIClient) GetMessage(ctx context.Context, id string) (*gmailapi.Message, error) {
	if err := c.ensureService(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure gmail service: %w", err)
	}

	msg, err := c.service.Users.Messages.Get(userID, id).
		Format("full").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get gmail message %s: %w", id, err)
	}
	return msg, nil
}

// GetProfile returns the authenticated user's email address.
func (c *APIClient) GetProfile(ctx context.Context) (string, error) {
	if err := c.ensureService(ctx); err != nil {
		return "", fmt.Errorf("failed to ensure gmail service: %w", err)
	}

	profile, err := c.service.Users.GetProfile(userID).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to get gmail profile: %w", err)
	}
	return profile.EmailAddress, nil
}

// Compile-time interface compliance check.
var _ Client = (*APIClient)(nil)
