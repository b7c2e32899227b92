package store

import (
	"encoding/json"
	"fmt"

	"github.com/zalando/go-keyring"
	"golang.org/x/oauth2"
)

// Tokens live in the OS keyring (Keychain, Credential Manager, Secret
// Service) under this service, keyed by account. mailgrab only ever uses
// a single "default" account today, but the key is kept so nothing here
// needs to change if more accounts show up.
const serviceName = "mailgrab"

// KeyringTokenStore holds the Gmail OAuth2 token between runs so fetch
// does not have to reauthorize every time.
type KeyringTokenStore struct{}

func NewKeyringTokenStore() *KeyringTokenStore {
	return &KeyringTokenStore{}
}

// SaveToken writes the token for an account, replacing any existing one.
func (k *KeyringTokenStore) SaveToken(accountID string, token *oauth2.Token) error {
	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to marshal token: %w", err)
	}
	if err := keyring.Set(serviceName, accountID, string(data)); err != nil {
		return fmt.Errorf("failed to store token in keyring: %w", err)
	}
	return nil
}

// LoadToken reads the token for an account. It fails when no token is
// stored, which callers surface as "run 'mailgrab auth login' first".
func (k *KeyringTokenStore) LoadToken(accountID string) (*oauth2.Token, error) {
	data, err := keyring.Get(serviceName, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load token from keyring: %w", err)
	}
	var token oauth2.Token
	if err := json.Unmarshal([]byte(data), &token); err != nil {
		return nil, fmt.Errorf("failed to unmarshal token: %w", err)
	}
	return &token, nil
}

// DeleteToken removes the token for an account, logging the user out.
func (k *KeyringTokenStore) DeleteToken(accountID string) error {
	if err := keyring.Delete(serviceName, accountID); err != nil {
		return fmt.Errorf("failed to delete token from keyring: %w", err)
	}
	return nil
}
