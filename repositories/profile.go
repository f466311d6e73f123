//go:generate go run go.uber.org/mock/mockgen -source=profile.go -destination=../mocks/mock_profile_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"time"

	"chat-notify/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
)

type IProfileRepository interface {
	GetProfile(id string) (Profile, error)
	SaveProfile(profile Profile) error
	RegisterToken(id, token string) error
	RemoveTokens(id string, tokens []string) error
}

type ProfileRepository struct {
	db *badger.DB
}

func NewProfileRepository(db *badger.DB) ProfileRepository {
	return ProfileRepository{db: db}
}

// Profile is the stored representation of a user. Tokens are registered
// and deregistered by clients; this pipeline only ever subtracts from them.
type Profile struct {
	ID         string    `json:"id"`
	FullName   string    `json:"fullName,omitempty"`
	Privileged bool      `json:"privileged,omitempty"`
	Tokens     []string  `json:"tokens,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func profileKey(id string) []byte {
	return []byte("user:" + id)
}

// GetProfile retrieves a user by id. A missing record maps to
// errors.ErrProfileNotFound so callers can tell absence from store failure.
func (r ProfileRepository) GetProfile(id string) (Profile, error) {
	var profile Profile
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(profileKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &profile)
		})
	})
	if err == badger.ErrKeyNotFound {
		return Profile{}, errors.ErrProfileNotFound
	}
	if err != nil {
		return Profile{}, fmt.Errorf("get profile %s: %w", id, err)
	}
	return profile, nil
}

func (r ProfileRepository) SaveProfile(profile Profile) error {
	bytes, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(profileKey(profile.ID), bytes)
	})
}

// RegisterToken adds a delivery token to a user's token set. Registering
// the same token twice is a no-op.
func (r ProfileRepository) RegisterToken(id, token string) error {
	return r.mutateTokens(id, func(tokens []string) []string {
		if lo.Contains(tokens, token) {
			return tokens
		}
		return append(tokens, token)
	})
}

// RemoveTokens subtracts exactly the given tokens from a user's token set.
// The read and write happen in one transaction, so concurrent prunes and
// registrations compose without losing unrelated tokens.
func (r ProfileRepository) RemoveTokens(id string, tokens []string) error {
	return r.mutateTokens(id, func(stored []string) []string {
		return lo.Without(stored, tokens...)
	})
}

func (r ProfileRepository) mutateTokens(id string, mutate func([]string) []string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(profileKey(id))
		if err == badger.ErrKeyNotFound {
			return errors.ErrProfileNotFound
		}
		if err != nil {
			return err
		}

		var profile Profile
		if err = item.Value(func(val []byte) error {
			return json.Unmarshal(val, &profile)
		}); err != nil {
			return err
		}

		profile.Tokens = mutate(profile.Tokens)

		bytes, err := json.Marshal(profile)
		if err != nil {
			return err
		}
		return txn.Set(profileKey(id), bytes)
	})
}
