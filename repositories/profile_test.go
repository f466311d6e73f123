package repositories

import (
	"testing"
	"time"

	"chat-notify/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func Test_Profile_Save_And_Get(t *testing.T) {
	req := require.New(t)
	repository := NewProfileRepository(openTestDB(t))

	profile := Profile{
		ID:         "bob",
		FullName:   "Bob B",
		Privileged: false,
		Tokens:     []string{"t1", "t2"},
		CreatedAt:  time.Now().UTC().Truncate(time.Second),
	}
	req.NoError(repository.SaveProfile(profile))

	fetched, err := repository.GetProfile("bob")
	req.NoError(err)
	req.Equal(profile, fetched)
}

func Test_Profile_Not_Found(t *testing.T) {
	req := require.New(t)
	repository := NewProfileRepository(openTestDB(t))

	_, err := repository.GetProfile("ghost")
	req.ErrorIs(err, errors.ErrProfileNotFound)
}

func Test_Profile_Register_Token(t *testing.T) {
	req := require.New(t)
	repository := NewProfileRepository(openTestDB(t))

	req.NoError(repository.SaveProfile(Profile{ID: "bob"}))
	req.NoError(repository.RegisterToken("bob", "t1"))
	req.NoError(repository.RegisterToken("bob", "t2"))
	// Re-registering is a no-op, not a duplicate.
	req.NoError(repository.RegisterToken("bob", "t1"))

	fetched, err := repository.GetProfile("bob")
	req.NoError(err)
	req.Equal([]string{"t1", "t2"}, fetched.Tokens)
}

func Test_Profile_Remove_Tokens(t *testing.T) {
	req := require.New(t)
	repository := NewProfileRepository(openTestDB(t))

	req.NoError(repository.SaveProfile(Profile{
		ID:     "bob",
		Tokens: []string{"t1", "t2", "t3"},
	}))

	req.NoError(repository.RemoveTokens("bob", []string{"t1", "t3", "never-registered"}))

	fetched, err := repository.GetProfile("bob")
	req.NoError(err)
	req.Equal([]string{"t2"}, fetched.Tokens)
}

func Test_Profile_Remove_Tokens_Keeps_Other_Fields(t *testing.T) {
	req := require.New(t)
	repository := NewProfileRepository(openTestDB(t))

	req.NoError(repository.SaveProfile(Profile{
		ID:         "bob",
		FullName:   "Bob B",
		Privileged: true,
		Tokens:     []string{"t1"},
	}))

	req.NoError(repository.RemoveTokens("bob", []string{"t1"}))

	fetched, err := repository.GetProfile("bob")
	req.NoError(err)
	req.Equal("Bob B", fetched.FullName)
	req.True(fetched.Privileged)
	req.Empty(fetched.Tokens)
}

func Test_Profile_Remove_Tokens_Missing_Profile(t *testing.T) {
	req := require.New(t)
	repository := NewProfileRepository(openTestDB(t))

	err := repository.RemoveTokens("ghost", []string{"t1"})
	req.ErrorIs(err, errors.ErrProfileNotFound)
}
