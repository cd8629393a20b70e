package session

import (
	"context"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStartsWithoutAccount(t *testing.T) {
	srv := NewSessionService(nil, nil)

	assert.False(t, srv.CurrentAccountPresent())
	_, ok := srv.CurrentAccountID()
	assert.False(t, ok)
}

func TestSetCurrentAccountNotifiesOnce(t *testing.T) {
	srv := NewSessionService(nil, nil)

	notified := 0
	srv.SubscribeReady(func() { notified++ })

	accountID := uuid.Must(uuid.NewV4())
	srv.SetCurrentAccount(accountID)

	assert.True(t, srv.CurrentAccountPresent())
	got, ok := srv.CurrentAccountID()
	assert.True(t, ok)
	assert.Equal(t, accountID, got)
	assert.Equal(t, 1, notified)

	// A second account swap does not re-notify.
	srv.SetCurrentAccount(uuid.Must(uuid.NewV4()))
	assert.Equal(t, 1, notified)
}

func TestSubscribeReadyAfterAccountPresent(t *testing.T) {
	srv := NewSessionService(nil, nil)
	srv.SetCurrentAccount(uuid.Must(uuid.NewV4()))

	notified := 0
	unsub := srv.SubscribeReady(func() { notified++ })
	assert.Equal(t, 1, notified)

	// The returned handle is callable even though the event already fired.
	unsub()
}

func TestUnsubscribeReady(t *testing.T) {
	srv := NewSessionService(nil, nil)

	notified := 0
	unsub := srv.SubscribeReady(func() { notified++ })
	unsub()

	srv.SetCurrentAccount(uuid.Must(uuid.NewV4()))
	assert.Equal(t, 0, notified)
}

func TestEnvironmentWithoutCache(t *testing.T) {
	srv := NewSessionService(nil, nil)

	env := srv.Environment(context.Background())
	assert.NotEmpty(t, env.AvailableCountries)
	assert.NotEmpty(t, env.AvailableSectors)
}

func TestCatalogReturnsCopies(t *testing.T) {
	first := Sectors()
	require.NotEmpty(t, first)
	first[0].Label = "mutated"

	assert.NotEqual(t, "mutated", Sectors()[0].Label)
}

func TestCatalogEntriesAreWellFormed(t *testing.T) {
	for _, option := range Sectors() {
		assert.NotEmpty(t, option.Value)
		assert.NotEmpty(t, option.Label)
	}
	for _, option := range Countries() {
		assert.Len(t, option.Value, 3, "country values are ISO 3166-1 alpha-3 codes")
		assert.NotEmpty(t, option.Label)
	}
}
