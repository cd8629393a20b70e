package session

import (
	"context"
	"sync"
	"time"

	"github.com/gofrs/uuid"

	"github.com/datafield/asset-library-backend/internal/entity"
	"github.com/datafield/asset-library-backend/internal/model/response"
	"github.com/datafield/asset-library-backend/internal/service/redis"
	"github.com/datafield/asset-library-backend/internal/service/user"
)

const environmentCacheTTL = 12 * time.Hour

// SessionService is the session provider for the draft workflow: it
// tracks whether an account is attached yet, fans out one readiness
// notification when it arrives, and serves the country/sector reference
// lists.
type SessionService struct {
	userSrv *user.UserService
	cache   redis.ServiceInterface

	mu        sync.Mutex
	accountID *uuid.UUID
	nextID    int
	readySubs map[int]func()
}

// NewSessionService builds a session service. cache may be nil; the
// environment lists are then served straight from the catalog.
func NewSessionService(userSrv *user.UserService, cache redis.ServiceInterface) *SessionService {
	return &SessionService{
		userSrv:   userSrv,
		cache:     cache,
		readySubs: make(map[int]func()),
	}
}

func (s *SessionService) CurrentAccountPresent() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accountID != nil
}

func (s *SessionService) CurrentAccountID() (uuid.UUID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.accountID == nil {
		return uuid.Nil, false
	}
	return *s.accountID, true
}

// SetCurrentAccount attaches the account and fires every readiness
// subscriber exactly once. Repeat calls update the account without
// re-notifying.
func (s *SessionService) SetCurrentAccount(accountID uuid.UUID) {
	s.mu.Lock()
	alreadyPresent := s.accountID != nil
	s.accountID = &accountID

	var subs []func()
	if !alreadyPresent {
		subs = make([]func(), 0, len(s.readySubs))
		for _, fn := range s.readySubs {
			subs = append(subs, fn)
		}
		s.readySubs = make(map[int]func())
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

// SubscribeReady registers fn to run when an account becomes present. If
// one already is, fn runs immediately. The returned handle is safe to
// call after the notification has fired.
func (s *SessionService) SubscribeReady(fn func()) func() {
	s.mu.Lock()
	if s.accountID != nil {
		s.mu.Unlock()
		fn()
		return func() {}
	}

	id := s.nextID
	s.nextID++
	s.readySubs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.readySubs, id)
	}
}

func (s *SessionService) AvailableCountries() []entity.OptionPair {
	return Countries()
}

func (s *SessionService) AvailableSectors() []entity.OptionPair {
	return Sectors()
}

// Environment returns the reference lists served to clients, cached in
// redis when a cache is attached.
func (s *SessionService) Environment(ctx context.Context) response.Environment {
	if s.cache != nil {
		var cached response.Environment
		if err := s.cache.GetEnvironment(ctx, &cached); err == nil {
			return cached
		}
	}

	env := response.Environment{
		AvailableCountries: Countries(),
		AvailableSectors:   Sectors(),
	}

	if s.cache != nil {
		s.cache.CacheEnvironment(ctx, env, environmentCacheTTL)
	}

	return env
}

func (s *SessionService) Profile(accountID uuid.UUID) (response.User, error) {
	return s.userSrv.GetUserById(accountID)
}
