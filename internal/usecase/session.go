package usecase

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shopsage/backend/internal/domain"
)

// Session holds the interaction state for one shopper between requests.
// State changes go through the explicit transitions below instead of ambient
// mutable fields. Sessions live only in memory and vanish on restart.
type Session struct {
	ID              string               `json:"id"`
	UserName        string               `json:"userName,omitempty"`
	BaseProduct     string               `json:"baseProduct,omitempty"`
	PreferenceText  string               `json:"preferenceText,omitempty"`
	Result          *domain.SearchResult `json:"result,omitempty"`
	SearchPerformed bool                 `json:"searchPerformed"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
}

// StartSearch records the inputs of a new search and clears any previous result.
func (s *Session) StartSearch(baseProduct, preferenceText string) {
	s.BaseProduct = baseProduct
	s.PreferenceText = preferenceText
	s.Result = nil
	s.SearchPerformed = false
	s.UpdatedAt = time.Now()
}

// CompleteSearch stores the outcome of the search that StartSearch began.
func (s *Session) CompleteSearch(result *domain.SearchResult) {
	s.Result = result
	s.SearchPerformed = true
	s.UpdatedAt = time.Now()
}

// Reset returns the session to its pre-search state, keeping the user name.
func (s *Session) Reset() {
	s.BaseProduct = ""
	s.PreferenceText = ""
	s.Result = nil
	s.SearchPerformed = false
	s.UpdatedAt = time.Now()
}

// SessionStore is an in-memory, mutex-guarded session registry keyed by UUID.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewSessionStore creates an empty session store
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
	}
}

// Create registers a new session for the given (optional) user name.
func (st *SessionStore) Create(userName string) *Session {
	now := time.Now()
	session := &Session{
		ID:        uuid.NewString(),
		UserName:  userName,
		CreatedAt: now,
		UpdatedAt: now,
	}

	st.mu.Lock()
	st.sessions[session.ID] = session
	st.mu.Unlock()

	return session
}

// Get looks up a session by ID.
func (st *SessionStore) Get(id string) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	session, ok := st.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

// Delete removes a session. Deleting an unknown ID is a no-op.
func (st *SessionStore) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}
