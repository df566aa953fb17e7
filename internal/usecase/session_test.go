package usecase

import (
	"testing"

	"github.com/shopsage/backend/internal/domain"
)

func TestSessionStore(t *testing.T) {
	store := NewSessionStore()

	t.Run("create assigns unique IDs", func(t *testing.T) {
		first := store.Create("Asha")
		second := store.Create("")

		if first.ID == "" || second.ID == "" {
			t.Fatal("expected non-empty session IDs")
		}
		if first.ID == second.ID {
			t.Error("session IDs must be unique")
		}
		if first.UserName != "Asha" {
			t.Errorf("UserName = %q, want Asha", first.UserName)
		}
	})

	t.Run("get returns stored session", func(t *testing.T) {
		created := store.Create("")
		got, err := store.Get(created.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != created {
			t.Error("Get returned a different session")
		}
	})

	t.Run("get unknown ID returns ErrSessionNotFound", func(t *testing.T) {
		_, err := store.Get("missing")
		if err != domain.ErrSessionNotFound {
			t.Errorf("error = %v, want ErrSessionNotFound", err)
		}
	})

	t.Run("delete removes the session", func(t *testing.T) {
		created := store.Create("")
		store.Delete(created.ID)
		if _, err := store.Get(created.ID); err != domain.ErrSessionNotFound {
			t.Errorf("error = %v, want ErrSessionNotFound after delete", err)
		}
	})
}

func TestSessionTransitions(t *testing.T) {
	store := NewSessionStore()
	session := store.Create("Asha")

	result := &domain.SearchResult{Query: "MacBook M3 Pro", Listings: []domain.Listing{}}

	t.Run("start search records inputs and clears results", func(t *testing.T) {
		session.CompleteSearch(result)
		session.StartSearch("MacBook M3", "pro, 16-inch")

		if session.BaseProduct != "MacBook M3" {
			t.Errorf("BaseProduct = %q", session.BaseProduct)
		}
		if session.PreferenceText != "pro, 16-inch" {
			t.Errorf("PreferenceText = %q", session.PreferenceText)
		}
		if session.SearchPerformed || session.Result != nil {
			t.Error("starting a search must clear the previous result")
		}
	})

	t.Run("complete search stores the result", func(t *testing.T) {
		session.StartSearch("MacBook M3", "pro")
		session.CompleteSearch(result)

		if !session.SearchPerformed {
			t.Error("SearchPerformed = false after CompleteSearch")
		}
		if session.Result != result {
			t.Error("Result not stored")
		}
	})

	t.Run("reset clears everything but the user", func(t *testing.T) {
		session.Reset()

		if session.BaseProduct != "" || session.PreferenceText != "" || session.Result != nil || session.SearchPerformed {
			t.Error("Reset must clear search state")
		}
		if session.UserName != "Asha" {
			t.Errorf("UserName = %q, want Asha to survive reset", session.UserName)
		}
	})
}
