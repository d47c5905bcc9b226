package identity

import (
	"errors"
	"testing"

	"engagetrack/internal/domain/entities"
)

func TestSessionTokens_RoundTrip(t *testing.T) {
	tokens := NewSessionTokens()

	issued, err := tokens.Issue(entities.User{AzureID: "az-1", FullName: "J. Doe", Email: "jdoe@example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sub, err := tokens.Verify(issued)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub != "az-1" {
		t.Fatalf("expected subject az-1, got %q", sub)
	}
}

func TestSessionTokens_Verify(t *testing.T) {
	tokens := NewSessionTokens()

	t.Run("garbage token", func(t *testing.T) {
		if _, err := tokens.Verify("not-a-jwt"); !errors.Is(err, ErrInvalidSession) {
			t.Fatalf("expected ErrInvalidSession, got %v", err)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := &SessionTokens{secret: []byte("different-secret")}
		issued, err := other.Issue(entities.User{AzureID: "az-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := tokens.Verify(issued); !errors.Is(err, ErrInvalidSession) {
			t.Fatalf("expected ErrInvalidSession, got %v", err)
		}
	})

	t.Run("missing subject", func(t *testing.T) {
		issued, err := tokens.Issue(entities.User{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := tokens.Verify(issued); !errors.Is(err, ErrInvalidSession) {
			t.Fatalf("expected ErrInvalidSession, got %v", err)
		}
	})
}
