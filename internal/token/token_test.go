package token

import (
	"testing"
	"time"
)

func TestIssueAndParse(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)

	tokenString, err := manager.Issue("user-123", "session-456")
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}

	userID, sessionID, err := manager.Parse(tokenString)
	if err != nil {
		t.Fatalf("Failed to parse token: %v", err)
	}

	if userID != "user-123" {
		t.Errorf("Expected user ID 'user-123', got '%s'", userID)
	}
	if sessionID != "session-456" {
		t.Errorf("Expected session ID 'session-456', got '%s'", sessionID)
	}
}

func TestParseWrongSecret(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)
	other := NewManager("different-secret", time.Hour)

	tokenString, err := manager.Issue("user-123", "session-456")
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}

	if _, _, err := other.Parse(tokenString); err == nil {
		t.Error("Expected error parsing token with wrong secret")
	}
}

func TestParseExpiredToken(t *testing.T) {
	manager := NewManager("test-secret", -time.Minute)

	tokenString, err := manager.Issue("user-123", "session-456")
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}

	if _, _, err := manager.Parse(tokenString); err == nil {
		t.Error("Expected error parsing expired token")
	}
}

func TestParseGarbage(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)

	for _, input := range []string{"", "not-a-token", "aaa.bbb.ccc"} {
		if _, _, err := manager.Parse(input); err == nil {
			t.Errorf("Expected error parsing %q", input)
		}
	}
}
