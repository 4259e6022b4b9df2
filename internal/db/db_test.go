package db_test

import (
	"testing"

	"github.com/saveloop/saveloop/internal/testutil"
)

func TestForeignKeyCascadeDelete(t *testing.T) {
	// Setup test database with migrations already applied
	db := testutil.SetupTestDB(t)

	// Verify foreign keys are enabled
	var foreignKeysEnabled int
	err := db.QueryRow("PRAGMA foreign_keys").Scan(&foreignKeysEnabled)
	if err != nil {
		t.Fatalf("Failed to check foreign keys status: %v", err)
	}
	if foreignKeysEnabled != 1 {
		t.Errorf("Foreign keys should be enabled, got: %d", foreignKeysEnabled)
	}

	// Create test data across every table hanging off users.
	_, err = db.Exec("INSERT INTO users (username, email, password_hash, role, created_at) VALUES (?, ?, ?, ?, datetime('now'))",
		"testuser", "testuser@example.com", "hash", "user")
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	_, err = db.Exec("INSERT INTO sessions (token, user_id, expiry) VALUES (?, ?, datetime('now', '+7 days'))",
		"tok123", 1)
	if err != nil {
		t.Fatalf("Failed to create test session: %v", err)
	}

	_, err = db.Exec(`INSERT INTO downloads (user_id, url, platform, quality, content_type, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, datetime('now'))`,
		1, "https://youtu.be/abc", "youtube", "720p", "video", "queued")
	if err != nil {
		t.Fatalf("Failed to create test download: %v", err)
	}

	_, err = db.Exec("INSERT INTO subscriptions (user_id, plan_id, status, created_at) VALUES (?, ?, ?, datetime('now'))",
		1, "basic", "active")
	if err != nil {
		t.Fatalf("Failed to create test subscription: %v", err)
	}

	// Deleting the user must cascade through sessions, downloads and
	// subscriptions.
	if _, err = db.Exec("DELETE FROM users WHERE id = 1"); err != nil {
		t.Fatalf("Failed to delete user: %v", err)
	}

	for _, table := range []string{"sessions", "downloads", "subscriptions"} {
		var count int
		err = db.QueryRow("SELECT COUNT(*) FROM " + table + " WHERE user_id = 1").Scan(&count)
		if err != nil {
			t.Fatalf("Failed to check %s: %v", table, err)
		}
		if count != 0 {
			t.Errorf("Expected 0 records in %s after user deletion, got %d", table, count)
		}
	}
}
