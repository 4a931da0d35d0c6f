package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_Matches(t *testing.T) {
	u := &User{Email: "ravi@example.com", Phone: "9876543210"}

	assert.True(t, u.Matches("ravi@example.com"))
	assert.True(t, u.Matches("9876543210"))
	assert.False(t, u.Matches("RAVI@example.com"))
	assert.False(t, u.Matches(""))
}

func TestUser_StringHidesPassword(t *testing.T) {
	u := User{Name: "Ravi Kumar", Email: "ravi@example.com", Password: "$argon2id$secret"}
	assert.NotContains(t, u.String(), "argon2id")
	assert.Contains(t, u.String(), "Ravi Kumar")
}

func TestUser_JSONFieldNames(t *testing.T) {
	u := User{
		ID:            "user_1",
		FarmSize:      "2",
		AccountStatus: AccountStatusActive,
		Preferences:   DefaultPreferences("ml"),
	}
	b, err := json.Marshal(u)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, "user_1", m["id"])
	assert.Equal(t, "2", m["farmSize"])
	assert.Equal(t, "active", m["accountStatus"])
	assert.Equal(t, map[string]any{"theme": "light", "notifications": true, "language": "ml"}, m["preferences"])
}

func TestSession_ValidAt(t *testing.T) {
	exp := time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC)
	s := &Session{Expires: exp}

	assert.True(t, s.ValidAt(exp.Add(-time.Second)))
	assert.False(t, s.ValidAt(exp))
	assert.False(t, s.ValidAt(exp.Add(time.Second)))
}
