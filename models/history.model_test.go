package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextStatusOnAttend(t *testing.T) {
	tests := []struct {
		current string
		next    string
		changed bool
	}{
		{StatusRegistered, StatusAttended, true},
		{StatusAttended, StatusAttended, false},
		{StatusSubmitted, StatusSubmitted, false},
		{StatusVerified, StatusVerified, false},
		{StatusRejected, StatusRejected, false},
	}

	for _, tt := range tests {
		next, changed := NextStatusOnAttend(tt.current)
		assert.Equal(t, tt.next, next, "from %s", tt.current)
		assert.Equal(t, tt.changed, changed, "from %s", tt.current)
	}
}

func TestIsVerdict(t *testing.T) {
	assert.True(t, IsVerdict(StatusVerified))
	assert.True(t, IsVerdict(StatusRejected))
	assert.False(t, IsVerdict(StatusSubmitted))
	assert.False(t, IsVerdict(StatusRegistered))
	assert.False(t, IsVerdict("approved"))
	assert.False(t, IsVerdict(""))
}

func TestCountsTowardJP(t *testing.T) {
	assert.False(t, CountsTowardJP(StatusRegistered))
	assert.True(t, CountsTowardJP(StatusAttended))
	assert.True(t, CountsTowardJP(StatusSubmitted))
	assert.True(t, CountsTowardJP(StatusVerified))
	assert.False(t, CountsTowardJP(StatusRejected))
}

func TestIsValidHistoryStatus(t *testing.T) {
	for _, s := range []string{StatusRegistered, StatusAttended, StatusSubmitted, StatusVerified, StatusRejected} {
		assert.True(t, IsValidHistoryStatus(s), s)
	}
	assert.False(t, IsValidHistoryStatus("completed"))
}
