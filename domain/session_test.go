package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_MessageCount_excludes_the_greeting(t *testing.T) {
	req := require.New(t)

	req.Zero(SessionState{}.MessageCount())

	greetingOnly := SessionState{Messages: []Message{{ID: 0, Role: RoleAssistant, Content: "Welcome"}}}
	req.Zero(greetingOnly.MessageCount())

	conversation := SessionState{Messages: []Message{
		{ID: 0, Role: RoleAssistant, Content: "Welcome"},
		{ID: 1, Role: RoleUser, Content: "question"},
		{ID: 2, Role: RoleAssistant, Content: "answer"},
	}}
	req.Equal(2, conversation.MessageCount())

	// A log without a greeting counts every entry.
	bare := SessionState{Messages: []Message{
		{ID: 1, Role: RoleUser, Content: "question"},
	}}
	req.Equal(1, bare.MessageCount())
}

func Test_RequestStatus_strings(t *testing.T) {
	req := require.New(t)
	req.Equal("in-flight", StatusInFlight.String())
	req.Equal("fulfilled", StatusFulfilled.String())
	req.Equal("failed", StatusFailed.String())
	req.Equal("unknown", RequestStatus(99).String())
}
