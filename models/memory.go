package models

import "time"

// ChannelMessages is the memory channel that holds chat messages and the
// audit records the agent writes alongside them.
const ChannelMessages = "messages"

// Content is the payload of a memory record
type Content struct {
	Text    string   `json:"text"`
	Thought string   `json:"thought,omitempty"`
	Actions []string `json:"actions,omitempty"`
	Source  string   `json:"source,omitempty"`
}

// Memory is an append-only record: a chat message, or an audit entry the
// agent writes about its own decisions. UserID is the originating actor,
// AgentID the agent acting when the record was created. Records are never
// mutated after append.
type Memory struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	AgentID   string    `json:"agent_id"`
	RoomID    string    `json:"room_id"`
	Content   Content   `json:"content"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// State is the request-scoped conversation snapshot assembled by the caller
// before invoking an agent workflow. Room is an optional cached room object;
// when present it saves the workflow a room lookup.
type State struct {
	RecentMessages []Memory
	Room           *Room
}
