package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RoomDocument is a conversation room as stored in the rooms collection
type RoomDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

// ParticipantDocument tracks per-(room, user) participation state.
// Keyed by (room_id, user_id); a missing document means ACTIVE.
type ParticipantDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	RoomID    primitive.ObjectID `bson:"room_id"`
	UserID    string             `bson:"user_id"`
	State     string             `bson:"state"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

// MemoryDocument is an append-only record in a memory channel collection.
// Covers both chat messages and the audit records agents write about
// their own decisions.
type MemoryDocument struct {
	ID        string             `bson:"_id"`
	UserID    string             `bson:"user_id"`
	AgentID   string             `bson:"agent_id"`
	RoomID    primitive.ObjectID `bson:"room_id"`
	Text      string             `bson:"text"`
	Thought   string             `bson:"thought,omitempty"`
	Actions   []string           `bson:"actions,omitempty"`
	Source    string             `bson:"source,omitempty"`
	Type      string             `bson:"type"`
	CreatedAt time.Time          `bson:"created_at"`
}
