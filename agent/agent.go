package agent

import (
	"context"

	"roomagent/models"
)

// Agent is the identity an agent runtime acts under
type Agent struct {
	ID   string
	Name string
}

// CompletionClient calls an external text-completion service. The call may
// block on network I/O; errors are returned to the caller unchanged.
type CompletionClient interface {
	Complete(ctx context.Context, model, prompt string, stop []string) (string, error)
}

// ParticipantStore reads and writes per-(room, user) participation state
type ParticipantStore interface {
	GetState(ctx context.Context, roomID, userID string) (models.ParticipantState, error)
	SetState(ctx context.Context, roomID, userID string, state models.ParticipantState) error
}

// MemoryStore appends records to a named memory channel
type MemoryStore interface {
	Append(ctx context.Context, mem *models.Memory, channel string) error
}

// RoomStore looks up rooms by ID
type RoomStore interface {
	GetRoom(ctx context.Context, roomID string) (*models.Room, error)
}

// Runtime bundles an agent identity with the capabilities its workflows
// need. All external collaborators are injected so tests can substitute
// scripted completions and in-memory stores.
type Runtime struct {
	Agent        Agent
	Completion   CompletionClient
	Participants ParticipantStore
	Memories     MemoryStore
	Rooms        RoomStore

	// SmallModel is the fast model tier used for yes-or-no decisions
	SmallModel string
}
