package agent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"roomagent/models"
	"roomagent/prompts"
)

// ErrMissingState is returned when the mute workflow is invoked without a
// conversation snapshot. The workflow cannot evaluate the policy prompt
// without recent history, so this aborts the invocation.
var ErrMissingState = errors.New("mute evaluation requires conversation state")

// Action tags written on audit records by the mute workflow
const (
	ActionMuteRoomStarted = "MUTE_ROOM_STARTED"
	ActionMuteRoomFailed  = "MUTE_ROOM_FAILED"
	ActionMuteRoomStart   = "MUTE_ROOM_START"
	ActionMuteRoom        = "MUTE_ROOM"
)

// EligibleForMute reports whether the mute workflow should run for the room
// the message was posted in: true unless the agent is already muted there.
// Always a fresh read; never cached across invocations.
func (r *Runtime) EligibleForMute(ctx context.Context, message *models.Memory) (bool, error) {
	state, err := r.Participants.GetState(ctx, message.RoomID, r.Agent.ID)
	if err != nil {
		return false, err
	}
	return state != models.StateMuted, nil
}

// MuteRoom decides from recent conversation whether the agent should stop
// participating in the room the message was posted in, and enacts the
// decision. The stages run in order: eligibility guard, policy evaluation
// against the completion service, reply classification, state commit.
// responses carries any already-drafted replies for interface parity with
// other workflows; the mute decision does not consult them.
func (r *Runtime) MuteRoom(ctx context.Context, message *models.Memory, state *models.State, responses []*models.Memory) error {
	eligible, err := r.EligibleForMute(ctx, message)
	if err != nil {
		return err
	}
	if !eligible {
		log.Printf("[MUTE_ROOM] %s already muted in room %s, skipping", r.Agent.Name, message.RoomID)
		return nil
	}

	if state == nil {
		log.Printf("[MUTE_ROOM_ERROR] no conversation state supplied for room %s", message.RoomID)
		return ErrMissingState
	}

	prompt := prompts.BuildMutePrompt(r.Agent.Name, state.RecentMessages)

	reply, err := r.Completion.Complete(ctx, r.SmallModel, prompt, nil)
	if err != nil {
		return err
	}

	decision := ClassifyDecision(reply)
	switch decision {
	case DecisionMute:
		audit := r.auditMemory(message, "I will now mute this room", ActionMuteRoomStarted)
		if err := r.Memories.Append(ctx, audit, models.ChannelMessages); err != nil {
			return err
		}
		if err := r.Participants.SetState(ctx, message.RoomID, r.Agent.ID, models.StateMuted); err != nil {
			return err
		}
	case DecisionNoMute:
		audit := r.auditMemory(message, "I decided to not mute this room", ActionMuteRoomFailed)
		if err := r.Memories.Append(ctx, audit, models.ChannelMessages); err != nil {
			return err
		}
	default:
		log.Printf("[MUTE_ROOM_WARNING] unclear mute decision reply %q for room %s, treating as no", reply, message.RoomID)
	}

	// Closing audit. Prefer the room object cached in the snapshot to save
	// a lookup. Note this fires on the no-mute path too; kept as-is for
	// compatibility with the original behavior.
	room := state.Room
	if room == nil {
		room, err = r.Rooms.GetRoom(ctx, message.RoomID)
		if err != nil {
			return err
		}
	}

	thought := fmt.Sprintf("I muted the room %s", room.Name)
	closing := r.auditMemory(message, thought, ActionMuteRoomStart)
	if err := r.Memories.Append(ctx, closing, models.ChannelMessages); err != nil {
		return err
	}

	// Synthetic acknowledgment authored by the agent itself: empty visible
	// text, the thought carries the substance.
	ack := &models.Memory{
		ID:      uuid.NewString(),
		UserID:  r.Agent.ID,
		AgentID: r.Agent.ID,
		RoomID:  message.RoomID,
		Content: models.Content{
			Text:    "",
			Thought: thought,
			Actions: []string{ActionMuteRoom},
			Source:  message.Content.Source,
		},
		Type:      models.ChannelMessages,
		CreatedAt: time.Now(),
	}
	return r.Memories.Append(ctx, ack, models.ChannelMessages)
}

// auditMemory builds an audit record tied to the triggering message
func (r *Runtime) auditMemory(message *models.Memory, thought, action string) *models.Memory {
	return &models.Memory{
		ID:      uuid.NewString(),
		UserID:  message.UserID,
		AgentID: r.Agent.ID,
		RoomID:  message.RoomID,
		Content: models.Content{
			Thought: thought,
			Actions: []string{action},
		},
		Type:      models.ChannelMessages,
		CreatedAt: time.Now(),
	}
}
