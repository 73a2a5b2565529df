package agent

import (
	"context"
	"errors"
	"testing"

	"roomagent/models"
)

type scriptedCompletion struct {
	reply string
	err   error

	calls      int
	lastModel  string
	lastPrompt string
	lastStop   []string
}

func (c *scriptedCompletion) Complete(ctx context.Context, model, prompt string, stop []string) (string, error) {
	c.calls++
	c.lastModel = model
	c.lastPrompt = prompt
	c.lastStop = stop
	if c.err != nil {
		return "", c.err
	}
	return c.reply, nil
}

type fakeParticipants struct {
	states   map[string]models.ParticipantState
	setCalls int
}

func participantKey(roomID, userID string) string {
	return roomID + "|" + userID
}

func (p *fakeParticipants) GetState(ctx context.Context, roomID, userID string) (models.ParticipantState, error) {
	if state, ok := p.states[participantKey(roomID, userID)]; ok {
		return state, nil
	}
	return models.StateActive, nil
}

func (p *fakeParticipants) SetState(ctx context.Context, roomID, userID string, state models.ParticipantState) error {
	p.states[participantKey(roomID, userID)] = state
	p.setCalls++
	return nil
}

type fakeMemories struct {
	records  []*models.Memory
	channels []string
}

func (m *fakeMemories) Append(ctx context.Context, mem *models.Memory, channel string) error {
	m.records = append(m.records, mem)
	m.channels = append(m.channels, channel)
	return nil
}

type fakeRooms struct {
	rooms map[string]*models.Room
	calls int
}

var errUnknownRoom = errors.New("room not found")

func (r *fakeRooms) GetRoom(ctx context.Context, roomID string) (*models.Room, error) {
	r.calls++
	room, ok := r.rooms[roomID]
	if !ok {
		return nil, errUnknownRoom
	}
	return room, nil
}

const (
	testRoomID  = "room-1"
	testUserID  = "user-1"
	testAgentID = "agent-1"
)

type muteFixture struct {
	runtime      *Runtime
	completion   *scriptedCompletion
	participants *fakeParticipants
	memories     *fakeMemories
	rooms        *fakeRooms
}

func newMuteFixture(reply string) *muteFixture {
	completion := &scriptedCompletion{reply: reply}
	participants := &fakeParticipants{states: make(map[string]models.ParticipantState)}
	memories := &fakeMemories{}
	rooms := &fakeRooms{rooms: map[string]*models.Room{
		testRoomID: {ID: testRoomID, Name: "general"},
	}}

	return &muteFixture{
		runtime: &Runtime{
			Agent:        Agent{ID: testAgentID, Name: "Sage"},
			Completion:   completion,
			Participants: participants,
			Memories:     memories,
			Rooms:        rooms,
			SmallModel:   "small-model",
		},
		completion:   completion,
		participants: participants,
		memories:     memories,
		rooms:        rooms,
	}
}

func triggerMessage() *models.Memory {
	return &models.Memory{
		ID:      "msg-1",
		UserID:  testUserID,
		AgentID: testAgentID,
		RoomID:  testRoomID,
		Content: models.Content{Text: "please stop responding", Source: "discord"},
		Type:    models.ChannelMessages,
	}
}

func snapshot() *models.State {
	return &models.State{
		RecentMessages: []models.Memory{*triggerMessage()},
	}
}

func actionsOf(records []*models.Memory) []string {
	var actions []string
	for _, rec := range records {
		actions = append(actions, rec.Content.Actions...)
	}
	return actions
}

func TestMuteRoomAffirmativeDecision(t *testing.T) {
	f := newMuteFixture("YES I think we should mute")

	err := f.runtime.MuteRoom(context.Background(), triggerMessage(), snapshot(), nil)
	if err != nil {
		t.Fatalf("MuteRoom returned error: %v", err)
	}

	state, _ := f.participants.GetState(context.Background(), testRoomID, testAgentID)
	if state != models.StateMuted {
		t.Errorf("participant state = %v, want MUTED", state)
	}

	actions := actionsOf(f.memories.records)
	expected := []string{ActionMuteRoomStarted, ActionMuteRoomStart, ActionMuteRoom}
	if len(actions) != len(expected) {
		t.Fatalf("audit actions = %v, want %v", actions, expected)
	}
	for i := range expected {
		if actions[i] != expected[i] {
			t.Errorf("audit action[%d] = %q, want %q", i, actions[i], expected[i])
		}
	}

	for _, channel := range f.memories.channels {
		if channel != models.ChannelMessages {
			t.Errorf("memory written to channel %q, want %q", channel, models.ChannelMessages)
		}
	}

	ack := f.memories.records[len(f.memories.records)-1]
	if ack.UserID != testAgentID {
		t.Errorf("acknowledgment authored by %q, want agent's own identity %q", ack.UserID, testAgentID)
	}
	if ack.Content.Text != "" {
		t.Errorf("acknowledgment text = %q, want empty", ack.Content.Text)
	}
	if ack.Content.Thought != "I muted the room general" {
		t.Errorf("acknowledgment thought = %q", ack.Content.Thought)
	}
	if ack.Content.Source != "discord" {
		t.Errorf("acknowledgment source = %q, want carried over from trigger", ack.Content.Source)
	}

	if f.completion.lastModel != "small-model" {
		t.Errorf("completion model = %q, want small tier", f.completion.lastModel)
	}
	if f.completion.lastStop != nil {
		t.Errorf("completion stop sequences = %v, want none", f.completion.lastStop)
	}
}

func TestMuteRoomNegativeDecision(t *testing.T) {
	f := newMuteFixture("no, let's keep talking")

	err := f.runtime.MuteRoom(context.Background(), triggerMessage(), snapshot(), nil)
	if err != nil {
		t.Fatalf("MuteRoom returned error: %v", err)
	}

	state, _ := f.participants.GetState(context.Background(), testRoomID, testAgentID)
	if state != models.StateActive {
		t.Errorf("participant state = %v, want ACTIVE", state)
	}
	if f.participants.setCalls != 0 {
		t.Errorf("SetState called %d times, want 0", f.participants.setCalls)
	}

	// The closing audit and acknowledgment still fire on the negative path
	actions := actionsOf(f.memories.records)
	expected := []string{ActionMuteRoomFailed, ActionMuteRoomStart, ActionMuteRoom}
	if len(actions) != len(expected) {
		t.Fatalf("audit actions = %v, want %v", actions, expected)
	}
	for i := range expected {
		if actions[i] != expected[i] {
			t.Errorf("audit action[%d] = %q, want %q", i, actions[i], expected[i])
		}
	}
}

func TestMuteRoomUnclearDecision(t *testing.T) {
	f := newMuteFixture("maybe?")

	err := f.runtime.MuteRoom(context.Background(), triggerMessage(), snapshot(), nil)
	if err != nil {
		t.Fatalf("MuteRoom returned error: %v", err)
	}

	if f.participants.setCalls != 0 {
		t.Errorf("SetState called %d times, want 0", f.participants.setCalls)
	}

	// No classification audit for an unclear reply, closing records only
	actions := actionsOf(f.memories.records)
	expected := []string{ActionMuteRoomStart, ActionMuteRoom}
	if len(actions) != len(expected) {
		t.Fatalf("audit actions = %v, want %v", actions, expected)
	}
}

func TestMuteRoomGuardShortCircuits(t *testing.T) {
	f := newMuteFixture("YES")
	f.participants.states[participantKey(testRoomID, testAgentID)] = models.StateMuted

	err := f.runtime.MuteRoom(context.Background(), triggerMessage(), snapshot(), nil)
	if err != nil {
		t.Fatalf("MuteRoom returned error: %v", err)
	}

	if f.completion.calls != 0 {
		t.Errorf("completion called %d times, want 0", f.completion.calls)
	}
	if len(f.memories.records) != 0 {
		t.Errorf("%d memories written, want 0", len(f.memories.records))
	}
	if f.participants.setCalls != 0 {
		t.Errorf("SetState called %d times, want 0", f.participants.setCalls)
	}
}

func TestMuteRoomSecondInvocationIsNoOp(t *testing.T) {
	f := newMuteFixture("YES")

	if err := f.runtime.MuteRoom(context.Background(), triggerMessage(), snapshot(), nil); err != nil {
		t.Fatalf("first MuteRoom returned error: %v", err)
	}
	recordsAfterFirst := len(f.memories.records)

	if err := f.runtime.MuteRoom(context.Background(), triggerMessage(), snapshot(), nil); err != nil {
		t.Fatalf("second MuteRoom returned error: %v", err)
	}

	if f.completion.calls != 1 {
		t.Errorf("completion called %d times across both runs, want 1", f.completion.calls)
	}
	if len(f.memories.records) != recordsAfterFirst {
		t.Errorf("second run appended %d memories, want 0", len(f.memories.records)-recordsAfterFirst)
	}
	state, _ := f.participants.GetState(context.Background(), testRoomID, testAgentID)
	if state != models.StateMuted {
		t.Errorf("participant state = %v, want MUTED", state)
	}
}

func TestMuteRoomRequiresState(t *testing.T) {
	f := newMuteFixture("YES")

	err := f.runtime.MuteRoom(context.Background(), triggerMessage(), nil, nil)
	if !errors.Is(err, ErrMissingState) {
		t.Fatalf("MuteRoom error = %v, want ErrMissingState", err)
	}

	if f.completion.calls != 0 {
		t.Errorf("completion called %d times, want 0", f.completion.calls)
	}
	if len(f.memories.records) != 0 {
		t.Errorf("%d memories written, want 0", len(f.memories.records))
	}
}

func TestMuteRoomPropagatesCompletionError(t *testing.T) {
	f := newMuteFixture("")
	serviceErr := errors.New("completion service unavailable")
	f.completion.err = serviceErr

	err := f.runtime.MuteRoom(context.Background(), triggerMessage(), snapshot(), nil)
	if !errors.Is(err, serviceErr) {
		t.Fatalf("MuteRoom error = %v, want completion service error", err)
	}

	if len(f.memories.records) != 0 {
		t.Errorf("%d memories written after completion failure, want 0", len(f.memories.records))
	}
	if f.participants.setCalls != 0 {
		t.Errorf("SetState called %d times after completion failure, want 0", f.participants.setCalls)
	}
}

func TestMuteRoomUnknownRoom(t *testing.T) {
	f := newMuteFixture("no")
	delete(f.rooms.rooms, testRoomID)

	err := f.runtime.MuteRoom(context.Background(), triggerMessage(), snapshot(), nil)
	if !errors.Is(err, errUnknownRoom) {
		t.Fatalf("MuteRoom error = %v, want room lookup failure", err)
	}

	// Classification audit had already been written before the failing lookup
	actions := actionsOf(f.memories.records)
	if len(actions) != 1 || actions[0] != ActionMuteRoomFailed {
		t.Errorf("audit actions = %v, want only %q", actions, ActionMuteRoomFailed)
	}
}

func TestMuteRoomUsesCachedRoom(t *testing.T) {
	f := newMuteFixture("YES")

	state := snapshot()
	state.Room = &models.Room{ID: testRoomID, Name: "general"}

	if err := f.runtime.MuteRoom(context.Background(), triggerMessage(), state, nil); err != nil {
		t.Fatalf("MuteRoom returned error: %v", err)
	}

	if f.rooms.calls != 0 {
		t.Errorf("room lookup called %d times despite cached room, want 0", f.rooms.calls)
	}
}

func TestEligibleForMute(t *testing.T) {
	f := newMuteFixture("YES")

	eligible, err := f.runtime.EligibleForMute(context.Background(), triggerMessage())
	if err != nil {
		t.Fatalf("EligibleForMute returned error: %v", err)
	}
	if !eligible {
		t.Error("expected active participant to be eligible")
	}

	f.participants.states[participantKey(testRoomID, testAgentID)] = models.StateMuted
	eligible, err = f.runtime.EligibleForMute(context.Background(), triggerMessage())
	if err != nil {
		t.Fatalf("EligibleForMute returned error: %v", err)
	}
	if eligible {
		t.Error("expected muted participant to be ineligible")
	}
}
