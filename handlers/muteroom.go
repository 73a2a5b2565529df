package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"roomagent/agent"
	"roomagent/db"
	"roomagent/models"
)

type MuteEvaluationRequest struct {
	AgentID string `json:"agent_id"`
	RoomID  string `json:"room_id"`
	UserID  string `json:"user_id"`
	Text    string `json:"text"`
	Source  string `json:"source,omitempty"`
	// HistoryLimit bounds how many recent messages go into the snapshot
	HistoryLimit int `json:"history_limit,omitempty"`
}

type MuteEvaluationResponse struct {
	AgentID string `json:"agent_id"`
	RoomID  string `json:"room_id"`
	State   string `json:"state"`
	Error   string `json:"error,omitempty"`
}

type MuteEligibilityResponse struct {
	Eligible bool   `json:"eligible"`
	Error    string `json:"error,omitempty"`
}

// MuteEvaluationHandler records an incoming message, assembles the
// conversation snapshot, and runs the mute decision workflow for the
// addressed agent. The response reports the agent's resulting state in
// the room.
func MuteEvaluationHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req MuteEvaluationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	runtime, ok := agent.GetRuntimeByID(req.AgentID)
	if !ok {
		http.Error(w, "Agent not found", http.StatusNotFound)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	// Resolve the room up front so the snapshot carries it and the
	// workflow skips its own lookup
	room, err := db.NewRoomRepository().GetRoom(ctx, req.RoomID)
	if errors.Is(err, db.ErrRoomNotFound) {
		http.Error(w, "Room not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Failed to resolve room", http.StatusInternalServerError)
		return
	}

	memories := db.NewMemoryRepository()

	message := &models.Memory{
		ID:      uuid.NewString(),
		UserID:  req.UserID,
		AgentID: runtime.Agent.ID,
		RoomID:  req.RoomID,
		Content: models.Content{
			Text:   req.Text,
			Source: req.Source,
		},
		Type:      models.ChannelMessages,
		CreatedAt: time.Now(),
	}

	if err := memories.Append(ctx, message, models.ChannelMessages); err != nil {
		http.Error(w, "Failed to record message", http.StatusInternalServerError)
		return
	}

	limit := req.HistoryLimit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	recent, err := memories.RecentMessages(ctx, req.RoomID, models.ChannelMessages, limit)
	if err != nil {
		http.Error(w, "Failed to fetch history", http.StatusInternalServerError)
		return
	}

	state := &models.State{RecentMessages: recent, Room: room}

	if err := runtime.MuteRoom(ctx, message, state, nil); err != nil {
		if errors.Is(err, db.ErrRoomNotFound) {
			http.Error(w, "Room not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Mute evaluation failed", http.StatusInternalServerError)
		return
	}

	finalState, err := db.NewParticipantRepository().GetState(ctx, req.RoomID, runtime.Agent.ID)
	if err != nil {
		http.Error(w, "Failed to read participant state", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(MuteEvaluationResponse{
		AgentID: runtime.Agent.ID,
		RoomID:  req.RoomID,
		State:   string(finalState),
	})
}

// MuteEligibilityHandler reports whether the mute workflow would run for an
// agent in a room. Mirrors the workflow's own guard; read-only.
func MuteEligibilityHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	agentID := r.URL.Query().Get("agent_id")
	roomID := r.URL.Query().Get("room_id")

	runtime, ok := agent.GetRuntimeByID(agentID)
	if !ok {
		http.Error(w, "Agent not found", http.StatusNotFound)
		return
	}

	eligible, err := runtime.EligibleForMute(r.Context(), &models.Memory{RoomID: roomID})
	if err != nil {
		http.Error(w, "Failed to read participant state", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(MuteEligibilityResponse{Eligible: eligible})
}
