package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"roomagent/agent"
	"roomagent/config"
	"roomagent/db"
	"roomagent/llm"
)

type SpawnRequest struct {
	AgentName string `json:"agent_name"`
}

type SpawnResponse struct {
	AgentID string `json:"agent_id"`
	Error   string `json:"error,omitempty"`
}

// SpawnAgentHandler registers a new agent runtime wired to the Gemini
// completion client and the Mongo-backed stores
func SpawnAgentHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req SpawnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.AgentName) == "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(SpawnResponse{Error: "agent_name is required"})
		return
	}

	completion, err := llm.NewGeminiClient(r.Context())
	if err != nil {
		http.Error(w, "Failed to create completion client", http.StatusInternalServerError)
		return
	}

	agentID := agent.SpawnRuntime(
		req.AgentName,
		completion,
		db.NewParticipantRepository(),
		db.NewMemoryRepository(),
		db.NewRoomRepository(),
		config.GetGeminiSmallModel(),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(SpawnResponse{AgentID: agentID})
}
