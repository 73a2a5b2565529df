package agent

import (
	"fmt"
	"math/rand"
	"sync"
)

var (
	registry = make(map[string]*Runtime)
	mu       sync.Mutex
)

// SpawnRuntime registers a new agent runtime under a generated ID and
// returns the ID. The capability set is shared; identity is per runtime.
func SpawnRuntime(name string, completion CompletionClient, participants ParticipantStore, memories MemoryStore, rooms RoomStore, smallModel string) string {
	agentID := fmt.Sprintf("agent-%d", rand.Intn(1000000))

	runtime := &Runtime{
		Agent:        Agent{ID: agentID, Name: name},
		Completion:   completion,
		Participants: participants,
		Memories:     memories,
		Rooms:        rooms,
		SmallModel:   smallModel,
	}

	mu.Lock()
	registry[agentID] = runtime
	mu.Unlock()

	return agentID
}

// GetRuntimeByID looks up a registered runtime
func GetRuntimeByID(id string) (*Runtime, bool) {
	mu.Lock()
	defer mu.Unlock()
	runtime, ok := registry[id]
	return runtime, ok
}

// DeleteRuntime removes a runtime from the registry
func DeleteRuntime(id string) {
	mu.Lock()
	defer mu.Unlock()
	delete(registry, id)
}
