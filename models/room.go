package models

// ParticipantState is the per-(room, user) participation state. A participant
// with no stored state is treated as active.
type ParticipantState string

const (
	StateActive ParticipantState = "ACTIVE"
	StateMuted  ParticipantState = "MUTED"
)

// Room represents a conversation room
type Room struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
