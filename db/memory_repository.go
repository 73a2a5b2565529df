package db

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	dbmodels "roomagent/db/models"
	"roomagent/models"
)

// MemoryRepository appends and reads records in memory channel collections.
// The channel name maps directly to a collection.
type MemoryRepository struct{}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Append writes a memory record into the named channel. Records with no text
// and no thought are skipped — they carry nothing worth persisting and empty
// content causes problems downstream in prompt rendering.
func (r *MemoryRepository) Append(ctx context.Context, mem *models.Memory, channel string) error {
	if strings.TrimSpace(mem.Content.Text) == "" && strings.TrimSpace(mem.Content.Thought) == "" {
		log.Printf("[MEMORY_SKIP] Skipping empty memory for room %s", mem.RoomID)
		return nil
	}

	objID, err := primitive.ObjectIDFromHex(mem.RoomID)
	if err != nil {
		return err
	}

	if mem.ID == "" {
		mem.ID = uuid.NewString()
	}
	if mem.CreatedAt.IsZero() {
		mem.CreatedAt = time.Now()
	}

	doc := dbmodels.MemoryDocument{
		ID:        mem.ID,
		UserID:    mem.UserID,
		AgentID:   mem.AgentID,
		RoomID:    objID,
		Text:      mem.Content.Text,
		Thought:   mem.Content.Thought,
		Actions:   mem.Content.Actions,
		Source:    mem.Content.Source,
		Type:      mem.Type,
		CreatedAt: mem.CreatedAt,
	}

	collection := GetCollection(channel)

	// Add retry logic for transient failures
	var lastErr error
	for i := 0; i < 3; i++ {
		_, err = collection.InsertOne(ctx, doc)
		if err == nil {
			return nil
		}
		lastErr = err
		time.Sleep(time.Millisecond * 100 * time.Duration(i+1)) // Exponential backoff
	}

	return lastErr
}

// RecentMessages returns up to limit records for a room from the named
// channel, oldest first.
func (r *MemoryRepository) RecentMessages(ctx context.Context, roomID, channel string, limit int) ([]models.Memory, error) {
	objID, err := primitive.ObjectIDFromHex(roomID)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	collection := GetCollection(channel)
	cursor, err := collection.Find(ctx, bson.M{"room_id": objID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []dbmodels.MemoryDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	// Reverse into chronological order
	messages := make([]models.Memory, 0, len(docs))
	for i := len(docs) - 1; i >= 0; i-- {
		doc := docs[i]
		messages = append(messages, models.Memory{
			ID:      doc.ID,
			UserID:  doc.UserID,
			AgentID: doc.AgentID,
			RoomID:  doc.RoomID.Hex(),
			Content: models.Content{
				Text:    doc.Text,
				Thought: doc.Thought,
				Actions: doc.Actions,
				Source:  doc.Source,
			},
			Type:      doc.Type,
			CreatedAt: doc.CreatedAt,
		})
	}

	return messages, nil
}

// EnsureMemoryIndexes creates indexes for the messages channel
func EnsureMemoryIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	memoryIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "room_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
		},
		{
			Keys: bson.D{
				{Key: "agent_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
		},
	}

	collection := GetCollection(models.ChannelMessages)
	_, err := collection.Indexes().CreateMany(ctx, memoryIndexes)
	if err != nil {
		log.Printf("Failed to create memory indexes: %v", err)
	}
}
