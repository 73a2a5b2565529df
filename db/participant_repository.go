package db

import (
	"context"
	"errors"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	dbmodels "roomagent/db/models"
	"roomagent/models"
)

// ParticipantRepository stores per-(room, user) participation state
type ParticipantRepository struct{}

func NewParticipantRepository() *ParticipantRepository {
	return &ParticipantRepository{}
}

// GetState returns the participation state for a user in a room.
// A missing document reads as ACTIVE.
func (r *ParticipantRepository) GetState(ctx context.Context, roomID, userID string) (models.ParticipantState, error) {
	objID, err := primitive.ObjectIDFromHex(roomID)
	if err != nil {
		return "", err
	}

	var doc dbmodels.ParticipantDocument
	collection := GetCollection("participants")
	err = collection.FindOne(ctx, bson.M{"room_id": objID, "user_id": userID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.StateActive, nil
	}
	if err != nil {
		return "", err
	}
	if doc.State == "" {
		return models.StateActive, nil
	}

	return models.ParticipantState(doc.State), nil
}

// SetState upserts the participation state for a user in a room. Setting a
// state the participant already has is a no-op at the store level.
func (r *ParticipantRepository) SetState(ctx context.Context, roomID, userID string, state models.ParticipantState) error {
	objID, err := primitive.ObjectIDFromHex(roomID)
	if err != nil {
		return err
	}

	filter := bson.M{"room_id": objID, "user_id": userID}
	update := bson.M{
		"$set": bson.M{
			"state":      string(state),
			"updated_at": time.Now(),
		},
	}

	collection := GetCollection("participants")
	_, err = collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// EnsureParticipantIndexes creates the unique (room_id, user_id) index
func EnsureParticipantIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	index := mongo.IndexModel{
		Keys: bson.D{
			{Key: "room_id", Value: 1},
			{Key: "user_id", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	}

	collection := GetCollection("participants")
	_, err := collection.Indexes().CreateOne(ctx, index)
	if err != nil {
		log.Printf("Failed to create participant indexes: %v", err)
	}
}
