package db

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	dbmodels "roomagent/db/models"
	"roomagent/models"
)

// ErrRoomNotFound is returned when a room lookup does not match any document
var ErrRoomNotFound = errors.New("room not found")

// RoomRepository reads and creates rooms in the rooms collection
type RoomRepository struct{}

func NewRoomRepository() *RoomRepository {
	return &RoomRepository{}
}

// CreateRoom inserts a new room and returns its ID
func (r *RoomRepository) CreateRoom(ctx context.Context, name string) (string, error) {
	doc := dbmodels.RoomDocument{
		Name:      name,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	collection := GetCollection("rooms")
	result, err := collection.InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}

	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

// GetRoom fetches a room by its hex ID. Returns ErrRoomNotFound for unknown
// or malformed IDs.
func (r *RoomRepository) GetRoom(ctx context.Context, roomID string) (*models.Room, error) {
	objID, err := primitive.ObjectIDFromHex(roomID)
	if err != nil {
		return nil, ErrRoomNotFound
	}

	var doc dbmodels.RoomDocument
	collection := GetCollection("rooms")
	err = collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, err
	}

	return &models.Room{ID: doc.ID.Hex(), Name: doc.Name}, nil
}
