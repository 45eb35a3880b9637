package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"nutriplan/models"
)

// ChatLog is the append-only conversation log.
type ChatLog interface {
	RecordTurn(ctx context.Context, userMessage, aiResponse string) error
	Recent(ctx context.Context, limit int64) ([]models.ChatTurn, error)
	Count(ctx context.Context) (int64, error)
}

type MongoChatLog struct {
	coll *mongo.Collection
}

func NewMongoChatLog(database *mongo.Database) *MongoChatLog {
	return &MongoChatLog{coll: database.Collection("chat_messages")}
}

func (l *MongoChatLog) RecordTurn(ctx context.Context, userMessage, aiResponse string) error {
	_, err := l.coll.InsertOne(ctx, models.ChatTurn{
		UserMessage: userMessage,
		AIResponse:  aiResponse,
		Timestamp:   time.Now().UTC(),
	})
	return err
}

func (l *MongoChatLog) Recent(ctx context.Context, limit int64) ([]models.ChatTurn, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)

	cur, err := l.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	turns := []models.ChatTurn{}
	if err := cur.All(ctx, &turns); err != nil {
		return nil, err
	}

	return turns, nil
}

func (l *MongoChatLog) Count(ctx context.Context) (int64, error) {
	return l.coll.CountDocuments(ctx, bson.D{})
}
