package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Chat struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MissionID string             `bson:"missionid" json:"missionid"`
	Users     []string           `bson:"users" json:"users"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type ReplyRef struct {
	MessageID string `bson:"messageid" json:"messageid"`
	Preview   string `bson:"preview,omitempty" json:"preview,omitempty"`
}

type Message struct {
	MessageID string    `bson:"messageid,omitempty" json:"messageid"`
	ChatID    string    `bson:"chatid" json:"chatid"`
	MissionID string    `bson:"missionid,omitempty" json:"missionid,omitempty"`
	SenderID  string    `bson:"senderid" json:"senderid"`
	Content   string    `bson:"content,omitempty" json:"content,omitempty"`
	FileURL   string    `bson:"file_url,omitempty" json:"file_url,omitempty"`
	FileType  string    `bson:"file_type,omitempty" json:"file_type,omitempty"`
	ReplyTo   *ReplyRef `bson:"reply_to,omitempty" json:"reply_to,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Index represents a notification/indexing event emitted over the queue.
type Index struct {
	EntityType string `json:"entity_type"`
	Method     string `json:"method"`
	EntityId   string `json:"entity_id"`
	ItemId     string `json:"item_id"`
	ItemType   string `json:"item_type"`
}
