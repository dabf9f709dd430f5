package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	UserCollection         *mongo.Collection
	MissionsCollection     *mongo.Collection
	ProposalsCollection    *mongo.Collection
	InterviewsCollection   *mongo.Collection
	DeliverablesCollection *mongo.Collection
	TransactionCollection  *mongo.Collection
	JournalCollection      *mongo.Collection
	AccountsCollection     *mongo.Collection
	IdempotencyCollection  *mongo.Collection
	ChatsCollection        *mongo.Collection
	MessagesCollection     *mongo.Collection
	Client                 *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("db: no .env file found; using system environment")
	}

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	var err error
	Client, err = mongo.Connect(context.TODO(), options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	database := Client.Database("matchifydb")
	UserCollection = database.Collection("users")
	MissionsCollection = database.Collection("missions")
	ProposalsCollection = database.Collection("proposals")
	InterviewsCollection = database.Collection("interviews")
	DeliverablesCollection = database.Collection("deliverables")
	TransactionCollection = database.Collection("transactions")
	JournalCollection = database.Collection("journal")
	AccountsCollection = database.Collection("accounts")
	IdempotencyCollection = database.Collection("idempotency")
	ChatsCollection = database.Collection("chats")
	MessagesCollection = database.Collection("messages")
}
