package repository

import (
	"context"
	"errors"
	"time"

	"bookingbot-service/internal/domain/entity"
	"bookingbot-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepository implements BookingRepository on a MongoDB
// collection of episodes. One document per episode; the newest document
// for a phone number is the live conversation.
type MongoBookingRepository struct {
	collection *mongo.Collection
}

// NewMongoBookingRepository creates a new booking episode repository.
func NewMongoBookingRepository(db *mongo.Database) repository.BookingRepository {
	collection := db.Collection("booking_episodes")

	ctx := context.Background()
	indexModel := mongo.IndexModel{
		Keys: bson.D{{Key: "phone", Value: 1}, {Key: "createdAt", Value: -1}},
	}
	collection.Indexes().CreateOne(ctx, indexModel)

	return &MongoBookingRepository{
		collection: collection,
	}
}

// FindLatest finds the most recent episode for a phone number.
func (r *MongoBookingRepository) FindLatest(ctx context.Context, phone string) (*entity.Booking, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})

	var booking entity.Booking
	err := r.collection.FindOne(ctx, bson.M{"phone": phone}, opts).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// Create inserts a fresh episode at the name step.
func (r *MongoBookingRepository) Create(ctx context.Context, phone string) (*entity.Booking, error) {
	now := time.Now()
	booking := &entity.Booking{
		ID:        primitive.NewObjectID().Hex(),
		Phone:     phone,
		Step:      entity.StepName,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := r.collection.InsertOne(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// Save persists the episode by replacing its document.
func (r *MongoBookingRepository) Save(ctx context.Context, booking *entity.Booking) error {
	booking.UpdatedAt = time.Now()

	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": booking.ID}, booking, opts)
	return err
}
