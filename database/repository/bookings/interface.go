package bookingsRepo

import (
	"context"

	"ttravels/database"
	"ttravels/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type BookingRepository interface {
	Create(ctx context.Context, booking models.Booking) (string, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetByUserID(ctx context.Context, userID string) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) error
	DeleteByID(ctx context.Context, id string) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a new BookingRepository instance using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("ttravels")
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
