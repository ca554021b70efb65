package plansRepo

import (
	"context"

	"ttravels/database"
	"ttravels/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type SavedPlanRepository interface {
	Create(ctx context.Context, plan models.SavedTripPlan) (string, error)
	GetByID(ctx context.Context, id string) (*models.SavedTripPlan, error)
	GetByUserID(ctx context.Context, userID string) ([]models.SavedTripPlan, error)
	Update(ctx context.Context, plan models.SavedTripPlan) error
	DeleteByID(ctx context.Context, id string) error
}

type mongoPlanRepo struct {
	coll *mongo.Collection
}

// NewMongoPlanRepo returns a new SavedPlanRepository instance using MongoDB.
func NewMongoPlanRepo() SavedPlanRepository {
	db := database.MongoClient.Database("ttravels")
	return &mongoPlanRepo{
		coll: db.Collection("saved_plans"),
	}
}
