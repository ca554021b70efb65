package plansRepo

import (
	"context"
	"errors"
	"time"

	"ttravels/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new saved trip plan and returns its ID.
func (r *mongoPlanRepo) Create(ctx context.Context, plan models.SavedTripPlan) (string, error) {
	if plan.ID == "" {
		plan.ID = uuid.New().String()
	}
	plan.CreatedAt = time.Now()
	plan.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, plan)
	if err != nil {
		return "", err
	}
	return plan.ID, nil
}

// GetByID returns a saved trip plan by its ID.
func (r *mongoPlanRepo) GetByID(ctx context.Context, id string) (*models.SavedTripPlan, error) {
	var plan models.SavedTripPlan
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&plan)
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// GetByUserID fetches all saved plans belonging to a user.
func (r *mongoPlanRepo) GetByUserID(ctx context.Context, userID string) ([]models.SavedTripPlan, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var plans []models.SavedTripPlan
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// Update replaces an existing saved plan.
func (r *mongoPlanRepo) Update(ctx context.Context, plan models.SavedTripPlan) error {
	if plan.ID == "" {
		return errors.New("plan id is required")
	}
	plan.UpdatedAt = time.Now()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": plan.ID}, plan)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("plan not found")
	}
	return nil
}

// DeleteByID removes a saved plan by ID.
func (r *mongoPlanRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("plan not found")
	}
	return nil
}
