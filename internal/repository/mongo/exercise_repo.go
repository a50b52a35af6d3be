package mongo

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/repository"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const exerciseCollectionName = "exercises"

// mongoExerciseRepository implements repository.ExerciseRepository
type mongoExerciseRepository struct {
	collection *mongo.Collection
}

// NewMongoExerciseRepository creates a new Exercise repository backed by MongoDB.
func NewMongoExerciseRepository(db *mongo.Database) repository.ExerciseRepository {
	return &mongoExerciseRepository{
		collection: db.Collection(exerciseCollectionName),
	}
}

// Create inserts a new exercise into the database.
func (r *mongoExerciseRepository) Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	if exercise.Username == "" || exercise.Description == "" || exercise.Duration <= 0 || exercise.Date.IsZero() {
		return primitive.NilObjectID, errors.New("exercise username, description, duration and date are required")
	}

	exercise.ID = primitive.NewObjectID()
	exercise.Date = domain.CalendarDay(exercise.Date)
	exercise.CreatedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, exercise)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// logFilter selects a user's exercises inside an inclusive day window.
// Dates are stored at UTC midnight, so a $lte on the To day is inclusive.
func logFilter(username string, window domain.LogWindow) bson.M {
	return bson.M{
		"username": username,
		"date": bson.M{
			"$gte": window.From,
			"$lte": window.To,
		},
	}
}

// FindLog retrieves the matching exercises, most recent first.
func (r *mongoExerciseRepository) FindLog(ctx context.Context, username string, window domain.LogWindow) ([]domain.Exercise, error) {
	exercises := []domain.Exercise{}

	// _id breaks ties between same-day records in creation order
	findOptions := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}, {Key: "_id", Value: -1}}).
		SetProjection(bson.M{"username": 1, "description": 1, "duration": 1, "date": 1})
	if window.Limit > 0 {
		findOptions.SetLimit(int64(window.Limit))
	}

	cursor, err := r.collection.Find(ctx, logFilter(username, window), findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &exercises); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return exercises, nil
}

// Count returns the number of matching exercises regardless of limit.
func (r *mongoExerciseRepository) Count(ctx context.Context, username string, window domain.LogWindow) (int64, error) {
	return r.collection.CountDocuments(ctx, logFilter(username, window))
}

// EnsureExerciseIndexes creates necessary indexes for the exercises collection.
func EnsureExerciseIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			// Serves FindLog: equality on username, range + sort on date
			Keys:    bson.D{{Key: "username", Value: 1}, {Key: "date", Value: -1}, {Key: "_id", Value: -1}},
			Options: options.Index().SetName("exercise_log"),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
