package adapters

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"exercise_tracker/internal/feature/exercises/domain/entity"
	"exercise_tracker/internal/feature/exercises/usecase"
)

// ExerciseCollection is the MongoDB collection holding entries.
const ExerciseCollection = "exercises"

type exerciseMongo struct {
	coll *mongo.Collection
}

var _ usecase.ExerciseRepository = (*exerciseMongo)(nil)

// NewExerciseMongoRepository returns a MongoDB-backed ExerciseRepository.
func NewExerciseMongoRepository(db *mongo.Database) *exerciseMongo {
	return &exerciseMongo{coll: db.Collection(ExerciseCollection)}
}

type exerciseDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      string             `bson:"userId"`
	Description string             `bson:"description"`
	Duration    int                `bson:"duration"`
	Date        time.Time          `bson:"date"`
}

func (d exerciseDocument) toEntity() entity.Exercise {
	return entity.Exercise{
		ID:          d.ID.Hex(),
		UserID:      d.UserID,
		Description: d.Description,
		Duration:    d.Duration,
		Date:        d.Date.UTC(),
	}
}

// EnsureIndexes creates the compound index serving QueryByUser.
func (r *exerciseMongo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetName("userId_date"),
	})
	return err
}

func (r *exerciseMongo) Create(ctx context.Context, e entity.Exercise) (entity.Exercise, error) {
	if err := checkSchema(e); err != nil {
		return entity.Exercise{}, err
	}
	doc := exerciseDocument{
		ID:          primitive.NewObjectID(),
		UserID:      e.UserID,
		Description: e.Description,
		Duration:    e.Duration,
		Date:        e.Date.UTC(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return entity.Exercise{}, err
	}
	return doc.toEntity(), nil
}

func (r *exerciseMongo) QueryByUser(ctx context.Context, q entity.LogQuery) ([]entity.Exercise, error) {
	cur, err := r.coll.Find(ctx, logFilter(q), logOptions(q))
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()

	out := make([]entity.Exercise, 0)
	for cur.Next(ctx) {
		var doc exerciseDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.toEntity())
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func logFilter(q entity.LogQuery) bson.D {
	filter := bson.D{{Key: "userId", Value: q.UserID}}
	if q.Range.IsZero() {
		return filter
	}
	date := bson.D{}
	if q.Range.From != nil {
		date = append(date, bson.E{Key: "$gte", Value: q.Range.From.UTC()})
	}
	if q.Range.To != nil {
		date = append(date, bson.E{Key: "$lte", Value: q.Range.To.UTC()})
	}
	return append(filter, bson.E{Key: "date", Value: date})
}

// logOptions sorts by date, breaking ties on _id, which follows insertion order.
func logOptions(q entity.LogQuery) *options.FindOptions {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "_id", Value: 1}})
	if q.Bounded() {
		opts.SetLimit(int64(q.Limit))
	}
	return opts
}
