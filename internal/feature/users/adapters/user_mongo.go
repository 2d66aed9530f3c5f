package adapters

import (
	"context"
	"errors"
	"iter"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"exercise_tracker/internal/feature/users/domain"
	"exercise_tracker/internal/feature/users/domain/entity"
	"exercise_tracker/internal/feature/users/usecase"
)

// UserCollection is the MongoDB collection holding users.
const UserCollection = "exerciseusers"

type userMongo struct {
	coll *mongo.Collection
}

var _ usecase.UserRepository = (*userMongo)(nil)

// NewUserMongoRepository returns a MongoDB-backed UserRepository.
// Call EnsureIndexes once at startup so usernames stay unique.
func NewUserMongoRepository(db *mongo.Database) *userMongo {
	return &userMongo{coll: db.Collection(UserCollection)}
}

type userDocument struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Username string             `bson:"username"`
}

func (d userDocument) toEntity() entity.User {
	return entity.User{ID: d.ID.Hex(), Username: d.Username}
}

// EnsureIndexes creates the unique username index.
func (r *userMongo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("username_unique"),
	})
	return err
}

func (r *userMongo) Create(ctx context.Context, username string) (entity.User, error) {
	doc := userDocument{ID: primitive.NewObjectID(), Username: username}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return entity.User{}, domain.ErrUsernameTaken
		}
		return entity.User{}, err
	}
	return doc.toEntity(), nil
}

func (r *userMongo) FindByUsername(ctx context.Context, username string) (entity.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *userMongo) FindByID(ctx context.Context, id string) (entity.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return entity.User{}, domain.ErrUserNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *userMongo) findOne(ctx context.Context, filter bson.M) (entity.User, error) {
	var doc userDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return entity.User{}, domain.ErrUserNotFound
		}
		return entity.User{}, err
	}
	return doc.toEntity(), nil
}

// ListAll streams users from a cursor sorted by _id. ObjectIDs start with
// their creation time, so this is insertion order.
func (r *userMongo) ListAll(ctx context.Context) iter.Seq2[entity.User, error] {
	return func(yield func(entity.User, error) bool) {
		cur, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
		if err != nil {
			yield(entity.User{}, err)
			return
		}
		defer func() { _ = cur.Close(ctx) }()

		for cur.Next(ctx) {
			var doc userDocument
			if err := cur.Decode(&doc); err != nil {
				yield(entity.User{}, err)
				return
			}
			if !yield(doc.toEntity(), nil) {
				return
			}
		}
		if err := cur.Err(); err != nil {
			yield(entity.User{}, err)
		}
	}
}
