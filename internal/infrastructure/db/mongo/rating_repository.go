package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ankitSharma645/store-rating-api/internal/core/domain"
)

const ratingsCollection = "ratings"

type RatingRepository struct {
	col *mongo.Collection
}

func NewRatingRepository(db *mongo.Database) *RatingRepository {
	return &RatingRepository{col: db.Collection(ratingsCollection)}
}

type mongoRating struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Value     int                `bson:"value"`
	Store     primitive.ObjectID `bson:"store"`
	User      primitive.ObjectID `bson:"user"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (m mongoRating) toDomain() domain.Rating {
	return domain.Rating{
		ID:        m.ID.Hex(),
		Value:     m.Value,
		StoreID:   m.Store.Hex(),
		UserID:    m.User.Hex(),
		CreatedAt: m.CreatedAt,
	}
}

// Upsert creates or overwrites the rating for (storeID, userID) in a single
// FindOneAndUpdate keyed on the unique compound index. A racing insert that
// loses to the index surfaces as domain.ErrRatingConflict, never a crash.
func (r *RatingRepository) Upsert(ctx context.Context, storeID, userID string, value int) (*domain.Rating, error) {
	storeOID, err := primitive.ObjectIDFromHex(storeID)
	if err != nil {
		return nil, domain.ErrStoreNotFound
	}
	userOID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"store": storeOID, "user": userOID}
	update := bson.M{
		"$set":         bson.M{"value": value},
		"$setOnInsert": bson.M{"created_at": time.Now().UTC()},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var m mongoRating
	if err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&m); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrRatingConflict
		}
		return nil, fmt.Errorf("upsert rating: %w", err)
	}

	rating := m.toDomain()
	return &rating, nil
}

func (r *RatingRepository) FindByStoreAndUser(ctx context.Context, storeID, userID string) (*domain.Rating, error) {
	storeOID, err := primitive.ObjectIDFromHex(storeID)
	if err != nil {
		return nil, domain.ErrStoreNotFound
	}
	userOID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m mongoRating
	if err := r.col.FindOne(ctx, bson.M{"store": storeOID, "user": userOID}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find rating: %w", err)
	}

	rating := m.toDomain()
	return &rating, nil
}

func (r *RatingRepository) ListByStore(ctx context.Context, storeID string) ([]domain.Rating, error) {
	storeOID, err := primitive.ObjectIDFromHex(storeID)
	if err != nil {
		return nil, domain.ErrStoreNotFound
	}
	return r.list(ctx, bson.M{"store": storeOID})
}

func (r *RatingRepository) ListByUser(ctx context.Context, userID string) ([]domain.Rating, error) {
	userOID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return r.list(ctx, bson.M{"user": userOID})
}

func (r *RatingRepository) ListByStoreIDs(ctx context.Context, storeIDs []string) (map[string][]domain.Rating, error) {
	oids := make([]primitive.ObjectID, 0, len(storeIDs))
	for _, id := range storeIDs {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		oids = append(oids, oid)
	}

	out := make(map[string][]domain.Rating, len(oids))
	if len(oids) == 0 {
		return out, nil
	}

	ratings, err := r.list(ctx, bson.M{"store": bson.M{"$in": oids}})
	if err != nil {
		return nil, err
	}
	for _, rt := range ratings {
		out[rt.StoreID] = append(out[rt.StoreID], rt)
	}
	return out, nil
}

func (r *RatingRepository) list(ctx context.Context, filter bson.M) ([]domain.Rating, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list ratings: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.Rating
	for cur.Next(ctx) {
		var m mongoRating
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode rating: %w", err)
		}
		out = append(out, m.toDomain())
	}
	return out, cur.Err()
}

func (r *RatingRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.col.CountDocuments(ctx, bson.M{})
}

// EnsureIndexes creates the unique (store, user) compound index that backs
// the upsert semantics, plus lookup indexes for the per-store and per-user
// listings.
func (r *RatingRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "store", Value: 1}, {Key: "user", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "user", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
