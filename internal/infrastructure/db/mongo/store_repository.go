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
	"github.com/ankitSharma645/store-rating-api/internal/core/ports"
)

const storesCollection = "stores"

type StoreRepository struct {
	col *mongo.Collection
}

func NewStoreRepository(db *mongo.Database) *StoreRepository {
	return &StoreRepository{col: db.Collection(storesCollection)}
}

type mongoStore struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Address   string             `bson:"address"`
	Owner     primitive.ObjectID `bson:"owner"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (s mongoStore) toDomain() *domain.Store {
	return &domain.Store{
		ID:        s.ID.Hex(),
		Name:      s.Name,
		Email:     s.Email,
		Address:   s.Address,
		OwnerID:   s.Owner.Hex(),
		CreatedAt: s.CreatedAt,
	}
}

func (r *StoreRepository) Create(ctx context.Context, store *domain.Store) (*domain.Store, error) {
	ownerOID, err := primitive.ObjectIDFromHex(store.OwnerID)
	if err != nil {
		return nil, domain.ErrOwnerNotEligible
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoStore{
		Name:      store.Name,
		Email:     store.Email,
		Address:   store.Address,
		Owner:     ownerOID,
		CreatedAt: store.CreatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrStoreEmailTaken
		}
		return nil, fmt.Errorf("insert store: %w", err)
	}

	created := *store
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *StoreRepository) FindByID(ctx context.Context, id string) (*domain.Store, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrStoreNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *StoreRepository) FindByIDAndOwner(ctx context.Context, id, ownerID string) (*domain.Store, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrStoreNotFound
	}
	ownerOID, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, domain.ErrStoreNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid, "owner": ownerOID})
}

func (r *StoreRepository) FindByOwner(ctx context.Context, ownerID string) (*domain.Store, error) {
	ownerOID, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, domain.ErrStoreNotFound
	}
	return r.findOne(ctx, bson.M{"owner": ownerOID})
}

func (r *StoreRepository) findOne(ctx context.Context, filter bson.M) (*domain.Store, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ms mongoStore
	if err := r.col.FindOne(ctx, filter).Decode(&ms); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrStoreNotFound
		}
		return nil, fmt.Errorf("find store: %w", err)
	}
	return ms.toDomain(), nil
}

var storeSortFields = map[string]string{
	"name":      "name",
	"email":     "email",
	"address":   "address",
	"createdAt": "created_at",
}

func (r *StoreRepository) List(ctx context.Context, filter ports.ListStoresFilter) ([]*domain.Store, error) {
	query := bson.M{}
	if filter.Name != "" {
		query["name"] = bson.M{"$regex": filter.Name, "$options": "i"}
	}
	if filter.Address != "" {
		query["address"] = bson.M{"$regex": filter.Address, "$options": "i"}
	}

	sort := sortDoc(storeSortFields, filter.SortField, filter.SortDesc)

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, query, options.Find().SetSort(sort))
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Store
	for cur.Next(ctx) {
		var ms mongoStore
		if err := cur.Decode(&ms); err != nil {
			return nil, fmt.Errorf("decode store: %w", err)
		}
		out = append(out, ms.toDomain())
	}
	return out, cur.Err()
}

func (r *StoreRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.col.CountDocuments(ctx, bson.M{})
}

// EnsureIndexes creates the unique contact-email index and the owner index.
func (r *StoreRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "owner", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
