package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/riderapp/admin-console/internal/core/domain"
)

const directoryCollection = "directory_accounts"

// DirectoryRepository persists user accounts. Each document carries a
// monotonic seq so List reproduces insertion order across restarts.
type DirectoryRepository struct {
	coll *mongo.Collection
}

func NewDirectoryRepository(db *mongo.Database) *DirectoryRepository {
	return &DirectoryRepository{coll: db.Collection(directoryCollection)}
}

type accountDoc struct {
	ID     string `bson:"_id"`
	Name   string `bson:"name"`
	Email  string `bson:"email"`
	Role   string `bson:"role"`
	Status string `bson:"status"`
	Seq    int64  `bson:"seq"`
}

// Insert appends the account at the end of the directory ordering.
func (r *DirectoryRepository) Insert(ctx context.Context, account *domain.UserAccount) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := accountDoc{
		ID:     account.ID,
		Name:   account.Name,
		Email:  account.Email,
		Role:   string(account.Role),
		Status: string(account.Status),
		Seq:    time.Now().UnixNano(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateAccount
		}
		return err
	}
	return nil
}

// Delete removes the account with the given id. A missing id reports false
// with no error.
func (r *DirectoryRepository) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// List returns all accounts in insertion order.
func (r *DirectoryRepository) List(ctx context.Context) ([]domain.UserAccount, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "seq", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var accounts []domain.UserAccount
	for cur.Next(ctx) {
		var doc accountDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		accounts = append(accounts, domain.UserAccount{
			ID:     doc.ID,
			Name:   doc.Name,
			Email:  doc.Email,
			Role:   domain.AccountRole(doc.Role),
			Status: domain.AccountStatus(doc.Status),
		})
	}
	return accounts, cur.Err()
}

// EnsureIndexes creates the indexes used by List and lookups.
func (r *DirectoryRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "seq", Value: 1}}},
		{Keys: bson.D{{Key: "email", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
