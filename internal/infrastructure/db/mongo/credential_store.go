package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/riderapp/admin-console/internal/core/domain"
)

const credentialCollection = "credentials"

// CredentialStore is the persistent identity store that can replace the mock
// in-memory seed table. Records hold bcrypt hashes, never plaintext.
type CredentialStore struct {
	coll *mongo.Collection
}

func NewCredentialStore(db *mongo.Database) *CredentialStore {
	return &CredentialStore{coll: db.Collection(credentialCollection)}
}

type credentialDoc struct {
	ID           string `bson:"_id"`
	Name         string `bson:"name"`
	Email        string `bson:"email"`
	Role         string `bson:"role"`
	EmployeeID   string `bson:"employee_id,omitempty"`
	PasswordHash string `bson:"password_hash"`
}

// LookupByEmail finds a credential by exact email.
func (s *CredentialStore) LookupByEmail(ctx context.Context, email string) (*domain.Credential, error) {
	var doc credentialDoc
	if err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCredentialNotFound
		}
		return nil, fmt.Errorf("find credential: %w", err)
	}

	return &domain.Credential{
		Identity: domain.Identity{
			ID:         doc.ID,
			Name:       doc.Name,
			Email:      doc.Email,
			Role:       domain.SessionRole(doc.Role),
			EmployeeID: doc.EmployeeID,
		},
		PasswordHash: doc.PasswordHash,
	}, nil
}

// EnsureIndexes creates a unique index on email.
func (s *CredentialStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
