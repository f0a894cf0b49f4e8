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

	"github.com/Danjes623/Inventario-SIGI/internal/core/domain"
)

const collectionUsers = "usuarios"

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(collectionUsers)}
}

// mongoUser mirrors the document layout written by the original Mongoose
// schema, so the repository can run against an existing database.
type mongoUser struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password"`
	Role         string             `bson:"role"`
	Preferences  mongoPreferences   `bson:"preferences"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

type mongoPreferences struct {
	LowStockNotifications bool   `bson:"lowStockNotifications"`
	EmailNotifications    bool   `bson:"emailNotifications"`
	TwoFactorAuth         bool   `bson:"twoFactorAuth"`
	AutoLogout            bool   `bson:"autoLogout"`
	Language              string `bson:"language"`
}

func toMongoUser(r *domain.UserRecord) mongoUser {
	return mongoUser{
		Name:         r.Name,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		Role:         r.Role,
		Preferences: mongoPreferences{
			LowStockNotifications: r.Preferences.LowStockNotifications,
			EmailNotifications:    r.Preferences.EmailNotifications,
			TwoFactorAuth:         r.Preferences.TwoFactorAuth,
			AutoLogout:            r.Preferences.AutoLogout,
			Language:              r.Preferences.Language,
		},
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func (mu *mongoUser) toRecord() *domain.UserRecord {
	return &domain.UserRecord{
		User: domain.User{
			ID:    mu.ID.Hex(),
			Name:  mu.Name,
			Email: mu.Email,
			Role:  mu.Role,
			Preferences: domain.Preferences{
				LowStockNotifications: mu.Preferences.LowStockNotifications,
				EmailNotifications:    mu.Preferences.EmailNotifications,
				TwoFactorAuth:         mu.Preferences.TwoFactorAuth,
				AutoLogout:            mu.Preferences.AutoLogout,
				Language:              mu.Preferences.Language,
			},
			CreatedAt: mu.CreatedAt.UTC(),
			UpdatedAt: mu.UpdatedAt.UTC(),
		},
		PasswordHash: mu.PasswordHash,
	}
}

// Create inserts a new account document. The unique email index turns
// concurrent duplicate inserts into ErrDuplicateEmail.
func (r *UserRepository) Create(ctx context.Context, record *domain.UserRecord) (*domain.UserRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toMongoUser(record)
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *record
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.UserRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mu mongoUser
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return mu.toRecord(), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.UserRecord, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed identifier can never match a stored document.
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mu mongoUser
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return mu.toRecord(), nil
}

// Update overwrites the mutable fields of an existing account.
func (r *UserRepository) Update(ctx context.Context, record *domain.UserRecord) (*domain.UserRecord, error) {
	oid, err := primitive.ObjectIDFromHex(record.ID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":        record.Name,
		"email":       record.Email,
		"password":    record.PasswordHash,
		"preferences": toMongoUser(record).Preferences,
		"updatedAt":   record.UpdatedAt,
	}}

	res, err := r.col.UpdateByID(ctx, oid, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrUserNotFound
	}

	updated := *record
	return &updated, nil
}

// EnsureIndexes creates the unique email index.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
