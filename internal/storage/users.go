package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/magabrotheeeer/highschool-prep/internal/models"
)

type userDocument struct {
	ID          bson.ObjectID `bson:"_id,omitempty"`
	Name        string        `bson:"name"`
	Email       string        `bson:"email"`
	Password    string        `bson:"password"`
	Image       string        `bson:"image"`
	IsPremium   bool          `bson:"isPremium"`
	PackageName string        `bson:"packageName,omitempty"`
	PurchasedAt *time.Time    `bson:"purchasedAt,omitempty"`
	ExpiresAt   *time.Time    `bson:"expiresAt,omitempty"`
}

func (d *userDocument) toModel() *models.User {
	return &models.User{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.Password,
		Image:        d.Image,
		IsPremium:    d.IsPremium,
		PackageName:  d.PackageName,
		PurchasedAt:  utcPtr(d.PurchasedAt),
		ExpiresAt:    utcPtr(d.ExpiresAt),
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

// UsersRepository хранит пользователей в коллекции users.
type UsersRepository struct {
	coll *mongo.Collection
}

// NewUsersRepository создаёт репозиторий пользователей.
func NewUsersRepository(s *Storage) *UsersRepository {
	return &UsersRepository{coll: s.DB.Collection(UsersCollection)}
}

// Create сохраняет нового пользователя и возвращает его с присвоенным ID.
// Пустое изображение заменяется models.DefaultImage.
func (r *UsersRepository) Create(ctx context.Context, user models.User) (*models.User, error) {
	const op = "storage.UsersRepository.Create"

	doc := userDocument{
		ID:        bson.NewObjectID(),
		Name:      user.Name,
		Email:     user.Email,
		Password:  user.PasswordHash,
		Image:     user.Image,
		IsPremium: false,
	}
	if doc.Image == "" {
		doc.Image = models.DefaultImage
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%s: %w", op, ErrUserExists)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return doc.toModel(), nil
}

// FindByEmail возвращает пользователя по email.
func (r *UsersRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.UsersRepository.FindByEmail"
	user, err := r.findOne(ctx, bson.D{{Key: "email", Value: email}})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return user, nil
}

// FindByID возвращает пользователя по hex ObjectID.
func (r *UsersRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	const op = "storage.UsersRepository.FindByID"
	oid, err := ParseID(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}
	user, err := r.findOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return user, nil
}

func (r *UsersRepository) findOne(ctx context.Context, filter bson.D) (*models.User, error) {
	var doc userDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return doc.toModel(), nil
}

// UpdateEntitlement атомарно выставляет все поля премиум-доступа одним $set.
// Нераспознанный или отсутствующий id возвращает ErrUserNotFound.
func (r *UsersRepository) UpdateEntitlement(ctx context.Context, id string, ent models.Entitlement) error {
	const op = "storage.UsersRepository.UpdateEntitlement"
	oid, err := ParseID(id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "isPremium", Value: true},
		{Key: "packageName", Value: ent.PackageName},
		{Key: "purchasedAt", Value: ent.PurchasedAt.UTC()},
		{Key: "expiresAt", Value: ent.ExpiresAt.UTC()},
	}}}
	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}
	return nil
}
