// Package storage реализует хранилище пользователей и каталога учебных
// материалов на основе MongoDB. Пользователи лежат в коллекции users
// с уникальным индексом по email, каталог хранится в пяти коллекциях,
// связанных массивами ObjectID.
package storage

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// Имена коллекций.
const (
	UsersCollection    = "users"
	GradesCollection   = "grades"
	SubjectsCollection = "subjects"
	ChaptersCollection = "chapters"
	UnitsCollection    = "units"
	SubUnitsCollection = "subunits"
)

var (
	// ErrUserNotFound возвращается, когда пользователь с данным ключом отсутствует.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists возвращается при нарушении уникальности email.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidID возвращается для строки, не являющейся ObjectID.
	ErrInvalidID = errors.New("invalid id")
)

// Storage инкапсулирует подключение к MongoDB.
type Storage struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// New создаёт подключение к MongoDB и проверяет его доступность.
func New(ctx context.Context, uri, database string) (*Storage, error) {
	const op = "storage.New"

	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		Client: client,
		DB:     client.Database(database),
	}, nil
}

// EnsureIndexes создаёт уникальный индекс по email пользователей.
func (s *Storage) EnsureIndexes(ctx context.Context) error {
	const op = "storage.EnsureIndexes"
	_, err := s.DB.Collection(UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Close закрывает соединение с MongoDB.
func (s *Storage) Close(ctx context.Context) error {
	return s.Client.Disconnect(ctx)
}

// ParseID преобразует hex-строку в ObjectID.
func ParseID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}
