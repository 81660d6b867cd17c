package storage

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const mongoPort = nat.Port("27017/tcp")

// setupTestStorage поднимает контейнер MongoDB и возвращает подключённое хранилище
// с уникальным индексом. В режиме -short тест пропускается.
func setupTestStorage(t *testing.T) *Storage {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping MongoDB integration test in short mode")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{string(mongoPort)},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort(mongoPort),
			wait.ForLog("Waiting for connections"),
		).WithDeadline(3 * time.Minute),
	}

	mongoContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "failed to start container")
	t.Cleanup(func() {
		_ = mongoContainer.Terminate(context.Background())
	})

	host, err := mongoContainer.Host(ctx)
	require.NoError(t, err, "failed to get host")
	port, err := mongoContainer.MappedPort(ctx, mongoPort)
	require.NoError(t, err, "failed to get port")

	uri := fmt.Sprintf("mongodb://%s:%s", host, port.Port())

	var storage *Storage
	for i := 0; i < 10; i++ {
		storage, err = New(ctx, uri, "highschoolprep_test")
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err, "failed to create storage after retries")
	t.Cleanup(func() {
		_ = storage.Close(context.Background())
	})

	require.NoError(t, storage.EnsureIndexes(ctx))
	return storage
}

// catalogFixture содержит идентификаторы засеянного каталога.
type catalogFixture struct {
	Grade      bson.ObjectID
	Subjects   []bson.ObjectID
	Chapter    bson.ObjectID
	Units      []bson.ObjectID
	SubUnits   []bson.ObjectID
	EmptyGrade bson.ObjectID
}

// seedCatalog вставляет класс с двумя предметами. Ссылки намеренно заданы
// в порядке, отличном от порядка вставки.
func seedCatalog(t *testing.T, s *Storage) catalogFixture {
	t.Helper()
	ctx := context.Background()

	f := catalogFixture{
		Grade:      bson.NewObjectID(),
		Subjects:   []bson.ObjectID{bson.NewObjectID(), bson.NewObjectID()},
		Chapter:    bson.NewObjectID(),
		Units:      []bson.ObjectID{bson.NewObjectID(), bson.NewObjectID()},
		SubUnits:   []bson.ObjectID{bson.NewObjectID(), bson.NewObjectID(), bson.NewObjectID()},
		EmptyGrade: bson.NewObjectID(),
	}

	insert := func(coll string, docs ...any) {
		_, err := s.DB.Collection(coll).InsertMany(ctx, docs)
		require.NoError(t, err)
	}

	insert(SubUnitsCollection,
		subUnitDocument{ID: f.SubUnits[2], Name: "Quiz", Content: "q"},
		subUnitDocument{
			ID:       f.SubUnits[0],
			Name:     "Intro",
			Content:  "hello",
			VideoURL: "https://video/1",
			Extra:    bson.M{"duration": int32(120), "tags": bson.A{"algebra"}},
		},
		subUnitDocument{ID: f.SubUnits[1], Name: "Practice", Content: "p"},
	)
	insert(UnitsCollection,
		unitDocument{ID: f.Units[1], Name: "Quadratics", SubUnits: []bson.ObjectID{f.SubUnits[2]}},
		unitDocument{
			ID:       f.Units[0],
			Name:     "Linear",
			IsFree:   true,
			SubUnits: []bson.ObjectID{f.SubUnits[0], f.SubUnits[1]},
			Extra:    bson.M{"order": int32(1)},
		},
	)
	insert(ChaptersCollection,
		chapterDocument{ID: f.Chapter, Name: "Algebra", Units: f.Units},
	)
	insert(SubjectsCollection,
		subjectDocument{ID: f.Subjects[1], Name: "Physics", Chapters: []bson.ObjectID{}},
		subjectDocument{ID: f.Subjects[0], Name: "Math", Chapters: []bson.ObjectID{f.Chapter}, Extra: bson.M{"author": f.Chapter}},
	)
	insert(GradesCollection,
		gradeDocument{ID: f.Grade, Name: "Grade 9", Subjects: f.Subjects},
		gradeDocument{ID: f.EmptyGrade, Name: "Grade 10", Subjects: []bson.ObjectID{bson.NewObjectID()}},
	)
	return f
}
