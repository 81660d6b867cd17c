package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/magabrotheeeer/highschool-prep/internal/models"
)

func TestParseID(t *testing.T) {
	oid := bson.NewObjectID()

	got, err := ParseID(oid.Hex())
	require.NoError(t, err)
	assert.Equal(t, oid, got)

	for _, bad := range []string{"", "123", "zzzzzzzzzzzzzzzzzzzzzzzz"} {
		_, err := ParseID(bad)
		assert.ErrorIs(t, err, ErrInvalidID, bad)
	}
}

func TestPick_PreservesReferenceOrder(t *testing.T) {
	a, b, c := bson.NewObjectID(), bson.NewObjectID(), bson.NewObjectID()
	byID := map[bson.ObjectID]*models.SubUnit{
		a: {Name: "a"},
		c: {Name: "c"},
	}

	got := pick([]bson.ObjectID{c, b, a}, byID)
	require.Len(t, got, 2)
	assert.Equal(t, "c", got[0].Name)
	assert.Equal(t, "a", got[1].Name)

	empty := pick[models.SubUnit](nil, byID)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestExtraFields_PlainValues(t *testing.T) {
	oid := bson.NewObjectID()
	when := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	got := extraFields(bson.M{
		"ref":     oid,
		"created": bson.NewDateTimeFromTime(when),
		"meta":    bson.D{{Key: "level", Value: "easy"}, {Key: "refs", Value: bson.A{oid}}},
		"score":   int32(7),
	})

	assert.Equal(t, models.Extra{
		"ref":     oid.Hex(),
		"created": when,
		"meta":    map[string]any{"level": "easy", "refs": []any{oid.Hex()}},
		"score":   int32(7),
	}, got)
	assert.Nil(t, extraFields(nil))
}

func TestCatalogRepository(t *testing.T) {
	s := setupTestStorage(t)
	f := seedCatalog(t, s)
	repo := NewCatalogRepository(s)
	ctx := context.Background()

	t.Run("grades tree", func(t *testing.T) {
		grades, err := repo.Grades(ctx)
		require.NoError(t, err)
		require.Len(t, grades, 2)

		var grade9 *models.Grade
		for _, g := range grades {
			if g.ID == f.Grade.Hex() {
				grade9 = g
			} else {
				assert.Empty(t, g.Subjects, "dangling references are dropped")
			}
		}
		require.NotNil(t, grade9)
		require.Len(t, grade9.Subjects, 2)
		assert.Equal(t, "Math", grade9.Subjects[0].Name)
		assert.Equal(t, "Physics", grade9.Subjects[1].Name)

		chapters := grade9.Subjects[0].Chapters
		require.Len(t, chapters, 1)
		require.Len(t, chapters[0].Units, 2)
		assert.Equal(t, "Linear", chapters[0].Units[0].Name)
		assert.Equal(t, "Quadratics", chapters[0].Units[1].Name)
		assert.Nil(t, chapters[0].Units[0].SubUnits)
	})

	t.Run("subject with chapters and units", func(t *testing.T) {
		subject, err := repo.Subject(ctx, f.Subjects[0].Hex())
		require.NoError(t, err)
		require.NotNil(t, subject)
		assert.Equal(t, "Math", subject.Name)
		assert.Equal(t, f.Chapter.Hex(), subject.Extra["author"])
		require.Len(t, subject.Chapters, 1)
		assert.Len(t, subject.Chapters[0].Units, 2)
	})

	t.Run("unit with sub units in order", func(t *testing.T) {
		unit, err := repo.Unit(ctx, f.Units[0].Hex())
		require.NoError(t, err)
		require.NotNil(t, unit)
		assert.True(t, unit.IsFree)
		assert.Equal(t, int32(1), unit.Extra["order"])
		require.Len(t, unit.SubUnits, 2)
		assert.Equal(t, int32(120), unit.SubUnits[0].Extra["duration"])
		assert.Equal(t, []any{"algebra"}, unit.SubUnits[0].Extra["tags"])
		assert.Nil(t, unit.SubUnits[1].Extra)
		assert.Equal(t, "Intro", unit.SubUnits[0].Name)
		assert.Equal(t, "https://video/1", unit.SubUnits[0].VideoURL)
		assert.Equal(t, "Practice", unit.SubUnits[1].Name)
	})

	t.Run("missing documents are nil", func(t *testing.T) {
		subject, err := repo.Subject(ctx, bson.NewObjectID().Hex())
		require.NoError(t, err)
		assert.Nil(t, subject)

		unit, err := repo.Unit(ctx, bson.NewObjectID().Hex())
		require.NoError(t, err)
		assert.Nil(t, unit)
	})

	t.Run("invalid ids", func(t *testing.T) {
		_, err := repo.Subject(ctx, "bad")
		assert.ErrorIs(t, err, ErrInvalidID)

		_, err = repo.Unit(ctx, "bad")
		assert.ErrorIs(t, err, ErrInvalidID)
	})
}
