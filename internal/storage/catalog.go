package storage

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/magabrotheeeer/highschool-prep/internal/models"
)

type gradeDocument struct {
	ID       bson.ObjectID   `bson:"_id"`
	Name     string          `bson:"name"`
	Subjects []bson.ObjectID `bson:"subjects"`
	Extra    bson.M          `bson:",inline"`
}

type subjectDocument struct {
	ID       bson.ObjectID   `bson:"_id"`
	Name     string          `bson:"name"`
	Image    string          `bson:"image,omitempty"`
	Chapters []bson.ObjectID `bson:"chapters"`
	Extra    bson.M          `bson:",inline"`
}

type chapterDocument struct {
	ID    bson.ObjectID   `bson:"_id"`
	Name  string          `bson:"name"`
	Units []bson.ObjectID `bson:"units"`
	Extra bson.M          `bson:",inline"`
}

type unitDocument struct {
	ID       bson.ObjectID   `bson:"_id"`
	Name     string          `bson:"name"`
	IsFree   bool            `bson:"isFree"`
	SubUnits []bson.ObjectID `bson:"subUnits"`
	Extra    bson.M          `bson:",inline"`
}

type subUnitDocument struct {
	ID       bson.ObjectID `bson:"_id"`
	Name     string        `bson:"name"`
	Content  string        `bson:"content,omitempty"`
	VideoURL string        `bson:"videoUrl,omitempty"`
	Extra    bson.M        `bson:",inline"`
}

// CatalogRepository читает иерархию каталога, подставляя дочерние документы
// вместо ссылок в порядке, заданном родителем.
type CatalogRepository struct {
	db *mongo.Database
}

// NewCatalogRepository создаёт репозиторий каталога.
func NewCatalogRepository(s *Storage) *CatalogRepository {
	return &CatalogRepository{db: s.DB}
}

// Grades возвращает все классы с предметами, главами и разделами.
// Подразделы в дереве не раскрываются.
func (r *CatalogRepository) Grades(ctx context.Context) ([]*models.Grade, error) {
	const op = "storage.CatalogRepository.Grades"

	cursor, err := r.db.Collection(GradesCollection).Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	var grades []gradeDocument
	if err := cursor.All(ctx, &grades); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var subjectIDs []bson.ObjectID
	for _, g := range grades {
		subjectIDs = append(subjectIDs, g.Subjects...)
	}
	subjects, err := r.subjects(ctx, subjectIDs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result := make([]*models.Grade, 0, len(grades))
	for _, g := range grades {
		result = append(result, &models.Grade{
			ID:       g.ID.Hex(),
			Name:     g.Name,
			Subjects: pick(g.Subjects, subjects),
			Extra:    extraFields(g.Extra),
		})
	}
	return result, nil
}

// Subject возвращает предмет с главами и разделами или nil, если его нет.
func (r *CatalogRepository) Subject(ctx context.Context, id string) (*models.Subject, error) {
	const op = "storage.CatalogRepository.Subject"
	oid, err := ParseID(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	subjects, err := r.subjects(ctx, []bson.ObjectID{oid})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return subjects[oid], nil
}

// Unit возвращает раздел с подразделами или nil, если его нет.
func (r *CatalogRepository) Unit(ctx context.Context, id string) (*models.Unit, error) {
	const op = "storage.CatalogRepository.Unit"
	oid, err := ParseID(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var doc unitDocument
	err = r.db.Collection(UnitsCollection).FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	subUnitDocs, err := findByIDs[subUnitDocument](ctx, r.db.Collection(SubUnitsCollection), doc.SubUnits)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	subUnits := make(map[bson.ObjectID]*models.SubUnit, len(subUnitDocs))
	for _, s := range subUnitDocs {
		subUnits[s.ID] = &models.SubUnit{
			ID:       s.ID.Hex(),
			Name:     s.Name,
			Content:  s.Content,
			VideoURL: s.VideoURL,
			Extra:    extraFields(s.Extra),
		}
	}

	unit := unitModel(doc)
	unit.SubUnits = pick(doc.SubUnits, subUnits)
	return unit, nil
}

// subjects загружает предметы вместе с главами и разделами.
func (r *CatalogRepository) subjects(ctx context.Context, ids []bson.ObjectID) (map[bson.ObjectID]*models.Subject, error) {
	subjectDocs, err := findByIDs[subjectDocument](ctx, r.db.Collection(SubjectsCollection), ids)
	if err != nil {
		return nil, err
	}

	var chapterIDs []bson.ObjectID
	for _, s := range subjectDocs {
		chapterIDs = append(chapterIDs, s.Chapters...)
	}
	chapterDocs, err := findByIDs[chapterDocument](ctx, r.db.Collection(ChaptersCollection), chapterIDs)
	if err != nil {
		return nil, err
	}

	var unitIDs []bson.ObjectID
	for _, c := range chapterDocs {
		unitIDs = append(unitIDs, c.Units...)
	}
	unitDocs, err := findByIDs[unitDocument](ctx, r.db.Collection(UnitsCollection), unitIDs)
	if err != nil {
		return nil, err
	}

	units := make(map[bson.ObjectID]*models.Unit, len(unitDocs))
	for _, u := range unitDocs {
		units[u.ID] = unitModel(u)
	}
	chapters := make(map[bson.ObjectID]*models.Chapter, len(chapterDocs))
	for _, c := range chapterDocs {
		chapters[c.ID] = &models.Chapter{
			ID:    c.ID.Hex(),
			Name:  c.Name,
			Units: pick(c.Units, units),
			Extra: extraFields(c.Extra),
		}
	}
	subjects := make(map[bson.ObjectID]*models.Subject, len(subjectDocs))
	for _, s := range subjectDocs {
		subjects[s.ID] = &models.Subject{
			ID:       s.ID.Hex(),
			Name:     s.Name,
			Image:    s.Image,
			Chapters: pick(s.Chapters, chapters),
			Extra:    extraFields(s.Extra),
		}
	}
	return subjects, nil
}

func unitModel(d unitDocument) *models.Unit {
	return &models.Unit{ID: d.ID.Hex(), Name: d.Name, IsFree: d.IsFree, Extra: extraFields(d.Extra)}
}

// extraFields переводит не описанные в модели поля документа в значения,
// пригодные для JSON: ObjectID в hex, даты в time.Time, вложенные
// документы в map.
func extraFields(doc bson.M) models.Extra {
	if len(doc) == 0 {
		return nil
	}
	out := make(models.Extra, len(doc))
	for k, v := range doc {
		out[k] = plainValue(v)
	}
	return out
}

func plainValue(v any) any {
	switch x := v.(type) {
	case bson.ObjectID:
		return x.Hex()
	case bson.DateTime:
		return x.Time().UTC()
	case bson.D:
		m := make(map[string]any, len(x))
		for _, e := range x {
			m[e.Key] = plainValue(e.Value)
		}
		return m
	case bson.M:
		m := make(map[string]any, len(x))
		for k, e := range x {
			m[k] = plainValue(e)
		}
		return m
	case bson.A:
		a := make([]any, len(x))
		for i, e := range x {
			a[i] = plainValue(e)
		}
		return a
	default:
		return v
	}
}

// findByIDs загружает документы коллекции с _id из ids одним запросом $in.
func findByIDs[T any](ctx context.Context, coll *mongo.Collection, ids []bson.ObjectID) ([]T, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cursor, err := coll.Find(ctx, bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}}})
	if err != nil {
		return nil, err
	}
	var docs []T
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// pick собирает значения по ссылкам в порядке ids, пропуская отсутствующие.
// Результат никогда не nil, чтобы в JSON получался пустой массив.
func pick[T any](ids []bson.ObjectID, byID map[bson.ObjectID]*T) []*T {
	out := make([]*T, 0, len(ids))
	for _, id := range ids {
		if v, ok := byID[id]; ok {
			out = append(out, v)
		}
	}
	return out
}
