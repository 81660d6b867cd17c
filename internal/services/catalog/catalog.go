// Package services содержит чтение каталога учебных материалов с read-through кэшем.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/highschool-prep/internal/lib/sl"
	"github.com/magabrotheeeer/highschool-prep/internal/metrics"
	"github.com/magabrotheeeer/highschool-prep/internal/models"
)

const (
	gradesKey     = "catalog:grades"
	subjectKeyFmt = "catalog:subject:%s"
	unitKeyFmt    = "catalog:unit:%s"
)

// CatalogRepository определяет чтение иерархии каталога из хранилища.
type CatalogRepository interface {
	// Grades возвращает все классы с предметами, главами и разделами.
	Grades(ctx context.Context) ([]*models.Grade, error)
	// Subject возвращает предмет или nil, если его нет.
	Subject(ctx context.Context, id string) (*models.Subject, error)
	// Unit возвращает раздел или nil, если его нет.
	Unit(ctx context.Context, id string) (*models.Unit, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(ctx context.Context, key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
}

// CatalogService отдаёт каталог, используя кэш, если он задан.
type CatalogService struct {
	repo  CatalogRepository
	cache Cache
	ttl   time.Duration
	log   *slog.Logger
}

// NewCatalogService создает новый экземпляр CatalogService. cache может быть nil.
func NewCatalogService(repo CatalogRepository, cache Cache, ttl time.Duration, log *slog.Logger) *CatalogService {
	return &CatalogService{
		repo:  repo,
		cache: cache,
		ttl:   ttl,
		log:   log,
	}
}

// Grades возвращает дерево классов.
func (s *CatalogService) Grades(ctx context.Context) ([]*models.Grade, error) {
	const op = "services.catalog.Grades"
	var grades []*models.Grade
	if s.fromCache(ctx, gradesKey, &grades) {
		return grades, nil
	}
	grades, err := s.repo.Grades(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.toCache(ctx, gradesKey, grades)
	return grades, nil
}

// Subject возвращает предмет с главами и разделами.
func (s *CatalogService) Subject(ctx context.Context, id string) (*models.Subject, error) {
	const op = "services.catalog.Subject"
	key := fmt.Sprintf(subjectKeyFmt, id)
	var subject *models.Subject
	if s.fromCache(ctx, key, &subject) {
		return subject, nil
	}
	subject, err := s.repo.Subject(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if subject != nil {
		s.toCache(ctx, key, subject)
	}
	return subject, nil
}

// Unit возвращает раздел с подразделами.
func (s *CatalogService) Unit(ctx context.Context, id string) (*models.Unit, error) {
	const op = "services.catalog.Unit"
	key := fmt.Sprintf(unitKeyFmt, id)
	var unit *models.Unit
	if s.fromCache(ctx, key, &unit) {
		return unit, nil
	}
	unit, err := s.repo.Unit(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if unit != nil {
		s.toCache(ctx, key, unit)
	}
	return unit, nil
}

// fromCache читает значение из кэша. Ошибка кэша не прерывает запрос.
func (s *CatalogService) fromCache(ctx context.Context, key string, result any) bool {
	if s.cache == nil {
		return false
	}
	found, err := s.cache.Get(ctx, key, result)
	if err != nil {
		metrics.RecordCatalogCache("error")
		s.log.Warn("failed to read catalog cache", slog.String("key", key), sl.Err(err))
		return false
	}
	if !found {
		metrics.RecordCatalogCache("miss")
		return false
	}
	metrics.RecordCatalogCache("hit")
	return true
}

func (s *CatalogService) toCache(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value, s.ttl); err != nil {
		s.log.Warn("failed to cache catalog", slog.String("key", key), sl.Err(err))
	}
}
