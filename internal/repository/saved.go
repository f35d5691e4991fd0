package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// ErrUnknownSlug калькулятор с таким идентификатором не существует
var ErrUnknownSlug = errors.New("неизвестный калькулятор")

// SavedCalculators список закладок калькуляторов.
// Хранится одним ключом как JSON-массив идентификаторов, без версии схемы.
type SavedCalculators struct {
	cache  CacheRepository
	key    string
	known  map[string]struct{}
	logger *logrus.Logger
}

func NewSavedCalculators(cache CacheRepository, key string, known []string, logger *logrus.Logger) *SavedCalculators {
	set := make(map[string]struct{}, len(known))
	for _, slug := range known {
		set[slug] = struct{}{}
	}
	return &SavedCalculators{
		cache:  cache,
		key:    key,
		known:  set,
		logger: logger,
	}
}

// List возвращает сохраненные идентификаторы в порядке добавления
func (s *SavedCalculators) List(ctx context.Context) ([]string, error) {
	raw, err := s.cache.Get(ctx, s.key)
	if errors.Is(err, ErrNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения списка закладок: %w", err)
	}
	return s.decode(raw), nil
}

// Add добавляет калькулятор в закладки; повторное добавление ничего не меняет
func (s *SavedCalculators) Add(ctx context.Context, slug string) ([]string, error) {
	if err := s.checkKnown(slug); err != nil {
		return nil, err
	}

	slugs, changed, err := s.modify(ctx, func(slugs []string) ([]string, bool) {
		if contains(slugs, slug) {
			return slugs, false
		}
		return append(slugs, slug), true
	})
	if err != nil {
		return nil, err
	}
	if changed {
		s.logger.WithField("slug", slug).Info("Калькулятор добавлен в закладки")
	}
	return slugs, nil
}

// Remove удаляет калькулятор из закладок
func (s *SavedCalculators) Remove(ctx context.Context, slug string) ([]string, error) {
	slugs, changed, err := s.modify(ctx, func(slugs []string) ([]string, bool) {
		kept := make([]string, 0, len(slugs))
		for _, saved := range slugs {
			if saved != slug {
				kept = append(kept, saved)
			}
		}
		return kept, len(kept) != len(slugs)
	})
	if err != nil {
		return nil, err
	}
	if changed {
		s.logger.WithField("slug", slug).Info("Калькулятор удален из закладок")
	}
	return slugs, nil
}

// IsSaved сообщает, есть ли калькулятор в закладках
func (s *SavedCalculators) IsSaved(ctx context.Context, slug string) (bool, error) {
	if err := s.checkKnown(slug); err != nil {
		return false, err
	}
	slugs, err := s.List(ctx)
	if err != nil {
		return false, err
	}
	return contains(slugs, slug), nil
}

func (s *SavedCalculators) checkKnown(slug string) error {
	if _, ok := s.known[slug]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSlug, slug)
	}
	return nil
}

// modify применяет изменение к списку одной атомарной операцией хранилища
func (s *SavedCalculators) modify(ctx context.Context, change func([]string) ([]string, bool)) ([]string, bool, error) {
	var result []string
	var changed bool
	err := s.cache.Update(ctx, s.key, func(raw string, found bool) (string, bool, error) {
		slugs := []string{}
		if found {
			slugs = s.decode(raw)
		}
		result, changed = change(slugs)
		if !changed {
			return "", false, nil
		}
		data, err := json.Marshal(result)
		if err != nil {
			return "", false, fmt.Errorf("ошибка сериализации списка закладок: %w", err)
		}
		return string(data), true, nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("ошибка записи списка закладок: %w", err)
	}
	return result, changed, nil
}

func (s *SavedCalculators) decode(raw string) []string {
	var slugs []string
	if err := json.Unmarshal([]byte(raw), &slugs); err != nil {
		// Поврежденное значение не должно ломать страницу: начинаем с пустого списка
		s.logger.WithError(err).WithField("key", s.key).Warn("Поврежденный список закладок, используется пустой")
		return []string{}
	}
	if slugs == nil {
		return []string{}
	}
	return slugs
}

func contains(slugs []string, slug string) bool {
	for _, saved := range slugs {
		if saved == slug {
			return true
		}
	}
	return false
}
