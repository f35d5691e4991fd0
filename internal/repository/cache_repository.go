package repository

import (
	"context"
	"errors"
)

// ErrNotFound ключ отсутствует в хранилище
var ErrNotFound = errors.New("ключ не найден")

// UpdateFunc получает текущее значение ключа и возвращает новое.
// write=false оставляет значение без изменений.
type UpdateFunc func(current string, found bool) (next string, write bool, err error)

// CacheRepository простое хранилище строк по ключу
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	// Update выполняет чтение и запись ключа атомарно
	Update(ctx context.Context, key string, fn UpdateFunc) error
}
