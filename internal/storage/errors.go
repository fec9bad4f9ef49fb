package storage

import "errors"

var (
	// ErrStoreUnavailable — файл хранилища отсутствует или не читается.
	// При инициализации это не фатально: хранилище стартует пустым.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrMalformedRecord — повреждённая или неполная запись в файле.
	ErrMalformedRecord = errors.New("malformed record")
	// ErrNotFound — участник с указанными name и username не найден.
	ErrNotFound = errors.New("user not found")
)
