// Package storage реализует хранилище участников на основе текстового файла.
// Каждая запись занимает шесть последовательных строк, порядок записей
// совпадает с порядком регистрации. Файл открывается и закрывается
// внутри каждой операции, постоянный дескриптор не удерживается.
package storage

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"io"
	"os"
	"slices"
	"sync"

	"github.com/magabrotheeeer/gym-membership/internal/lib/sl"
	"github.com/magabrotheeeer/gym-membership/internal/models"
)

const filePerm = 0o644

// Storage хранит упорядоченный список участников в памяти
// и зеркалирует его в файл path. Консоль пишет в хранилище, а HTTP‑сервер
// читает его из своей горутины, поэтому доступ к users идёт под mu.
type Storage struct {
	mu    sync.RWMutex
	path  string
	users []models.User
	log   *slog.Logger
}

// New открывает хранилище по пути path и загружает из него участников.
// Отсутствующий или нечитаемый файл не является ошибкой: хранилище стартует пустым,
// а файл будет создан при первом Append. Ошибку возвращает только повреждённый файл.
func New(path string, log *slog.Logger) (*Storage, error) {
	const op = "storage.New"

	s := &Storage{path: path, log: log}
	if err := s.LoadAll(); err != nil {
		if errors.Is(err, ErrStoreUnavailable) {
			log.Warn("unable to open or read the store file, starting empty",
				slog.String("path", path), sl.Err(err))
			return s, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	log.Info("store loaded", slog.String("path", path), slog.Int("users", s.Count()))
	return s, nil
}

// LoadAll перечитывает файл с начала и заменяет список участников в памяти.
func (s *Storage) LoadAll() error {
	const op = "storage.LoadAll"

	f, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
	}
	defer func() {
		_ = f.Close()
	}()

	users, err := decodeUsers(f)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	s.users = users
	s.mu.Unlock()
	return nil
}

// Append дописывает участника в конец файла и только после успешной записи
// добавляет его в память. Если последняя строка файла не завершена переводом
// строки, он дописывается перед записью, чтобы новая запись начиналась с новой строки.
func (s *Storage) Append(user models.User) error {
	const op = "storage.Append"

	var rec bytes.Buffer
	if err := encodeUser(&rec, user); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_RDWR, filePerm)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	unterminated, err := missingFinalNewline(f)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("%s: %w", op, err)
	}
	var buf bytes.Buffer
	if unterminated {
		buf.WriteByte('\n')
	}
	buf.Write(rec.Bytes())

	if _, err = f.Write(buf.Bytes()); err != nil {
		_ = f.Close()
		return fmt.Errorf("%s: %w", op, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.users = append(s.users, user)
	return nil
}

// RewriteAll обрезает файл и записывает в него весь список участников заново.
func (s *Storage) RewriteAll() error {
	const op = "storage.RewriteAll"

	s.mu.Lock()
	defer s.mu.Unlock()

	var buf bytes.Buffer
	for _, u := range s.users {
		if err := encodeUser(&buf, u); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	if err := os.WriteFile(s.path, buf.Bytes(), filePerm); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// FindExact возвращает первого в порядке регистрации участника, у которого
// совпадают и name, и username (с учётом регистра).
func (s *Storage) FindExact(name, username string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Name == name && u.Username == username {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

// Count возвращает количество участников в памяти.
func (s *Storage) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// Snapshot возвращает копию списка участников.
func (s *Storage) Snapshot() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.users)
}

// missingFinalNewline сообщает, что непустой файл не заканчивается на '\n'.
func missingFinalNewline(f *os.File) (bool, error) {
	info, err := f.Stat()
	if err != nil {
		return false, err
	}
	if info.Size() == 0 {
		return false, nil
	}

	last := make([]byte, 1)
	if _, err = f.ReadAt(last, info.Size()-1); err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	return last[0] != '\n', nil
}
