// Package secret хранит административный PIN только в виде bcrypt‑хэша.
//
// Hash создаёт хэш при старте приложения, Compare проверяет введённый PIN.
package secret

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrMismatch возвращается, если введённое значение не совпадает с хэшем.
var ErrMismatch = errors.New("secret mismatch")

// Hash возвращает bcrypt‑хэш значения.
func Hash(value string) (string, error) {
	const op = "secret.Hash"
	hashed, err := bcrypt.GenerateFromPassword([]byte(value), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(hashed), nil
}

// Compare сравнивает bcrypt‑хэш с введённым значением.
//
// Возвращает nil при совпадении, ErrMismatch при несовпадении
// и обёрнутую ошибку bcrypt, если сам хэш повреждён.
func Compare(hash, value string) error {
	const op = "secret.Compare"
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(value))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return fmt.Errorf("%s: %w", op, ErrMismatch)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// IsHash сообщает, похоже ли значение на bcrypt‑хэш.
func IsHash(value string) bool {
	_, err := bcrypt.Cost([]byte(value))
	return err == nil
}
