package patient

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	accountIDPrefix = "USR"
	accountIDDigits = 12
	passwordLength  = 8

	digits           = "0123456789"
	passwordAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz" + digits
)

// GenerateAccountID возвращает идентификатор вида USR + 12 случайных цифр.
// Уникальность сама по себе не гарантируется, проверка коллизий — на
// стороне сервиса (strict-режим).
func GenerateAccountID() (string, error) {
	suffix, err := randomString(digits, accountIDDigits)
	if err != nil {
		return "", fmt.Errorf("generate account id: %w", err)
	}
	return accountIDPrefix + suffix, nil
}

// GeneratePassword возвращает 8 случайных символов из [A-Za-z0-9].
func GeneratePassword() (string, error) {
	password, err := randomString(passwordAlphabet, passwordLength)
	if err != nil {
		return "", fmt.Errorf("generate password: %w", err)
	}
	return password, nil
}

func randomString(alphabet string, length int) (string, error) {
	max := big.NewInt(int64(len(alphabet)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = alphabet[n.Int64()]
	}
	return string(out), nil
}
