// Package otp реализует генерацию одноразовых кодов для сброса пароля.
//
// Код — строка из шести десятичных цифр. Ведущие нули допустимы и значимы:
// "004321" — корректный код, не равный "4321".
package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Length — длина одноразового кода в символах.
const Length = 6

// Generate возвращает новый одноразовый код из шести цифр.
//
// Каждая цифра выбирается независимо и равномерно из диапазона 0–9
// через crypto/rand, поэтому распределение по всем 10^6 строкам равномерное.
func Generate() (string, error) {
	const op = "otp.Generate"
	code := make([]byte, Length)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("%s: %w", op, err)
		}
		code[i] = byte('0' + n.Int64())
	}
	return string(code), nil
}
