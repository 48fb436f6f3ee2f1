package otp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Format(t *testing.T) {
	for i := 0; i < 1000; i++ {
		code, err := Generate()
		require.NoError(t, err)
		require.Len(t, code, Length)
		for _, c := range code {
			assert.GreaterOrEqual(t, c, '0')
			assert.LessOrEqual(t, c, '9')
		}
	}
}

func TestGenerate_CodesVary(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		code, err := Generate()
		require.NoError(t, err)
		seen[code] = struct{}{}
	}
	// 100 одинаковых кодов подряд при равномерном распределении невозможны
	assert.Greater(t, len(seen), 1)
}

func TestGenerate_EveryDigitPositionChanges(t *testing.T) {
	// каждая позиция должна принимать разные значения, то есть цифры
	// генерируются независимо, а не из одного усечённого числа
	varies := make([]map[byte]struct{}, Length)
	for i := range varies {
		varies[i] = make(map[byte]struct{})
	}
	for i := 0; i < 500; i++ {
		code, err := Generate()
		require.NoError(t, err)
		for pos := 0; pos < Length; pos++ {
			varies[pos][code[pos]] = struct{}{}
		}
	}
	for pos, set := range varies {
		assert.Greater(t, len(set), 1, "digit position %d never changed", pos)
	}
}
