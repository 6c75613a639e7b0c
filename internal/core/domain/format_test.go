package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Русская локаль группирует разряды неразрывными пробелами (U+00A0).
const nbsp = " "

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name  string
		price string
		want  string
	}{
		{"millions grouped", "2800000", "2" + nbsp + "800" + nbsp + "000 ₽"},
		{"fraction rounded", "150000.75", "150" + nbsp + "001 ₽"},
		{"small price", "500", "500 ₽"},
		{"empty price", "", "Цена не указана"},
		{"garbage price", "дорого", "Некорректная цена"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPrice(tt.price))
		})
	}
}

func TestFormatPricePerAre(t *testing.T) {
	assert.Equal(t, "150"+nbsp+"000 ₽/сот.", FormatPricePerAre("150000"))
	assert.Equal(t, "", FormatPricePerAre(""))
	assert.Equal(t, "", FormatPricePerAre("не число"))
}

func TestFormatArea(t *testing.T) {
	assert.Equal(t, "12.5 сот.", FormatArea("12.5"))
	assert.Equal(t, "", FormatArea(""))
}
