package domain

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Принтер с русскими правилами группировки разрядов ("2 800 000").
var ruPrinter = message.NewPrinter(language.Russian)

// FormatPrice форматирует цену для отображения: "2 800 000 ₽".
// Копейки отбрасываются округлением.
func FormatPrice(price string) string {
	if price == "" {
		return "Цена не указана"
	}
	v, err := strconv.ParseFloat(price, 64)
	if err != nil {
		return "Некорректная цена"
	}
	return ruPrinter.Sprintf("%d ₽", int64(math.Round(v)))
}

// FormatPricePerAre форматирует цену за сотку: "150 000 ₽/сот.".
// Пустая или некорректная строка дает пустой результат.
func FormatPricePerAre(pricePerAre string) string {
	if pricePerAre == "" {
		return ""
	}
	v, err := strconv.ParseFloat(pricePerAre, 64)
	if err != nil {
		return ""
	}
	return ruPrinter.Sprintf("%d ₽/сот.", int64(math.Round(v)))
}

// FormatArea форматирует площадь: "12.5 сот.".
func FormatArea(area string) string {
	if area == "" {
		return ""
	}
	return area + " сот."
}
