package domain

import (
	"fmt"
	"strings"
)

func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatPhoneNumber приводит ввод к виду "+7 (999) 123-45-67".
// Ведущая 8 нормализуется в 7. Если из ввода не собирается полный
// российский номер, строка возвращается как есть.
func FormatPhoneNumber(value string) string {
	digits := stripNonDigits(value)

	formatted := digits
	if strings.HasPrefix(digits, "8") && len(digits) >= 11 {
		formatted = "7" + digits[1:]
	}
	if strings.HasPrefix(formatted, "7") && len(formatted) == 11 {
		return fmt.Sprintf("+7 (%s) %s-%s-%s",
			formatted[1:4], formatted[4:7], formatted[7:9], formatted[9:11])
	}
	if len(formatted) == 10 {
		return fmt.Sprintf("+7 (%s) %s-%s-%s",
			formatted[0:3], formatted[3:6], formatted[6:8], formatted[8:10])
	}
	return value
}

// CleanPhoneNumber извлекает чистый номер в формате +7XXXXXXXXXX —
// именно его ожидает backend в заявках.
func CleanPhoneNumber(value string) string {
	clean := stripNonDigits(value)
	if strings.HasPrefix(clean, "8") && len(clean) >= 11 {
		clean = "7" + clean[1:]
	}
	if len(clean) == 10 {
		clean = "7" + clean
	}
	return "+" + clean
}

// PhoneDigitCount считает цифры в уже очищенном номере.
// Валидной заявке нужно минимум 11.
func PhoneDigitCount(value string) int {
	return len(stripNonDigits(value))
}
