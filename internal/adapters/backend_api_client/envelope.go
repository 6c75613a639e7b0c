package backend_api_client

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Часть legacy-эндпоинтов backend отдает список то как голый массив,
// то как пагинированный объект {"results": [...]}. Вместо утиной
// проверки формы в глубине бизнес-логики различаем обе формы здесь,
// на границе HTTP, и дальше работаем только со срезом.

type resultsEnvelope struct {
	Results json.RawMessage `json:"results"`
}

// listPayload возвращает JSON-массив элементов из ответа любой из
// двух известных форм. Неизвестная форма — ошибка, не пустой срез.
func listPayload(raw []byte) (json.RawMessage, error) {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty list response from backend")
	}

	switch trimmed[0] {
	case '[':
		return json.RawMessage(trimmed), nil
	case '{':
		var env resultsEnvelope
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, fmt.Errorf("failed to decode list envelope: %w", err)
		}
		if env.Results == nil {
			return nil, fmt.Errorf("list envelope has no results array")
		}
		return env.Results, nil
	default:
		return nil, fmt.Errorf("unexpected list response format from backend")
	}
}
