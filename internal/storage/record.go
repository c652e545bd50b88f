// Package storage содержит компоненты доступа к сущностям: каждый репозиторий
// переводит доменные вызовы в фильтруемые запросы к recordstore.Client и
// возвращает типизированные структуры вместо сырых записей.
package storage

import (
	"time"

	"github.com/vladislavdragonenkov/retail/internal/recordstore"
)

// Помощники декодирования сырых записей. Record Store возвращает значения
// как int64/float64/string/time.Time/nil в зависимости от колонки.

func asInt64(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case int32:
		return int64(n)
	case float64:
		return int64(n)
	default:
		return 0
	}
}

func asFloat64(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int64:
		return float64(n)
	case int:
		return float64(n)
	default:
		return 0
	}
}

func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func asTime(v any) time.Time {
	if t, ok := v.(time.Time); ok {
		return t
	}
	return time.Time{}
}

// nullable превращает пустую строку в NULL хранилища.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func one(records []recordstore.Record) (recordstore.Record, bool) {
	if len(records) == 0 {
		return nil, false
	}
	return records[0], true
}
