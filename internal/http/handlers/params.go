package handlers

import (
	"math"
	"strings"
)

// splitList режет значение по запятым. Пустое значение -> пустой список;
// очистка элементов — задача сервиса.
func splitList(v string) []string {
	if v == "" {
		return []string{}
	}

	return strings.Split(v, ",")
}

// parseLimit разбирает limit как целое по ведущим цифрам ("15abc" -> 15).
// Нечисловое или отсутствующее значение даёт 0, и сервис применяет default.
func parseLimit(v string) int {
	v = strings.TrimSpace(v)

	neg := false
	switch {
	case strings.HasPrefix(v, "-"):
		neg = true
		v = v[1:]
	case strings.HasPrefix(v, "+"):
		v = v[1:]
	}

	n := 0
	for _, r := range v {
		if r < '0' || r > '9' {
			break
		}

		d := int(r - '0')
		if n > (math.MaxInt32-d)/10 {
			n = math.MaxInt32
			break
		}
		n = n*10 + d
	}

	if neg {
		return -n
	}

	return n
}
