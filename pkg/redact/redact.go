// redact — безопасное редактирование чувствительных данных для логов.
package redact

import "net/url"

// URL маскирует пароль в строке подключения (postgres://, redis://).
//
// Правила:
//   - пароль из userinfo заменяется на "xxxxx", имя пользователя сохраняется;
//   - строка, которую не удалось разобрать как URL, целиком заменяется на "***";
//   - пустая строка остаётся пустой.
//
// Примеры:
//
//	"postgres://app:secret@db:5432/jobs" -> "postgres://app:xxxxx@db:5432/jobs"
//	"redis://localhost:6379/0"           -> "redis://localhost:6379/0"
func URL(s string) string {
	if s == "" {
		return ""
	}

	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" {
		return "***"
	}

	return u.Redacted()
}
