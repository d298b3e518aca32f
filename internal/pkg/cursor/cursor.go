// cursor кодирует идентификатор вакансии в непрозрачный токен пагинации и обратно.
//
// Формат токена: base64 (стандартный алфавит) от десятичной записи id.
package cursor

import (
	"encoding/base64"
	"errors"
	"strconv"
	"strings"
)

// ErrMalformed — токен не удалось разобрать.
var ErrMalformed = errors.New("malformed cursor")

// Encode кодирует id в токен.
func Encode(id int64) string {
	return base64.StdEncoding.EncodeToString([]byte(strconv.FormatInt(id, 10)))
}

// Decode декодирует токен обратно в id.
// Допускается токен без паддинга. Отрицательные значения считаются битыми.
func Decode(token string) (int64, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, ErrMalformed
	}

	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		raw, err = base64.RawStdEncoding.DecodeString(token)
		if err != nil {
			return 0, ErrMalformed
		}
	}

	id, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil || id < 0 {
		return 0, ErrMalformed
	}

	return id, nil
}
