// Package ordercode генерирует человекочитаемые коды заказов.
//
// Формат: PP-<6 шестнадцатеричных символов в верхнем регистре>-<ЧЧММСС>.
// Коллизии не исключены формально, а лишь сделаны астрономически
// маловероятными; фактической защитой служит ограничение уникальности
// в таблице заказов.
package ordercode

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// Prefix фиксированный префикс кода заказа.
const Prefix = "PP"

// Generate возвращает новый код заказа. Компонента времени суток
// форматируется в часовом поясе now.
func Generate(now time.Time) (string, error) {
	const op = "ordercode.Generate"
	buf := make([]byte, 3)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	suffix := strings.ToUpper(hex.EncodeToString(buf))
	return fmt.Sprintf("%s-%s-%s", Prefix, suffix, now.Format("150405")), nil
}
