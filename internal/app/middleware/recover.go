package middleware

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v4"
)

// Recover возвращает middleware, которое перехватывает панику в обработчике, пишет её в лог
// и вызывает onError, если он передан.
func Recover(logger *zap.Logger, onError ...func(error, tele.Context)) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					var e error
					switch x := r.(type) {
					case error:
						e = x
					case string:
						e = errors.New(x)
					default:
						e = fmt.Errorf("unknown panic: %v", x)
					}
					logger.Error("recovered from panic", zap.Error(e), zap.Stack("stack"))
					for _, h := range onError {
						h(e, c)
					}
					err = e
				}
			}()
			return next(c)
		}
	}
}
