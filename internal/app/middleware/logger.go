package middleware

import (
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v4"
)

// Logger возвращает middleware, которое логирует входящие обновления Telegram на уровне debug
// и ошибки обработчиков на уровне warn.
func Logger(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			start := time.Now()
			fields := []zap.Field{zap.Int("update_id", c.Update().ID)}
			if u := c.Sender(); u != nil {
				fields = append(fields, zap.Int64("user_id", u.ID))
			}
			switch {
			case c.Callback() != nil:
				fields = append(fields, zap.String("callback", c.Callback().Data))
			case c.Message() != nil:
				fields = append(fields, zap.String("text", c.Message().Text))
			}

			err := next(c)

			fields = append(fields, zap.Duration("took", time.Since(start)))
			if err != nil {
				logger.Warn("update handled with error", append(fields, zap.Error(err))...)
				return err
			}
			logger.Debug("update handled", fields...)
			return nil
		}
	}
}
