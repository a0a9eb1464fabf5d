package middleware

import (
	"vocabtrainer/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	msgError       = "Something went wrong. Please try again later."
	msgAskPassword = "Please send /start and enter the password first."
)

// AuthMiddleware lets only authorized users through
func AuthMiddleware(authService *service.AuthService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				return nil
			}

			if err := authService.EnsureUserExists(sender.ID); err != nil {
				logger.Error("Failed to ensure user exists in middleware", zap.Error(err))
				return c.Send(msgError)
			}

			authorized, err := authService.IsAuthorized(sender.ID)
			if err != nil {
				logger.Error("Failed to check authorization in middleware", zap.Error(err))
				return c.Send(msgError)
			}

			if !authorized {
				logger.Debug("Rejected unauthorized update", zap.Int64("user_id", sender.ID))
				if c.Callback() != nil {
					return c.Respond(&tele.CallbackResponse{Text: msgAskPassword, ShowAlert: true})
				}
				return c.Send(msgAskPassword)
			}

			return next(c)
		}
	}
}
