package components

import (
	"grocery-admin/internal/handler"
	"grocery-admin/internal/handler/api"
	"grocery-admin/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewOfferHandler,
		api.NewPayoutHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(auth *api.AuthHandler, offer *api.OfferHandler, payout *api.PayoutHandler) handler.Handlers {
	return handler.Handlers{
		Auth:   auth,
		Offer:  offer,
		Payout: payout,
	}
}
