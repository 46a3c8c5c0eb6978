package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest"

	"strategycoach/internal/svc"
)

const apiPrefix = "/api"

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		rest.WithMiddlewares(
			[]rest.Middleware{serverCtx.Session},
			apiRoutes(serverCtx)...,
		),
		rest.WithPrefix(apiPrefix),
	)
}

func apiRoutes(serverCtx *svc.ServiceContext) []rest.Route {
	return []rest.Route{
		{
			Method:  http.MethodGet,
			Path:    "/status",
			Handler: StatusHandler(serverCtx),
		},
		{
			Method:  http.MethodDelete,
			Path:    "/session",
			Handler: EndSessionHandler(serverCtx),
		},
		{
			Method:  http.MethodGet,
			Path:    "/strategies",
			Handler: ListStrategiesHandler(serverCtx),
		},
		{
			Method:  http.MethodPost,
			Path:    "/strategies",
			Handler: AddStrategyHandler(serverCtx),
		},
		{
			Method:  http.MethodDelete,
			Path:    "/strategies/:position",
			Handler: DeleteStrategyHandler(serverCtx),
		},
		{
			Method:  http.MethodGet,
			Path:    "/coach/suggestions",
			Handler: GetSuggestionsHandler(serverCtx),
		},
		{
			Method:  http.MethodPost,
			Path:    "/coach/suggestions",
			Handler: SuggestHandler(serverCtx),
		},
		{
			Method:  http.MethodGet,
			Path:    "/halloffame",
			Handler: HallOfFameHandler(serverCtx),
		},
	}
}
