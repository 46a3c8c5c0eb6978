package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"strategycoach/internal/logic"
	"strategycoach/internal/middleware"
	"strategycoach/internal/svc"
)

func EndSessionHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := logic.NewEndSessionLogic(r.Context(), svcCtx)
		resp, err := l.EndSession()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			middleware.ClearSession(w)
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
