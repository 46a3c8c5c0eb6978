package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"strategycoach/internal/errorx"
	"strategycoach/internal/logic"
	"strategycoach/internal/svc"
	"strategycoach/internal/types"
)

func DeleteStrategyHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.DeleteStrategyRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, errorx.BadRequest(err))
			return
		}

		l := logic.NewDeleteStrategyLogic(r.Context(), svcCtx)
		resp, err := l.DeleteStrategy(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
