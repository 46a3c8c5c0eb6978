package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"strategycoach/internal/logic"
	"strategycoach/internal/svc"
)

func GetSuggestionsHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := logic.NewGetSuggestionsLogic(r.Context(), svcCtx)
		resp, err := l.GetSuggestions()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
