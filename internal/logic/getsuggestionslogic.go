package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"strategycoach/internal/svc"
	"strategycoach/internal/types"
	"strategycoach/pkg/strategy"
)

type GetSuggestionsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetSuggestionsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetSuggestionsLogic {
	return &GetSuggestionsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetSuggestionsLogic) GetSuggestions() (resp *types.SuggestionsResponse, err error) {
	sess, err := sessionFrom(l.ctx)
	if err != nil {
		return nil, err
	}
	records := sess.Suggestions()
	return &types.SuggestionsResponse{
		Records: toSuggestions(records),
		Usable:  len(records) > 0,
	}, nil
}

func toSuggestions(records []strategy.Record) []types.Suggestion {
	out := make([]types.Suggestion, 0, len(records))
	for _, r := range records {
		out = append(out, types.Suggestion{Strategy: r.Strategy, Explanation: r.Explanation})
	}
	return out
}
