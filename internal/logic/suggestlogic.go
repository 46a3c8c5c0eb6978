package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"strategycoach/internal/svc"
	"strategycoach/internal/types"
)

type SuggestLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSuggestLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SuggestLogic {
	return &SuggestLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Suggest calls the coach and, on success, replaces the session's stored
// suggestions. The session lock is not held during the outbound call, and
// a failed call leaves the previous suggestions in place.
func (l *SuggestLogic) Suggest(req *types.SuggestRequest) (resp *types.SuggestionsResponse, err error) {
	sess, err := sessionFrom(l.ctx)
	if err != nil {
		return nil, err
	}

	result, err := l.svcCtx.Coach.Suggest(l.ctx, req.Situation)
	if err != nil {
		return nil, err
	}
	sess.ReplaceSuggestions(result.Records)

	return &types.SuggestionsResponse{
		Records: toSuggestions(result.Records),
		Usable:  result.Usable,
		Stats: &types.SuggestionStats{
			Blocks:        result.Stats.Blocks,
			WellFormed:    result.Stats.WellFormed,
			MissingMarker: result.Stats.MissingMarker,
			Malformed:     result.Stats.Malformed,
		},
	}, nil
}
