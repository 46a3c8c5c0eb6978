package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"strategycoach/internal/svc"
	"strategycoach/internal/types"
)

type ListStrategiesLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListStrategiesLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListStrategiesLogic {
	return &ListStrategiesLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// ListStrategies returns the session's saved entries, newest first.
func (l *ListStrategiesLogic) ListStrategies() (resp *types.ListStrategiesResponse, err error) {
	sess, err := sessionFrom(l.ctx)
	if err != nil {
		return nil, err
	}
	saved := sess.Entries()
	items := make([]types.SavedStrategy, 0, len(saved))
	for _, s := range saved {
		items = append(items, types.SavedStrategy{Position: s.Position, Name: s.Name, Text: s.Text})
	}
	return &types.ListStrategiesResponse{Items: items, Total: len(items)}, nil
}
