package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"strategycoach/internal/svc"
	"strategycoach/internal/types"
)

type DeleteStrategyLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewDeleteStrategyLogic(ctx context.Context, svcCtx *svc.ServiceContext) *DeleteStrategyLogic {
	return &DeleteStrategyLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// DeleteStrategy removes by storage position. An unknown position is not
// an error; Removed reports whether anything changed.
func (l *DeleteStrategyLogic) DeleteStrategy(req *types.DeleteStrategyRequest) (resp *types.DeleteStrategyResponse, err error) {
	sess, err := sessionFrom(l.ctx)
	if err != nil {
		return nil, err
	}
	removed := sess.DeleteEntry(req.Position)
	if !removed {
		l.Infof("delete ignored: position %d out of range", req.Position)
	}
	return &types.DeleteStrategyResponse{Removed: removed, Total: sess.EntryCount()}, nil
}
