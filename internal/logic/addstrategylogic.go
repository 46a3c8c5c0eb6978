package logic

import (
	"context"
	"strings"

	"github.com/zeromicro/go-zero/core/logx"

	"strategycoach/internal/errorx"
	"strategycoach/internal/svc"
	"strategycoach/internal/types"
	"strategycoach/pkg/entry"
)

type AddStrategyLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewAddStrategyLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AddStrategyLogic {
	return &AddStrategyLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *AddStrategyLogic) AddStrategy(req *types.AddStrategyRequest) (resp *types.AddStrategyResponse, err error) {
	sess, err := sessionFrom(l.ctx)
	if err != nil {
		return nil, err
	}

	e := entry.Entry{Name: strings.TrimSpace(req.Name), Text: strings.TrimSpace(req.Text)}
	if err := entry.Validate(e); err != nil {
		return nil, errorx.BadRequest(err)
	}

	pos := sess.AddEntry(e)
	total := sess.EntryCount()
	l.Infof("saved strategy at position %d (total %d)", pos, total)
	return &types.AddStrategyResponse{Position: pos, Total: total}, nil
}
