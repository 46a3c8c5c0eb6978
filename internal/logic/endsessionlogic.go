package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"strategycoach/internal/svc"
	"strategycoach/internal/types"
)

type EndSessionLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewEndSessionLogic(ctx context.Context, svcCtx *svc.ServiceContext) *EndSessionLogic {
	return &EndSessionLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// EndSession forgets the caller's saved strategies and suggestions.
func (l *EndSessionLogic) EndSession() (resp *types.EndSessionResponse, err error) {
	sess, err := sessionFrom(l.ctx)
	if err != nil {
		return nil, err
	}
	l.svcCtx.Sessions.Delete(sess.ID)
	l.Infof("session: ended %s with %d saved entries", sess.ID, sess.EntryCount())
	return &types.EndSessionResponse{SessionID: sess.ID, Ended: true}, nil
}
