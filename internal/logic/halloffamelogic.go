package logic

import (
	"context"
	"strings"

	"github.com/zeromicro/go-zero/core/logx"

	"strategycoach/internal/svc"
	"strategycoach/internal/types"
	"strategycoach/pkg/halloffame"
)

type HallOfFameLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewHallOfFameLogic(ctx context.Context, svcCtx *svc.ServiceContext) *HallOfFameLogic {
	return &HallOfFameLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *HallOfFameLogic) HallOfFame(req *types.HallOfFameRequest) (resp *types.HallOfFameResponse, err error) {
	sport := strings.TrimSpace(req.Sport)
	if sport == "" {
		sport = halloffame.AllSports
	}

	table := l.svcCtx.HallOfFame
	athletes := table.Filter(sport)
	out := make([]types.Athlete, 0, len(athletes))
	for _, a := range athletes {
		out = append(out, types.Athlete{Name: a.Name, Sport: a.Sport, Quote: a.Quote})
	}
	return &types.HallOfFameResponse{
		Sport:    sport,
		Sports:   append([]string{halloffame.AllSports}, table.Sports()...),
		Athletes: out,
	}, nil
}
