package logic

import (
	"context"

	"strategycoach/internal/errorx"
	"strategycoach/internal/session"
)

func sessionFrom(ctx context.Context) (*session.Session, error) {
	sess, ok := session.FromContext(ctx)
	if !ok {
		return nil, errorx.ErrNoSession
	}
	return sess, nil
}
