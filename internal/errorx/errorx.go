package errorx

import (
	"context"
	"errors"
	"net/http"

	"github.com/zeromicro/go-zero/core/logx"

	"strategycoach/internal/types"
	"strategycoach/pkg/coach"
	"strategycoach/pkg/entry"
)

// CodeError carries the HTTP status it should be rendered with.
type CodeError struct {
	Status  int
	Message string
}

func (e *CodeError) Error() string {
	return e.Message
}

func NewCodeError(status int, msg string) *CodeError {
	return &CodeError{Status: status, Message: msg}
}

func BadRequest(err error) *CodeError {
	return NewCodeError(http.StatusBadRequest, err.Error())
}

// ErrNoSession is returned when a handler runs without the session middleware.
var ErrNoSession = NewCodeError(http.StatusInternalServerError, "session unavailable")

// Handler maps domain errors onto statuses and renders {code, message}.
// It is installed with httpx.SetErrorHandlerCtx.
func Handler(ctx context.Context, err error) (int, any) {
	status, msg := classify(err)
	if status >= http.StatusInternalServerError {
		logx.WithContext(ctx).Errorf("request failed: %v", err)
	}
	return status, types.ErrorResponse{Code: status, Message: msg}
}

func classify(err error) (int, string) {
	var codeErr *CodeError
	var genErr *coach.GenerationError
	switch {
	case errors.As(err, &codeErr):
		return codeErr.Status, codeErr.Message
	case errors.Is(err, coach.ErrDisabled):
		return http.StatusServiceUnavailable, "AI 코치 기능을 사용하기 위한 API 키가 설정되지 않았습니다"
	case errors.Is(err, coach.ErrEmptySituation):
		return http.StatusBadRequest, "현재 상황을 입력해주세요"
	case errors.Is(err, entry.ErrEmptyName), errors.Is(err, entry.ErrEmptyText):
		return http.StatusBadRequest, err.Error()
	case errors.As(err, &genErr):
		return http.StatusBadGateway, "AI 호출 중 오류가 발생했습니다: " + genErr.Err.Error()
	default:
		return http.StatusInternalServerError, "internal error"
	}
}
