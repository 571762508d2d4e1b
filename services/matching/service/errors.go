package service

import (
	"errors"
)

// 매칭 엔진의 검증 실패 에러. 모두 상태 변경 전에 발생하며 부분 쓰기는 없다.
var (
	ErrMemberNotFound   = errors.New("member not found")
	ErrMatchingNotFound = errors.New("matching not found")
	ErrInvalidRole      = errors.New("member role is not allowed for this operation")
	ErrInvalidState     = errors.New("matching or member is not in the required state")
	ErrInvalidOwnership = errors.New("matching does not belong to the requester")
	ErrInvalidBatch     = errors.New("batch requires exactly 3 distinct candidates")
)
