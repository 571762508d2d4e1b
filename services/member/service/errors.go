package service

import "errors"

var (
	// ErrMemberNotFound는 회원이 존재하지 않거나 삭제된 경우
	ErrMemberNotFound = errors.New("member not found")

	// ErrDuplicateEmail은 이미 같은 이메일로 가입한 회원이 있는 경우
	ErrDuplicateEmail = errors.New("duplicate email")

	// ErrInvalidRole은 가입 요청의 역할이 SELECTOR/CANDIDATE가 아닌 경우
	ErrInvalidRole = errors.New("invalid member role")

	// ErrInvalidState는 현재 회원 상태에서 허용되지 않는 요청인 경우
	ErrInvalidState = errors.New("invalid member state")

	// ErrInvalidPriorities는 선호 우선순위가 유효하지 않거나 중복된 경우
	ErrInvalidPriorities = errors.New("invalid preference priorities")

	// ErrPreferenceNotFound는 저장된 선호 정보가 없는 경우
	ErrPreferenceNotFound = errors.New("preference not found")
)
