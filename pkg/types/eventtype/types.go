package eventtype

// PushEvent는 푸시 알림 요청 이벤트.
// 수신자의 푸시 토큰과 알림 내용만 담는다 (전달 실패는 소비자가 로그만 남김).
type PushEvent struct {
	PushTokens []string `json:"push_tokens"`
	Title      string   `json:"title"`
	Body       string   `json:"body"`
}
