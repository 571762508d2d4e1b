package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"masil/pkg/redis"
)

// SessionHTTPMiddleware는 chi 라우터용 세션 인증 미들웨어
func SessionHTTPMiddleware(redisClient *redis.RedisClient) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// 회원 가입은 세션 없이 허용
			if strings.HasPrefix(r.URL.Path, "/register") {
				next.ServeHTTP(w, r)
				return
			}

			// 쿠키에서 세션 ID 추출
			cookie, err := r.Cookie("session_id")
			if err != nil {
				http.Error(w, "Unauthorized: No session ID provided", http.StatusUnauthorized)
				return
			}
			sessionID := cookie.Value

			// Redis에서 세션 ID로 사용자 정보 조회
			userID, err := redisClient.GetUserBySessionID(sessionID)
			if err != nil {
				http.Error(w, "Unauthorized: Invalid session ID", http.StatusUnauthorized)
				return
			}

			// 사용자 ID를 요청의 헤더에 추가
			r.Header.Set("X-User-ID", strconv.Itoa(userID))

			next.ServeHTTP(w, r)
		})
	}
}
