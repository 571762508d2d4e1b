package transport

import (
	appmiddleware "masil/pkg/middleware"
	"masil/pkg/redis"
	"masil/services/matching/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func NewRouter(matchingHandler *handler.MatchingHandler, adminHandler *handler.AdminHandler, redisClient *redis.RedisClient) *echo.Echo {
	e := echo.New()

	// CORS 설정
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"https://*", "http://*"},
		AllowMethods:     []string{echo.GET, echo.POST, echo.PUT, echo.PATCH, echo.DELETE, echo.OPTIONS},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposeHeaders:    []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// 회원용 매칭 엔드포인트 (세션 인증 필요)
	matching := e.Group("/matching")
	matching.Use(appmiddleware.SessionMiddleware(redisClient))
	matching.GET("/list", matchingHandler.GetMatchingList)
	matching.POST("/select/:matchingID", matchingHandler.SelectCandidate)
	matching.GET("/pending", matchingHandler.GetPendingMatchings)
	matching.POST("/accept/:matchingID", matchingHandler.AcceptMatching)
	matching.POST("/reject/:matchingID", matchingHandler.RejectMatching)
	matching.GET("/status", matchingHandler.GetSelectedStatus)
	matching.DELETE("/withdraw", matchingHandler.WithdrawMatchings)

	// 관리자 엔드포인트
	admin := e.Group("/admin")
	admin.GET("/members/pending", adminHandler.GetPendingMembers)
	admin.GET("/members/:memberID", adminHandler.GetMemberDetail)
	admin.PATCH("/members/:memberID/status", adminHandler.ChangeMemberStatus)
	admin.GET("/selectors", adminHandler.GetApprovedSelectors)
	admin.GET("/selectors/:selectorID/candidates", adminHandler.GetMatchingCandidates)
	admin.POST("/matchings", adminHandler.CreateMatching)
	admin.GET("/matchings", adminHandler.GetAllMatchings)

	return e
}
