package transport

import (
	"net/http"

	"masil/pkg/middleware"
	"masil/pkg/redis"
	"masil/services/member/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func NewRouter(memberHandler *handler.MemberHandler, preferenceHandler *handler.PreferenceHandler, redisClient *redis.RedisClient) http.Handler {
	mux := chi.NewRouter()

	// CORS 설정
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	mux.Use(middleware.SessionHTTPMiddleware(redisClient))

	mux.Post("/register", memberHandler.RegisterMember)
	mux.Post("/logout", memberHandler.Logout)

	mux.Get("/find", memberHandler.FindMember)
	mux.Patch("/push-token", memberHandler.UpdatePushToken)
	mux.Delete("/delete", memberHandler.DeleteMember)

	mux.Post("/preference", preferenceHandler.SavePreference)
	mux.Get("/preference", preferenceHandler.FindPreference)

	return mux
}
