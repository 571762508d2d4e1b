package main

import (
	"fmt"
	"log"
	"net/http"

	"masil/pkg/db"
	"masil/pkg/logger"
	"masil/pkg/redis"
	"masil/services/member/handler"
	"masil/services/member/repository"
	"masil/services/member/service"
	"masil/services/member/transport"
)

const webPort = 80

func main() {
	logger.InitLogger(logger.ServiceTypeMember)

	database, err := db.ConnectMySQL()
	if err != nil {
		log.Panic("MySQL 연결 실패: ", err)
	}

	redisClient, err := redis.NewRedisClient()
	if err != nil {
		log.Panic("Redis 연결 실패: ", err)
	}

	memberRepo := repository.NewMemberRepository(database)
	if err := memberRepo.InitDB(); err != nil {
		log.Panic("테이블 마이그레이션 실패: ", err)
	}
	preferenceRepo := repository.NewPreferenceRepository(database)

	memberService := service.NewMemberService(memberRepo)
	preferenceService := service.NewPreferenceService(memberRepo, preferenceRepo)

	memberHandler := handler.NewMemberHandler(memberService, redisClient)
	preferenceHandler := handler.NewPreferenceHandler(preferenceService)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", webPort),
		Handler: transport.NewRouter(memberHandler, preferenceHandler, redisClient),
	}

	log.Printf("🚀 Member Service Started on Port %d", webPort)
	err = srv.ListenAndServe()
	if err != nil {
		log.Fatal(err)
	}
}
