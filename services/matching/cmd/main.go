package main

import (
	"fmt"
	"log"
	"net/http"

	"masil/pkg/db"
	"masil/pkg/logger"
	"masil/pkg/mq"
	"masil/pkg/redis"
	"masil/services/matching/event"
	"masil/services/matching/handler"
	"masil/services/matching/repository"
	"masil/services/matching/service"
	"masil/services/matching/transport"
)

const webPort = 80

func main() {
	logger.InitLogger(logger.ServiceTypeMatching)

	database, err := db.ConnectMySQL()
	if err != nil {
		log.Panic("MySQL 연결 실패: ", err)
	}

	mqClient, err := mq.ConnectToRabbitMQ()
	if err != nil {
		log.Panic("RabbitMQ 연결 실패: ", err)
	}
	defer mqClient.Conn.Close()

	redisClient, err := redis.NewRedisClient()
	if err != nil {
		log.Panic("Redis 연결 실패: ", err)
	}

	matchingRepo := repository.NewMatchingRepository(database)
	if err := matchingRepo.InitDB(); err != nil {
		log.Panic("테이블 마이그레이션 실패: ", err)
	}

	// Emitter 생성 (event 패키지 직접 참조 X)
	emitter := event.NewEmitter(mqClient)

	scoreService := service.NewScoreService()
	matchingService := service.NewMatchingService(matchingRepo, emitter)
	adminService := service.NewAdminService(matchingRepo, scoreService, emitter)

	matchingHandler := handler.NewMatchingHandler(matchingService)
	adminHandler := handler.NewAdminHandler(adminService)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", webPort),
		Handler: transport.NewRouter(matchingHandler, adminHandler, redisClient),
	}

	log.Printf("🚀 Matching Service Started on Port %d", webPort)
	err = srv.ListenAndServe()
	if err != nil {
		log.Fatal(err)
	}
}
