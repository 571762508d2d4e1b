package main

import (
	"log"

	"masil/pkg/logger"
	"masil/pkg/mq"
	"masil/services/push/event"
)

func main() {
	logger.InitLogger(logger.ServiceTypePush)

	mqClient, err := mq.ConnectToRabbitMQ()
	if err != nil {
		log.Panic("RabbitMQ 연결 실패: ", err)
	}
	defer mqClient.Conn.Close()

	consumer := event.NewConsumer(mqClient)
	consumer.StartListening()
}
