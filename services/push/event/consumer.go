package event

import (
	"log"

	"masil/pkg/mq"
)

type Consumer struct {
	mqClient     *mq.RabbitMQ
	eventHandler *EventHandler
}

func NewConsumer(mqClient *mq.RabbitMQ) *Consumer {
	return &Consumer{
		mqClient:     mqClient,
		eventHandler: NewEventHandler(),
	}
}

func (c *Consumer) StartListening() {
	// Exchange 및 Queue 설정
	err := c.mqClient.DeclareExchange(mq.ExchangePushEvents, mq.ExchangeTypeFanout)
	if err != nil {
		log.Fatalf("❌ Failed to declare exchange %s: %v", mq.ExchangePushEvents, err)
	}

	// Queue 생성 및 바인딩 (Fanout은 라우팅 키 불필요)
	queue, err := c.mqClient.DeclareQueue(mq.QueuePush, mq.ExchangePushEvents, "")
	if err != nil {
		log.Fatalf("❌ Failed to declare queue %s for %s: %v", mq.QueuePush, mq.ExchangePushEvents, err)
	}

	// 메시지 소비 시작
	if err := c.mqClient.ConsumeMessages(queue.Name, c.eventHandler.HandlePushEvent); err != nil {
		log.Fatalf("❌ Failed to consume messages from %s: %v", queue.Name, err)
	}

	log.Println("✅ RabbitMQ Consumer Listening...")

	select {}
}
