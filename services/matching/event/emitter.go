package event

import (
	"encoding/json"
	"log"

	"masil/pkg/mq"
	eventtypes "masil/pkg/types/eventtype"
)

type Emitter struct {
	mqClient *mq.RabbitMQ
}

func NewEmitter(mqClient *mq.RabbitMQ) *Emitter {
	return &Emitter{mqClient: mqClient}
}

func (e *Emitter) PublishPushEvent(payload eventtypes.PushEvent) error {
	eventBytes, err := json.Marshal(payload)
	if err != nil {
		log.Printf("❌ Failed to marshal push event: %v", err)
		return err
	}

	err = e.mqClient.PublishMessage(
		mq.ExchangePushEvents, // Exchange Name (Fanout 타입)
		"",                    // Routing Key (Fanout은 필요 없음)
		eventBytes,
	)
	if err != nil {
		log.Printf("❌ Failed to publish push event: %v", err)
		return err
	}

	log.Printf("Push event published: %s", payload.Title)
	return nil
}
