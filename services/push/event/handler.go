package event

import (
	"encoding/json"
	"log"

	eventtypes "masil/pkg/types/eventtype"
	"masil/pkg/utils/printer"
	"masil/services/push/onesignal"
)

type EventHandler struct {
}

func NewEventHandler() *EventHandler {
	return &EventHandler{}
}

func (h *EventHandler) HandlePushEvent(body []byte) {
	var eventData eventtypes.PushEvent
	if err := json.Unmarshal(body, &eventData); err != nil {
		log.Printf("❌ Failed to unmarshal push event: %v", err)
		return
	}

	printer.PrintPushEvent(eventData)

	payload := onesignal.Payload{
		PushTokens: eventData.PushTokens,
		Title:      eventData.Title,
		Content:    eventData.Body,
	}

	if err := onesignal.Push(payload); err != nil {
		log.Printf("❌ Failed to send push notification: %v", err)
		return
	}

	log.Printf("🎯 Processed Push Event: %s", eventData.Title)
}
