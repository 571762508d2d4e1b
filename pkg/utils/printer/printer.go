package printer

import (
	"log"

	eventtypes "masil/pkg/types/eventtype"
)

// PushEvent 로그 출력
func PrintPushEvent(event eventtypes.PushEvent) {
	log.Printf("🔔 PushEvent - Tokens: %d, Title: %s, Body: %s",
		len(event.PushTokens),
		event.Title,
		event.Body,
	)
}
