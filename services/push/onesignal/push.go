package onesignal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/samber/lo"
)

func Push(payload Payload) error {
	appID := os.Getenv("ONESIGNAL_APP_ID")
	apiKey := os.Getenv("ONESIGNAL_API_KEY")

	if appID == "" || apiKey == "" {
		return fmt.Errorf("app id, app key is invalid, appid: %s, apikey: %s", appID, apiKey)
	}

	// OneSignal API URL
	url := "https://onesignal.com/api/v1/notifications"

	// 빈 토큰 제거 및 중복 제거
	tokens := lo.Uniq(lo.Filter(payload.PushTokens, func(token string, _ int) bool {
		return token != ""
	}))
	if len(tokens) == 0 {
		return fmt.Errorf("no push tokens to send")
	}

	// PushMessage 구조체 초기화
	message := PushMessage{
		AppID:                  appID,
		IncludeSubscriptionIDs: tokens,
		TargetChannel:          "push",
		Headings: map[string]string{
			"ko": payload.Title,
		},
		Contents: map[string]string{
			"ko": payload.Content,
		},
	}

	// JSON 직렬화
	reqBody, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal reqBody: %w", err)
	}

	// HTTP 요청 생성
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(reqBody))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	// HTTP 헤더 설정
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Basic %s", apiKey))

	// HTTP 요청 전송
	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	// 응답 상태 확인
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}

	fmt.Printf("%s notification sent to %d devices", payload.Title, len(tokens))
	return nil
}
