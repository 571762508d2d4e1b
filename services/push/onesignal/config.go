package onesignal

type PushMessage struct {
	AppID                  string            `json:"app_id"`
	IncludeSubscriptionIDs []string          `json:"include_subscription_ids"`
	TargetChannel          string            `json:"target_channel"`
	Headings               map[string]string `json:"headings"`
	Contents               map[string]string `json:"contents"`
}

type Payload struct {
	PushTokens []string `json:"push_tokens"`
	Title      string   `json:"title"`
	Content    string   `json:"content"`
}
