package mq

// Exchange Names
const (
	ExchangePushEvents = "push_events"
)

// Exchange Types
const (
	ExchangeTypeTopic  = "topic"
	ExchangeTypeFanout = "fanout"
)

// Queue Names
const (
	QueuePush = "push_queue"
)
