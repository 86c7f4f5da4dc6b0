package pubsub

import (
	"cloud.google.com/go/pubsub"
	"github.com/mauv0809/dsj-tournaments/internal/jump"
)

type client struct {
	client   *pubsub.Client
	teardown func()
}

type noop struct{}

// EventType represents the type of event/message sent via pubsub.
type EventType string

const (
	EventJumpAccepted   EventType = "jump-accepted"
	EventJumpUnassigned EventType = "jump-unassigned"
)

// JumpEvent is the payload published for accepted jumps. Candidates lists the
// tournaments the jump could belong to, which is only interesting when the
// jump was left unassigned.
type JumpEvent struct {
	Jump       jump.Jump `msgpack:"jump"`
	Candidates []string  `msgpack:"candidates"`
}

// PushRequest is the body Pub/Sub push subscriptions deliver.
type PushRequest struct {
	Message struct {
		Data []byte `json:"data"`
		ID   string `json:"messageId"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}
