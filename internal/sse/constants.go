package sse

import (
	"time"

	"github.com/osse101/ProjectLife_Go/internal/domain"
)

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 10
)

// KeepaliveInterval is how often idle connections get a ping
const KeepaliveInterval = 30 * time.Second

// Stream event types. Domain events keep their bus names on the wire.
const (
	EventTypeConnected      = "connected"
	EventTypeKeepalive      = "keepalive"
	EventTypePlanIngested   = domain.EventTypePlanIngested
	EventTypeQuestCompleted = domain.EventTypeQuestCompleted
	EventTypeQuestRevealed  = domain.EventTypeQuestRevealed
	EventTypeUserLevelUp    = domain.EventTypeUserLevelUp
	EventTypeUserRecovered  = domain.EventTypeUserRecovered
)

// Query parameters accepted by the stream endpoint
const (
	QueryParamTypes  = "types"
	QueryParamUserID = "user_id"
)

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventBroadcast     = "Broadcasting SSE event"
	LogMsgBroadcastDropped   = "SSE broadcast buffer full, event dropped"
	LogMsgClientLagging      = "SSE client buffer full, event skipped"
	LogMsgWriteError         = "Failed to write SSE event"
	LogMsgInvalidPayload     = "Invalid event payload for SSE"
	LogMsgSubscribed         = "SSE subscriber registered for event types"
)
