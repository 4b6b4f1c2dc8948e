package worker

import "github.com/iudanet/solarsync/internal/models"

// MessageType тип сообщения между воркером и страницей
type MessageType string

const (
	// MessageQueueRequest worker → page: a write could not be delivered
	MessageQueueRequest MessageType = "QUEUE_REQUEST"
	// MessageStartSync worker → page: replay queued writes now
	MessageStartSync MessageType = "START_SYNC"
	// MessageSkipWaiting page → worker: activate an installed worker
	MessageSkipWaiting MessageType = "SKIP_WAITING"
	// MessageClearCache page → worker: drop every cache
	MessageClearCache MessageType = "CLEAR_CACHE"
)

// SyncTag is the only background sync tag the worker reacts to
const SyncTag = "sync-offline-data"

// Message is the unit exchanged over a Port
type Message struct {
	Data *models.QueuedRequest `json:"data,omitempty"`
	Type MessageType           `json:"type"`
}
