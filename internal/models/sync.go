package models

// SyncStatus последний результат обновления кеша (фонового или блокирующего).
// Используется только для отображения, на корректность не влияет.
type SyncStatus struct {
	Error     string `json:"error,omitempty"` // сообщение об ошибке (только при Success=false)
	Timestamp int64  `json:"timestamp"`       // время попытки, ms since epoch
	Count     int    `json:"count,omitempty"` // количество записей (только при Success=true)
	Success   bool   `json:"success"`
}

// QueuedRequest describes a write request the interceptor could not deliver.
// The worker only broadcasts it; the client process persists and replays it.
type QueuedRequest struct {
	Headers   map[string]string `json:"headers"`
	ID        string            `json:"id,omitempty"`
	URL       string            `json:"url"`
	Method    string            `json:"method"`
	Body      string            `json:"body"`
	LastError string            `json:"last_error,omitempty"`
	Timestamp int64             `json:"timestamp"` // ms since epoch
	Attempts  int               `json:"attempts,omitempty"`
}
