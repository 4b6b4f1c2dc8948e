package api

// QueuedHeader marks a response fabricated by the offline interceptor
// for a write it could not deliver and has handed over for replay.
const QueuedHeader = "X-Solarsync-Queued"

// CachedHeader marks an API response the offline interceptor served from
// its cache because the network failed. The data may be of any age.
const CachedHeader = "X-Solarsync-Cached"

// OfflineResponse тело ответа, сформированного перехватчиком без обращения к сети
type OfflineResponse struct {
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
	Offline bool   `json:"offline"`
	Queued  bool   `json:"queued,omitempty"`
}
