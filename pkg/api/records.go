package api

// Fields содержимое записи Airtable: ключи - названия колонок на естественном языке
type Fields map[string]any

// Record представляет одну строку таблицы Airtable
type Record struct {
	Fields      Fields `json:"fields"`
	ID          string `json:"id"`
	CreatedTime string `json:"createdTime,omitempty"`
}

// ListResponse ответ на GET /v0/{base}/{table}
type ListResponse struct {
	Offset  string   `json:"offset,omitempty"`
	Records []Record `json:"records"`
}

// WriteRequest тело POST (create) и PATCH (update)
type WriteRequest struct {
	Fields   Fields `json:"fields"`
	Typecast bool   `json:"typecast,omitempty"`
}

// DeleteResponse ответ на DELETE /v0/{base}/{table}/{id}
type DeleteResponse struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// ErrorDetail описание ошибки в формате Airtable
type ErrorDetail struct {
	Type    string `json:"type"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
