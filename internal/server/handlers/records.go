package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/solarsync/internal/server/storage"
	"github.com/iudanet/solarsync/internal/validation"
	"github.com/iudanet/solarsync/pkg/api"
)

const (
	// DefaultPageSize и MaxPageSize совпадают с лимитами Airtable
	DefaultPageSize = 100
	MaxPageSize     = 100

	offsetPrefix = "itr"
	maxBodyBytes = 1 << 20
	idAlphabet   = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// NewRecordID генерирует ID вида rec + 14 символов [A-Za-z0-9].
// Байты версии и варианта UUID пропускаются.
func NewRecordID() string {
	u := uuid.New()

	var b strings.Builder
	b.Grow(17)
	b.WriteString("rec")
	for i, v := range u {
		if i == 6 || i == 8 {
			continue
		}
		b.WriteByte(idAlphabet[int(v)%len(idAlphabet)])
	}
	return b.String()
}

// RecordsHandler обслуживает таблицы: /v0/{base}/{table}[/{id}]
type RecordsHandler struct {
	logger  *slog.Logger
	storage storage.RecordStorage
	newID   func() string
	now     func() time.Time
}

// NewRecordsHandler создает handler записей
func NewRecordsHandler(logger *slog.Logger, recordStorage storage.RecordStorage) *RecordsHandler {
	return &RecordsHandler{
		logger:  logger,
		storage: recordStorage,
		newID:   NewRecordID,
		now:     time.Now,
	}
}

// Register регистрирует маршруты на mux (Go 1.22+ patterns)
func (h *RecordsHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /v0/{base}/{table}", h.List)
	mux.HandleFunc("POST /v0/{base}/{table}", h.Create)
	mux.HandleFunc("PATCH /v0/{base}/{table}/{id}", h.Update)
	mux.HandleFunc("DELETE /v0/{base}/{table}/{id}", h.Delete)
}

// List обрабатывает GET /v0/{base}/{table}?pageSize=&offset=
func (h *RecordsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	base, table, ok := h.tableFromPath(w, r)
	if !ok {
		return
	}

	pageSize := DefaultPageSize
	if raw := r.URL.Query().Get("pageSize"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > MaxPageSize {
			WriteError(w, h.logger, http.StatusUnprocessableEntity, ErrTypeInvalidRequest,
				"pageSize must be between 1 and "+strconv.Itoa(MaxPageSize))
			return
		}
		pageSize = n
	}

	after, err := parseOffset(r.URL.Query().Get("offset"))
	if err != nil {
		WriteError(w, h.logger, http.StatusUnprocessableEntity, ErrTypeInvalidOffset, err.Error())
		return
	}

	// Читаем на одну запись больше, чтобы понять, есть ли следующая страница
	records, err := h.storage.ListRecords(ctx, storage.ListParams{
		BaseID: base,
		Table:  table,
		After:  after,
		Limit:  pageSize + 1,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list records",
			slog.String("table", table), slog.Any("error", err))
		WriteError(w, h.logger, http.StatusInternalServerError, ErrTypeServerError, "")
		return
	}

	resp := api.ListResponse{Records: make([]api.Record, 0, min(len(records), pageSize))}
	if len(records) > pageSize {
		records = records[:pageSize]
		resp.Offset = formatOffset(records[pageSize-1].Seq)
	}
	for _, rec := range records {
		resp.Records = append(resp.Records, rec.ToAPI())
	}

	WriteJSON(w, h.logger, resp, http.StatusOK)
}

// Create обрабатывает POST /v0/{base}/{table}
func (h *RecordsHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	base, table, ok := h.tableFromPath(w, r)
	if !ok {
		return
	}

	req, ok := h.decodeWrite(w, r)
	if !ok {
		return
	}

	record := &storage.Record{
		ID:        h.newID(),
		BaseID:    base,
		Table:     table,
		Fields:    dropNulls(req.Fields),
		CreatedAt: h.now(),
	}

	if err := h.storage.CreateRecord(ctx, record); err != nil {
		h.logger.ErrorContext(ctx, "failed to create record",
			slog.String("table", table), slog.Any("error", err))
		WriteError(w, h.logger, http.StatusInternalServerError, ErrTypeServerError, "")
		return
	}

	h.logger.InfoContext(ctx, "record created",
		slog.String("table", table),
		slog.String("record_id", record.ID))

	WriteJSON(w, h.logger, record.ToAPI(), http.StatusOK)
}

// Update обрабатывает PATCH /v0/{base}/{table}/{id}
func (h *RecordsHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	base, table, id, ok := h.recordFromPath(w, r)
	if !ok {
		return
	}

	req, ok := h.decodeWrite(w, r)
	if !ok {
		return
	}

	record, err := h.storage.UpdateRecord(ctx, base, table, id, req.Fields)
	if err != nil {
		h.storageError(w, r, "update", err)
		return
	}

	h.logger.InfoContext(ctx, "record updated",
		slog.String("table", table),
		slog.String("record_id", id))

	WriteJSON(w, h.logger, record.ToAPI(), http.StatusOK)
}

// Delete обрабатывает DELETE /v0/{base}/{table}/{id}
func (h *RecordsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	base, table, id, ok := h.recordFromPath(w, r)
	if !ok {
		return
	}

	if err := h.storage.DeleteRecord(ctx, base, table, id); err != nil {
		h.storageError(w, r, "delete", err)
		return
	}

	h.logger.InfoContext(ctx, "record deleted",
		slog.String("table", table),
		slog.String("record_id", id))

	WriteJSON(w, h.logger, api.DeleteResponse{ID: id, Deleted: true}, http.StatusOK)
}

// tableFromPath проверяет base и права токена на нее
func (h *RecordsHandler) tableFromPath(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	base := r.PathValue("base")
	table := r.PathValue("table")

	if err := validation.ValidateBaseID(base); err != nil {
		WriteError(w, h.logger, http.StatusNotFound, ErrTypeNotFound, err.Error())
		return "", "", false
	}
	if table == "" {
		WriteError(w, h.logger, http.StatusNotFound, ErrTypeNotFound, "table is required")
		return "", "", false
	}

	claims, ok := GetClaims(r.Context())
	if !ok {
		WriteError(w, h.logger, http.StatusUnauthorized, ErrTypeAuthRequired, "")
		return "", "", false
	}
	if !claims.AllowsBase(base) {
		h.logger.WarnContext(r.Context(), "token has no access to base",
			slog.String("subject", claims.Subject),
			slog.String("base", base))
		WriteError(w, h.logger, http.StatusForbidden, ErrTypeForbidden,
			"Invalid permissions, or the requested model was not found.")
		return "", "", false
	}

	return base, table, true
}

func (h *RecordsHandler) recordFromPath(w http.ResponseWriter, r *http.Request) (string, string, string, bool) {
	base, table, ok := h.tableFromPath(w, r)
	if !ok {
		return "", "", "", false
	}

	id := r.PathValue("id")
	if err := validation.ValidateRecordID(id); err != nil {
		WriteError(w, h.logger, http.StatusNotFound, ErrTypeNotFound, err.Error())
		return "", "", "", false
	}

	return base, table, id, true
}

func (h *RecordsHandler) decodeWrite(w http.ResponseWriter, r *http.Request) (*api.WriteRequest, bool) {
	var req api.WriteRequest

	body := io.LimitReader(r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		h.logger.WarnContext(r.Context(), "failed to decode write request", slog.Any("error", err))
		WriteError(w, h.logger, http.StatusUnprocessableEntity, ErrTypeInvalidBody, "Could not parse request body")
		return nil, false
	}

	return &req, true
}

func (h *RecordsHandler) storageError(w http.ResponseWriter, r *http.Request, op string, err error) {
	if errors.Is(err, storage.ErrRecordNotFound) {
		WriteError(w, h.logger, http.StatusNotFound, ErrTypeNotFound, "Could not find record "+r.PathValue("id"))
		return
	}

	h.logger.ErrorContext(r.Context(), "failed to "+op+" record",
		slog.String("record_id", r.PathValue("id")),
		slog.Any("error", err))
	WriteError(w, h.logger, http.StatusInternalServerError, ErrTypeServerError, "")
}

// dropNulls убирает поля со значением null: при создании они не хранятся
func dropNulls(fields api.Fields) api.Fields {
	out := make(api.Fields, len(fields))
	for name, value := range fields {
		if value != nil {
			out[name] = value
		}
	}
	return out
}

func formatOffset(seq int64) string {
	return offsetPrefix + strconv.FormatInt(seq, 10)
}

func parseOffset(offset string) (int64, error) {
	if offset == "" {
		return 0, nil
	}

	raw, ok := strings.CutPrefix(offset, offsetPrefix)
	if !ok {
		return 0, storage.ErrInvalidOffset
	}
	seq, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || seq < 0 {
		return 0, storage.ErrInvalidOffset
	}

	return seq, nil
}
