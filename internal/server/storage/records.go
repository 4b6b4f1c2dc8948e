package storage

import (
	"context"
	"time"

	"github.com/iudanet/solarsync/pkg/api"
)

//go:generate go tool moq -out records_mock.go . RecordStorage

// Record строка таблицы в хранилище dev-сервера
type Record struct {
	CreatedAt time.Time
	Fields    api.Fields
	ID        string
	BaseID    string
	Table     string
	Seq       int64
}

// ToAPI converts the stored row to its wire form
func (r *Record) ToAPI() api.Record {
	fields := r.Fields
	if fields == nil {
		fields = api.Fields{}
	}
	return api.Record{
		ID:          r.ID,
		Fields:      fields,
		CreatedTime: r.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

// ListParams параметры постраничного чтения таблицы
type ListParams struct {
	BaseID string
	Table  string
	// After курсор: Seq последней записи предыдущей страницы, 0 для первой
	After int64
	Limit int
}

// RecordStorage определяет интерфейс для хранения записей
type RecordStorage interface {
	// ListRecords возвращает записи таблицы по возрастанию Seq, не более Limit
	ListRecords(ctx context.Context, params ListParams) ([]*Record, error)

	// GetRecord возвращает запись по ID
	GetRecord(ctx context.Context, baseID, table, id string) (*Record, error)

	// CreateRecord сохраняет новую запись. ID и CreatedAt заполняет вызывающий.
	CreateRecord(ctx context.Context, record *Record) error

	// UpdateRecord сливает fields с текущими полями записи.
	// Ключ со значением nil удаляет поле.
	UpdateRecord(ctx context.Context, baseID, table, id string, fields api.Fields) (*Record, error)

	// DeleteRecord удаляет запись
	DeleteRecord(ctx context.Context, baseID, table, id string) error
}
