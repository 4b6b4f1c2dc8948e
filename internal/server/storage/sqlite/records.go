package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/solarsync/internal/server/storage"
	"github.com/iudanet/solarsync/pkg/api"
)

var _ storage.RecordStorage = (*Storage)(nil)

const recordColumns = `seq, id, base_id, table_name, fields, created_at`

// ListRecords returns one page of a table ordered by insertion
func (s *Storage) ListRecords(ctx context.Context, params storage.ListParams) ([]*storage.Record, error) {
	query := `
		SELECT ` + recordColumns + `
		FROM records
		WHERE base_id = ? AND table_name = ? AND seq > ?
		ORDER BY seq
		LIMIT ?
	`

	rows, err := s.db.QueryContext(ctx, query, params.BaseID, params.Table, params.After, params.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var records []*storage.Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating records: %w", err)
	}

	return records, nil
}

// GetRecord retrieves a single record by ID
// Returns ErrRecordNotFound if it doesn't exist in the given table
func (s *Storage) GetRecord(ctx context.Context, baseID, table, id string) (*storage.Record, error) {
	return getRecord(ctx, s.db, baseID, table, id)
}

// CreateRecord inserts a new record and fills its Seq
func (s *Storage) CreateRecord(ctx context.Context, record *storage.Record) error {
	fields, err := encodeFields(record.Fields)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO records (id, base_id, table_name, fields, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	res, err := s.db.ExecContext(ctx, query,
		record.ID,
		record.BaseID,
		record.Table,
		fields,
		record.CreatedAt.UnixNano(),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return storage.ErrRecordAlreadyExists
		}
		return fmt.Errorf("failed to insert record: %w", err)
	}

	seq, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get record seq: %w", err)
	}
	record.Seq = seq

	return nil
}

// UpdateRecord merges fields into the stored record inside one transaction
func (s *Storage) UpdateRecord(ctx context.Context, baseID, table, id string, fields api.Fields) (*storage.Record, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	record, err := getRecord(ctx, tx, baseID, table, id)
	if err != nil {
		return nil, err
	}

	if record.Fields == nil {
		record.Fields = api.Fields{}
	}
	for name, value := range fields {
		if value == nil {
			delete(record.Fields, name)
			continue
		}
		record.Fields[name] = value
	}

	encoded, err := encodeFields(record.Fields)
	if err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx, `UPDATE records SET fields = ? WHERE seq = ?`, encoded, record.Seq); err != nil {
		return nil, fmt.Errorf("failed to update record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return record, nil
}

// DeleteRecord removes a record
// Returns ErrRecordNotFound if nothing was deleted
func (s *Storage) DeleteRecord(ctx context.Context, baseID, table, id string) error {
	query := `DELETE FROM records WHERE base_id = ? AND table_name = ? AND id = ?`

	res, err := s.db.ExecContext(ctx, query, baseID, table, id)
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrRecordNotFound
	}

	return nil
}

// querier общий интерфейс *sql.DB и *sql.Tx
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getRecord(ctx context.Context, q querier, baseID, table, id string) (*storage.Record, error) {
	query := `
		SELECT ` + recordColumns + `
		FROM records
		WHERE base_id = ? AND table_name = ? AND id = ?
	`

	record, err := scanRecord(q.QueryRowContext(ctx, query, baseID, table, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrRecordNotFound
		}
		return nil, err
	}
	return record, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*storage.Record, error) {
	record := &storage.Record{}
	var fields string
	var createdAt int64

	err := row.Scan(
		&record.Seq,
		&record.ID,
		&record.BaseID,
		&record.Table,
		&fields,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan record: %w", err)
	}

	if err := json.Unmarshal([]byte(fields), &record.Fields); err != nil {
		return nil, fmt.Errorf("failed to decode fields of %s: %w", record.ID, err)
	}
	record.CreatedAt = time.Unix(0, createdAt)

	return record, nil
}

func encodeFields(fields api.Fields) (string, error) {
	if fields == nil {
		return "{}", nil
	}
	data, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("failed to encode fields: %w", err)
	}
	return string(data), nil
}
