package db

import (
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/ether/richnote-go/lib/exception"
	_ "modernc.org/sqlite"
)

type SQLiteDB struct {
	path  string
	sqlDB *sql.DB
}

func NewSQLiteDB(path string) (*SQLiteDB, error) {
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, exception.NewDatabaseError("error opening sqlite database", err)
	}

	const schema = `CREATE TABLE IF NOT EXISTS document (
		name TEXT PRIMARY KEY,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`
	if _, err := sqlDB.Exec(schema); err != nil {
		return nil, exception.NewDatabaseError("error creating document table", err)
	}

	return &SQLiteDB{path: path, sqlDB: sqlDB}, nil
}

func (d *SQLiteDB) CreateDocument(name string) error {
	resultedSQL, args, err := sq.
		Insert("document").
		Columns("name").
		Values(name).
		Suffix(`ON CONFLICT(name) DO UPDATE SET updated_at = CURRENT_TIMESTAMP`).
		ToSql()
	if err != nil {
		return err
	}

	_, err = d.sqlDB.Exec(resultedSQL, args...)
	return err
}

func (d *SQLiteDB) GetDocument(name string) (*DocumentRecord, error) {
	resultedSQL, args, err := sq.
		Select("name", "created_at", "updated_at").
		From("document").
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := d.sqlDB.QueryRow(resultedSQL, args...)

	var record DocumentRecord
	var createdAt, updatedAt sql.NullTime
	if err := row.Scan(&record.Name, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, exception.NewDocumentNotFoundError(name)
		}
		return nil, err
	}
	if createdAt.Valid {
		record.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		record.UpdatedAt = updatedAt.Time
	}
	return &record, nil
}

func (d *SQLiteDB) ListDocuments() ([]DocumentRecord, error) {
	resultedSQL, args, err := sq.
		Select("name", "created_at", "updated_at").
		From("document").
		OrderBy("updated_at DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := d.sqlDB.Query(resultedSQL, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]DocumentRecord, 0)
	for rows.Next() {
		var record DocumentRecord
		var createdAt, updatedAt sql.NullTime
		if err := rows.Scan(&record.Name, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		if createdAt.Valid {
			record.CreatedAt = createdAt.Time
		}
		if updatedAt.Valid {
			record.UpdatedAt = updatedAt.Time
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func (d *SQLiteDB) DoesDocumentExist(name string) (*bool, error) {
	resultedSQL, args, err := sq.
		Select("COUNT(1)").
		From("document").
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var count int
	if err := d.sqlDB.QueryRow(resultedSQL, args...).Scan(&count); err != nil {
		return nil, err
	}
	exists := count > 0
	return &exists, nil
}

func (d *SQLiteDB) RenameDocument(oldName string, newName string) error {
	resultedSQL, args, err := sq.
		Update("document").
		Set("name", newName).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"name": oldName}).
		ToSql()
	if err != nil {
		return err
	}

	result, err := d.sqlDB.Exec(resultedSQL, args...)
	if err != nil {
		return err
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return exception.NewDocumentNotFoundError(oldName)
	}
	return nil
}

func (d *SQLiteDB) TouchDocument(name string) error {
	resultedSQL, args, err := sq.
		Update("document").
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return err
	}

	_, err = d.sqlDB.Exec(resultedSQL, args...)
	return err
}

func (d *SQLiteDB) RemoveDocument(name string) error {
	resultedSQL, args, err := sq.
		Delete("document").
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return err
	}

	_, err = d.sqlDB.Exec(resultedSQL, args...)
	return err
}

func (d *SQLiteDB) Close() error {
	if err := d.sqlDB.Close(); err != nil {
		return fmt.Errorf("error closing sqlite database: %w", err)
	}
	return nil
}
