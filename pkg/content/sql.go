package content

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	_ "github.com/go-sql-driver/mysql" // mysql driver loaded here
	_ "github.com/lib/pq"              // postgres driver loaded here
	_ "modernc.org/sqlite"             // sqlite driver loaded here
)

// Kind of content stored in sql store
type Kind string

// kinds of content
const (
	KindString   Kind = "string"
	KindResource Kind = "resource"
)

// SQL is a resolver keeping strings and resource paths in a database.
// supported database types: sqlite, postgres, mysql
type SQL struct {
	db     *sql.DB
	dbType string
}

// NewSQL makes sql resolver for given connection string and creates content table if missing
func NewSQL(conn string) (*SQL, error) {
	dbType := func(c string) (string, error) {
		if strings.HasPrefix(c, "postgres://") {
			return "postgres", nil
		}
		if strings.Contains(c, "@tcp(") {
			return "mysql", nil
		}
		if strings.HasPrefix(c, "file:/") || strings.HasSuffix(c, ".sqlite") || strings.HasSuffix(c, ".db") {
			return "sqlite", nil
		}
		return "", fmt.Errorf("unsupported database type in connection string")
	}

	dbt, err := dbType(conn)
	if err != nil {
		return nil, fmt.Errorf("can't determine database type: %w", err)
	}

	db, err := sql.Open(dbt, conn)
	if err != nil {
		return nil, fmt.Errorf("error opening content database: %w", err)
	}
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS filecraft_content (ckind VARCHAR(16), ckey VARCHAR(255), cval TEXT, PRIMARY KEY (ckind, ckey));`)
	if err != nil {
		return nil, fmt.Errorf("can't create content table: %w", err)
	}
	log.Printf("[INFO] content store: using %s database, type: %s", conn, dbt)
	return &SQL{db: db, dbType: dbt}, nil
}

// Path returns stored resource path for the key
func (s *SQL) Path(key string) (string, error) {
	return s.Get(KindResource, key)
}

// String returns stored string for the key
func (s *SQL) String(key string) (string, error) {
	return s.Get(KindString, key)
}

// Get returns a value of the given kind
func (s *SQL) Get(kind Kind, key string) (string, error) {
	loadStmt := "SELECT cval FROM filecraft_content WHERE ckind = ? AND ckey = ?"
	if s.dbType == "postgres" {
		loadStmt = "SELECT cval FROM filecraft_content WHERE ckind = $1 AND ckey = $2"
	}

	var val string
	if err := s.db.QueryRow(loadStmt, string(kind), key).Scan(&val); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("%s %q: %w", kind, key, ErrNotFound)
		}
		return "", fmt.Errorf("can't get %s %q: %w", kind, key, err)
	}
	return val, nil
}

// Set stores a value of the given kind, replacing existing one
func (s *SQL) Set(kind Kind, key, value string) error {
	var insertStmt string
	switch s.dbType {
	case "sqlite":
		insertStmt = "INSERT OR REPLACE INTO filecraft_content (ckind, ckey, cval) VALUES ($1, $2, $3)"
	case "postgres":
		insertStmt = "INSERT INTO filecraft_content (ckind, ckey, cval) VALUES ($1, $2, $3) ON CONFLICT (ckind, ckey) DO UPDATE SET cval = $3"
	case "mysql":
		insertStmt = "REPLACE INTO filecraft_content (ckind, ckey, cval) VALUES (?, ?, ?)"
	default:
		return fmt.Errorf("unsupported database type: %s", s.dbType)
	}

	stmt, err := s.db.Prepare(insertStmt)
	if err != nil {
		return fmt.Errorf("error preparing insert statement: %w", err)
	}
	defer stmt.Close()

	if _, err = stmt.Exec(string(kind), key, value); err != nil {
		return fmt.Errorf("error inserting %s %q: %w", kind, key, err)
	}
	return nil
}

// Delete removes a value of the given kind
func (s *SQL) Delete(kind Kind, key string) error {
	deleteStmt := "DELETE FROM filecraft_content WHERE ckind = ? AND ckey = ?"
	if s.dbType == "postgres" {
		deleteStmt = "DELETE FROM filecraft_content WHERE ckind = $1 AND ckey = $2"
	}
	res, err := s.db.Exec(deleteStmt, string(kind), key)
	if err != nil {
		return fmt.Errorf("error deleting %s %q: %w", kind, key, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%s %q: %w", kind, key, ErrNotFound)
	}
	return nil
}

// List returns sorted keys of the given kind with optional prefix filter, "*" or empty prefix for all keys
func (s *SQL) List(kind Kind, prefix string) ([]string, error) {
	listStmt := "SELECT ckey FROM filecraft_content WHERE ckind = ?"
	args := []any{string(kind)}
	if prefix != "*" && prefix != "" {
		listStmt += " AND ckey LIKE ?"
		args = append(args, prefix+"%")
	}
	if s.dbType == "postgres" {
		listStmt = strings.Replace(listStmt, "ckind = ?", "ckind = $1", 1)
		listStmt = strings.Replace(listStmt, "LIKE ?", "LIKE $2", 1)
	}

	rows, err := s.db.Query(listStmt, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing %s keys: %w", kind, err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("error scanning %s keys: %w", kind, err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error retrieving %s keys: %w", kind, err)
	}
	sort.Strings(keys)
	return keys, nil
}

// Import stores all strings and resources of the bundle, returns number of stored values
func (s *SQL) Import(b Bundle) (int, error) {
	count := 0
	for k, v := range b.Strings {
		if err := s.Set(KindString, k, v); err != nil {
			return count, err
		}
		count++
	}
	for k, v := range b.Resources {
		if err := s.Set(KindResource, k, v); err != nil {
			return count, err
		}
		count++
	}
	log.Printf("[INFO] imported %d content values", count)
	return count, nil
}

// Close closes the database
func (s *SQL) Close() error {
	return s.db.Close()
}
