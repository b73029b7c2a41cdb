package fonts

import (
	"fmt"
	"sync"
	"time"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// Cache is an optional persistent fetch cache: source URL to raw font bytes
// and MIME type. It only short-circuits the fetch stage - installation and
// reference counting are unaffected.
type Cache struct {
	mu   sync.Mutex
	conn *sqlite.Conn
}

const cacheSchema = `
CREATE TABLE IF NOT EXISTS fonts (
	url   TEXT PRIMARY KEY,
	mime  TEXT NOT NULL,
	data  BLOB NOT NULL,
	stamp INTEGER NOT NULL
);`

// OpenCache opens (creating when necessary) a font cache database. Use
// ":memory:" for a throwaway cache.
func OpenCache(path string) (*Cache, error) {
	conn, err := sqlite.OpenConn(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open font cache '%s': %w", path, err)
	}
	if err := sqlitex.ExecuteTransient(conn, cacheSchema, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("unable to initialize font cache '%s': %w", path, err)
	}
	return &Cache{conn: conn}, nil
}

// Get returns cached bytes and MIME type for url, or nil data on miss.
func (c *Cache) Get(url string) (data []byte, mime string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	err = sqlitex.ExecuteTransient(c.conn,
		`SELECT mime, data FROM fonts WHERE url = ?`,
		&sqlitex.ExecOptions{
			Args: []any{url},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				mime = stmt.ColumnText(0)
				data = make([]byte, stmt.ColumnLen(1))
				stmt.ColumnBytes(1, data)
				return nil
			},
		})
	if err != nil {
		return nil, "", fmt.Errorf("font cache lookup for '%s': %w", url, err)
	}
	return data, mime, nil
}

// Put stores fetched bytes for url, replacing any previous entry.
func (c *Cache) Put(url, mime string, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	err := sqlitex.ExecuteTransient(c.conn,
		`INSERT OR REPLACE INTO fonts (url, mime, data, stamp) VALUES (?, ?, ?, ?)`,
		&sqlitex.ExecOptions{
			Args: []any{url, mime, data, time.Now().Unix()},
		})
	if err != nil {
		return fmt.Errorf("font cache store for '%s': %w", url, err)
	}
	return nil
}

// Close releases the underlying database connection.
func (c *Cache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.Close()
}
