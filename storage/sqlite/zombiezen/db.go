package zombiezen

import (
	"fmt"
	"runtime"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// Pragmas run on each new connection. They must run outside a transaction
// for foreign_keys to take effect.
var connPragmas = []string{
	"PRAGMA foreign_keys = ON;",
	"PRAGMA busy_timeout = 5000;",
}

// NewPool opens a WAL mode pool for the docs or corpses database at dbPath.
func NewPool(dbPath string) (*sqlitex.Pool, error) {
	pool, err := sqlitex.NewPool(fmt.Sprintf("file:%s", dbPath), sqlitex.PoolOptions{
		PoolSize:    runtime.NumCPU(),
		PrepareConn: prepareConn,
	})
	if err != nil {
		return nil, fmt.Errorf("could not open sqlite pool at %s: %w", dbPath, err)
	}

	return pool, nil
}

func prepareConn(conn *sqlite.Conn) error {
	for _, p := range connPragmas {
		if err := sqlitex.ExecuteTransient(conn, p, nil); err != nil {
			return fmt.Errorf("could not run %q: %w", p, err)
		}
	}

	return nil
}
