package zombiezen

import (
	"context"

	"zombiezen.com/go/sqlite/sqlitex"
)

const schema = `
CREATE TABLE IF NOT EXISTS docs (
	id INTEGER PRIMARY KEY,
	title TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS metrics (
	doc_id INTEGER NOT NULL REFERENCES docs(id),
	code TEXT NOT NULL,
	value REAL NOT NULL,
	PRIMARY KEY (doc_id, code)
);
`

// CreateTables creates the docs and metrics tables if they do not exist.
func CreateTables(pool *sqlitex.Pool) error {
	conn, err := pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer pool.Put(conn)

	return sqlitex.ExecuteScript(conn, schema, nil)
}
