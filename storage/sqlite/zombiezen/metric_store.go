package zombiezen

import (
	"context"
	"fmt"

	"github.com/revelaction/tecla/metric"
	"github.com/revelaction/tecla/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// MetricStore persists metric results in sqlite.
type MetricStore struct {
	pool *sqlitex.Pool
}

var _ storage.MetricRepository = (*MetricStore)(nil)

func NewMetricStore(pool *sqlitex.Pool) *MetricStore {
	return &MetricStore{pool: pool}
}

func (s *MetricStore) Docs() ([]storage.DocInfo, error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer s.pool.Put(conn)

	var docs []storage.DocInfo
	err = sqlitex.Execute(conn, "SELECT id, title FROM docs ORDER BY title", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			docs = append(docs, storage.DocInfo{
				Id:    stmt.ColumnInt(0),
				Title: stmt.ColumnText(1),
			})
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (s *MetricStore) Metrics(docID int) (metric.Result, error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer s.pool.Put(conn)

	res := metric.Result{}
	err = sqlitex.Execute(conn, "SELECT code, value FROM metrics WHERE doc_id = ?", &sqlitex.ExecOptions{
		Args: []interface{}{docID},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			res[stmt.ColumnText(0)] = stmt.ColumnFloat(1)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	if len(res) == 0 {
		return nil, fmt.Errorf("no metrics stored for doc %d", docID)
	}

	return res, nil
}

func (s *MetricStore) Write(info storage.DocInfo, res metric.Result) error {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer s.pool.Put(conn)

	endFn, err := sqlitex.ImmediateTransaction(conn)
	if err != nil {
		return err
	}
	defer endFn(&err)

	err = sqlitex.Execute(conn, "INSERT OR REPLACE INTO docs (id, title) VALUES (?, ?)", &sqlitex.ExecOptions{
		Args: []interface{}{info.Id, info.Title},
	})
	if err != nil {
		return err
	}

	for code, value := range res {
		err = sqlitex.Execute(conn, "INSERT OR REPLACE INTO metrics (doc_id, code, value) VALUES (?, ?, ?)", &sqlitex.ExecOptions{
			Args: []interface{}{info.Id, code, value},
		})
		if err != nil {
			return err
		}
	}

	return nil
}
