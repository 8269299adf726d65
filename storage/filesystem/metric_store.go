package filesystem

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/revelaction/tecla/metric"
	"github.com/revelaction/tecla/storage"
)

const resultExt = ".metrics.json"

// MetricStore persists metric results as one JSON file per document in a
// directory.
type MetricStore struct {
	dir string
}

var _ storage.MetricRepository = (*MetricStore)(nil)

func NewMetricStore(dir string) (*MetricStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &MetricStore{dir: dir}, nil
}

type resultFile struct {
	Id      int                `json:"id"`
	Title   string             `json:"title"`
	Metrics map[string]float64 `json:"metrics"`
}

func (s *MetricStore) Docs() ([]storage.DocInfo, error) {
	files, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	var docs []storage.DocInfo
	for _, file := range files {
		if !strings.HasSuffix(file.Name(), resultExt) {
			continue
		}

		rf, err := s.read(filepath.Join(s.dir, file.Name()))
		if err != nil {
			return nil, err
		}
		docs = append(docs, storage.DocInfo{Id: rf.Id, Title: rf.Title})
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].Title < docs[j].Title })
	return docs, nil
}

func (s *MetricStore) Metrics(docID int) (metric.Result, error) {
	files, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	for _, file := range files {
		if !strings.HasSuffix(file.Name(), resultExt) {
			continue
		}

		rf, err := s.read(filepath.Join(s.dir, file.Name()))
		if err != nil {
			return nil, err
		}
		if rf.Id == docID {
			return metric.Result(rf.Metrics), nil
		}
	}

	return nil, fmt.Errorf("no metrics stored for doc %d", docID)
}

func (s *MetricStore) Write(info storage.DocInfo, res metric.Result) error {
	rf := resultFile{Id: info.Id, Title: info.Title, Metrics: res}
	data, err := json.MarshalIndent(rf, "", "  ")
	if err != nil {
		return err
	}

	name := fmt.Sprintf("%s%s", info.Title, resultExt)
	return os.WriteFile(filepath.Join(s.dir, name), data, 0o644)
}

func (s *MetricStore) read(path string) (resultFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return resultFile{}, err
	}

	var rf resultFile
	if err := json.Unmarshal(data, &rf); err != nil {
		return resultFile{}, err
	}
	return rf, nil
}
