package repository

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/damda-market/storefront/pkg/logger"
)

// 플랫 레코드 문서 이름
const (
	DocProducts         = "products.json"
	DocPages            = "pages.json"
	DocHomepageSettings = "homepage-settings.json"
	DocBusinessInfo     = "business-info.json"
	DocIntroContent     = "intro-content.json"
)

// FileStore 컬렉션당 JSON 문서 하나를 읽고 쓰는 플랫 레코드 저장소.
// 단일 프로세스 관리 도구 수준의 동시성만 가정하며 잠금은 없다.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Read 문서를 v로 역직렬화한다. 파일이 없거나 파싱에 실패하면
// v를 건드리지 않고 조용히 반환한다 — 호출자가 넘긴 빈 기본값이 그대로 쓰인다.
func (s *FileStore) Read(name string, v interface{}) {
	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Warn("filestore read failed", zap.String("doc", name), zap.Error(err))
		}
		return
	}
	if err := json.Unmarshal(data, v); err != nil {
		logger.Warn("filestore parse failed", zap.String("doc", name), zap.Error(err))
	}
}

// Write 문서를 직렬화해 저장한다. 첫 쓰기 시 디렉토리를 만든다.
func (s *FileStore) Write(name string, v interface{}) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		logger.Error("filestore mkdir failed", zap.String("dir", s.dir), zap.Error(err))
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		logger.Error("filestore write failed", zap.String("doc", name), zap.Error(err))
		return err
	}
	return nil
}
