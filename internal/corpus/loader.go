package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ppiankov/precedence/internal/cache"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Loader reads corpus files, caching the decoded form between runs
type Loader struct {
	cache  cache.Cache // nil disables caching
	logger *zap.Logger
}

// NewLoader creates a loader; c may be nil
func NewLoader(c cache.Cache, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{cache: c, logger: logger}
}

// Load reads and resolves the corpus at path
func (l *Loader) Load(path string) (*Corpus, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat corpus: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	key := cache.CacheKey(fmt.Sprintf("corpus|%s|%d|%d", abs, info.Size(), info.ModTime().UnixNano()))

	if l.cache != nil {
		if data, ok := l.cache.Get(key); ok {
			var f File
			if err := json.Unmarshal(data, &f); err == nil {
				l.logger.Debug("corpus cache hit", zap.String("path", path))
				return Build(filepath.Base(path), &f)
			}
			l.logger.Warn("discarding unreadable cache entry", zap.String("path", path))
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode corpus: %w", err)
	}

	c, err := Build(filepath.Base(path), &f)
	if err != nil {
		return nil, err
	}

	if l.cache != nil {
		encoded, err := json.Marshal(&f)
		if err == nil {
			err = l.cache.Set(key, encoded, 0)
		}
		if err != nil {
			l.logger.Warn("failed to cache corpus", zap.String("path", path), zap.Error(err))
		}
	}
	return c, nil
}
