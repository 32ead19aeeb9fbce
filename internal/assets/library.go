package assets

import (
	"os"
	"path/filepath"

	"github.com/musedlab/tanzquiz-be/internal/quiz"
	"github.com/sirupsen/logrus"
)

// Library resolves the quiz's audio samples under a single base directory.
// Samples are static assets addressed by file name; the library never writes
// them, it only locates them for the static file route.
type Library struct {
	base string
	log  *logrus.Logger
}

func NewLibrary(base string, log *logrus.Logger) (*Library, error) {
	if base == "" {
		base = "./audio"
	}
	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, err
	}
	return &Library{base: base, log: log}, nil
}

// Base returns the directory the static audio route serves from.
func (l *Library) Base() string {
	return l.base
}

// Resolve returns the on-disk path of a sample file name.
func (l *Library) Resolve(name string) string {
	return filepath.Join(l.base, filepath.Clean(name))
}

// Exists reports whether a sample is present on disk.
func (l *Library) Exists(name string) bool {
	info, err := os.Stat(l.Resolve(name))
	return err == nil && !info.IsDir()
}

// VerifyCatalog checks every catalog sample against the base directory and
// returns the missing file names. Each miss is logged as a warning; a missing
// sample only breaks playback of that one round, so startup proceeds.
func (l *Library) VerifyCatalog(catalog *quiz.Catalog) []string {
	var missing []string
	for _, cat := range catalog.Categories {
		for _, sample := range cat.Samples {
			if l.Exists(sample) {
				continue
			}
			missing = append(missing, sample)
			if l.log != nil {
				l.log.Warnf("audio sample %s (category %s) not found under %s", sample, cat.Key, l.base)
			}
		}
	}
	return missing
}
