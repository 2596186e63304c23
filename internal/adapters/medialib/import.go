package medialib

import (
	"context"
	"errors"
	"os"

	"go.trai.ch/lume/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// momentFile is the on-disk import format for coarse groups. Timestamps may
// be seconds or milliseconds; they are stored as given and normalized on
// read, like asset times.
type momentFile struct {
	Moments []momentEntry `yaml:"moments"`
}

type momentEntry struct {
	ID        string   `yaml:"id"`
	StartTime int64    `yaml:"startTime"`
	EndTime   int64    `yaml:"endTime"`
	Locations []string `yaml:"locations,omitempty"`
	Count     int      `yaml:"count,omitempty"`
}

// ImportMoments reads a YAML moment manifest and upserts its groups into
// the library. It returns the number of imported groups.
func (l *Library) ImportMoments(ctx context.Context, path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, zerr.With(errors.Join(domain.ErrMomentImportFailed, err), "path", path)
	}

	var file momentFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return 0, zerr.With(errors.Join(domain.ErrMomentImportFailed, err), "path", path)
	}

	groups := make([]domain.CoarseGroup, 0, len(file.Moments))
	for _, m := range file.Moments {
		if m.ID == "" {
			return 0, zerr.With(domain.ErrMomentImportFailed, "reason", "moment without id")
		}
		if m.EndTime < m.StartTime {
			return 0, zerr.With(zerr.With(domain.ErrMomentImportFailed, "reason", "end before start"), "moment", m.ID)
		}
		groups = append(groups, domain.CoarseGroup{
			ID:            m.ID,
			StartTime:     m.StartTime,
			EndTime:       m.EndTime,
			LocationNames: m.Locations,
			ReportedCount: m.Count,
		})
	}

	if err := l.AddMoments(ctx, groups); err != nil {
		return 0, err
	}
	return len(groups), nil
}
