// Package persist records mission completion and kill tallies through a
// gdata save-data manager. A nil manager degrades to memory-only mode so
// the mission never fails on storage problems.
package persist

import (
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	progressObject   = "progress"
	progressProperty = "campaign"
)

// Progress is the persisted campaign record
type Progress struct {
	CompletedLevels []string `yaml:"completedLevels"`
	Objectives      []string `yaml:"objectives"`
	TotalKills      int      `yaml:"totalKills"`
}

// Store implements world.Recorder on top of gdata
type Store struct {
	manager  *gdata.Manager
	progress Progress
}

// Open loads existing progress, or starts fresh when nothing is saved.
// manager may be nil for memory-only operation.
func Open(manager *gdata.Manager) *Store {
	s := &Store{manager: manager}
	if manager == nil || !manager.ObjectPropExists(progressObject, progressProperty) {
		return s
	}
	data, err := manager.LoadObjectProp(progressObject, progressProperty)
	if err != nil {
		return s
	}
	// A corrupt save starts over rather than blocking the mission
	_ = yaml.Unmarshal(data, &s.progress)
	return s
}

// MarkLevelComplete records a finished level once
func (s *Store) MarkLevelComplete(level string) {
	if contains(s.progress.CompletedLevels, level) {
		return
	}
	s.progress.CompletedLevels = append(s.progress.CompletedLevels, level)
	s.flush()
}

// MarkObjective records a completed objective once
func (s *Store) MarkObjective(id string) {
	if contains(s.progress.Objectives, id) {
		return
	}
	s.progress.Objectives = append(s.progress.Objectives, id)
	s.flush()
}

// RecordKills adds a mission's kill count to the campaign total
func (s *Store) RecordKills(total int) {
	s.progress.TotalKills += total
	s.flush()
}

// Snapshot returns a copy of the current progress record
func (s *Store) Snapshot() Progress {
	out := s.progress
	out.CompletedLevels = append([]string(nil), s.progress.CompletedLevels...)
	out.Objectives = append([]string(nil), s.progress.Objectives...)
	return out
}

func (s *Store) flush() {
	if s.manager == nil {
		return
	}
	data, err := yaml.Marshal(&s.progress)
	if err != nil {
		return
	}
	_ = s.manager.SaveObjectProp(progressObject, progressProperty, data)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
