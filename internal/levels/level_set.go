package levels

import (
	"maps"
	"slices"
	"strings"

	"github.com/goodnatureofminers/blockinsight7000-levels/internal/model"
)

// LevelSet accumulates distinct levels for a single run. The zero value is not usable.
type LevelSet struct {
	levels map[model.Level]struct{}
}

func NewLevelSet(levels ...model.Level) *LevelSet {
	s := &LevelSet{levels: make(map[model.Level]struct{}, len(levels))}
	s.Add(levels...)
	return s
}

func (s *LevelSet) Add(levels ...model.Level) {
	for _, l := range levels {
		s.levels[l] = struct{}{}
	}
}

func (s *LevelSet) Contains(l model.Level) bool {
	_, ok := s.levels[l]
	return ok
}

func (s *LevelSet) Len() int {
	return len(s.levels)
}

// Sorted returns the levels in ascending numeric order.
func (s *LevelSet) Sorted() []model.Level {
	return slices.Sorted(maps.Keys(s.levels))
}

// String renders the set as a comma separated ascending list.
func (s *LevelSet) String() string {
	return Render(s.Sorted())
}

// Render joins already sorted levels with commas. No levels render as "".
func Render(levels []model.Level) string {
	parts := make([]string, len(levels))
	for i, l := range levels {
		parts[i] = l.String()
	}
	return strings.Join(parts, levelSeparator)
}

// Aggregate deduplicates, sorts and renders raw levels in one step.
func Aggregate(levels []model.Level) string {
	return NewLevelSet(levels...).String()
}
