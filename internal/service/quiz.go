package service

import (
	"math/rand"

	"github.com/gomi-quiz/backend/internal/domain/dictionary"
)

// DatasetSource supplies the current dictionary snapshot.
type DatasetSource interface {
	Get() ([]dictionary.Record, error)
}

// QuizService produces randomized quiz batches from the cached
// dictionary.
type QuizService struct {
	source DatasetSource
}

func NewQuizService(source DatasetSource) *QuizService {
	return &QuizService{source: source}
}

// Sample returns up to limit records in random order. A non-positive
// limit means no truncation. The source's backing slice is copied
// before shuffling and never mutated.
func (s *QuizService) Sample(limit int) ([]dictionary.Record, error) {
	records, err := s.source.Get()
	if err != nil {
		return nil, err
	}

	shuffled := make([]dictionary.Record, len(records))
	copy(shuffled, records)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if limit > 0 && limit < len(shuffled) {
		shuffled = shuffled[:limit]
	}
	return shuffled, nil
}
