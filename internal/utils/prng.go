// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService: это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Interval возвращает min плюс случайное смещение в [0, window). При window <= 0
// возвращает min.
func (s *PRNGService) Interval(min, window int) int {
	if window <= 0 {
		return min
	}
	return min + s.rng.Intn(window)
}
