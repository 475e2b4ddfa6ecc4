package prefs

import (
	"sync"

	"github.com/Her0x27/MatrixBotCheckerTrans/internal/i18n"
)

// Store хранит выбранный язык на пользователя. Живёт в памяти процесса,
// без срока жизни. Мьютекс нужен: sync-цикл Matrix может обрабатывать
// события из разных комнат параллельно.
type Store struct {
	mu sync.RWMutex
	m  map[string]i18n.Lang
}

func NewStore() *Store {
	return &Store{m: make(map[string]i18n.Lang)}
}

// SetLanguage записывает язык пользователя. Повторный вызов перезаписывает
// предыдущее значение (последняя запись выигрывает).
func (s *Store) SetLanguage(userID string, l i18n.Lang) {
	s.mu.Lock()
	s.m[userID] = l
	s.mu.Unlock()
}

// Language возвращает язык пользователя или язык по умолчанию.
func (s *Store) Language(userID string) i18n.Lang {
	s.mu.RLock()
	l, ok := s.m[userID]
	s.mu.RUnlock()
	if !ok {
		return i18n.DefaultLang
	}
	return l
}
