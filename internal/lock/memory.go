// Package lock реализует маркеры занятости: ключ считается занятым, пока по нему идет обработка.
package lock

import (
	"context"
	"sync"
)

// Memory маркеры занятости в памяти процесса.
type Memory struct {
	mu   sync.Mutex
	keys map[string]struct{}
}

func NewMemory() *Memory {
	return &Memory{keys: make(map[string]struct{})}
}

// TryLock помечает key занятым. Возвращает false, если ключ уже занят.
func (m *Memory) TryLock(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, busy := m.keys[key]; busy {
		return false, nil
	}
	m.keys[key] = struct{}{}
	return true, nil
}

func (m *Memory) Unlock(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.keys, key)
	m.mu.Unlock()
	return nil
}

// IsLocked сообщает, занят ли key.
func (m *Memory) IsLocked(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, busy := m.keys[key]
	return busy, nil
}
