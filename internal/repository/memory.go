package repository

import (
	"context"
	"sync"

	"github.com/satoshiokita/reversi/internal/models"
)

// MemoryGameStore keeps games in process memory.
type MemoryGameStore struct {
	// data maps game IDs to snapshots
	data map[string]models.GameSnapshot

	// dataMutex protects data
	dataMutex sync.Mutex
}

// NewMemoryGameStore creates an empty MemoryGameStore.
func NewMemoryGameStore() *MemoryGameStore {
	return &MemoryGameStore{
		data: make(map[string]models.GameSnapshot),
	}
}

func (s *MemoryGameStore) Save(_ context.Context, snapshot models.GameSnapshot) error {
	s.dataMutex.Lock()
	defer s.dataMutex.Unlock()

	s.data[snapshot.ID] = snapshot
	return nil
}

func (s *MemoryGameStore) Load(_ context.Context, id string) (models.GameSnapshot, error) {
	s.dataMutex.Lock()
	defer s.dataMutex.Unlock()

	snapshot, ok := s.data[id]
	if !ok {
		return models.GameSnapshot{}, ErrGameNotFound
	}
	return snapshot, nil
}

func (s *MemoryGameStore) Delete(_ context.Context, id string) error {
	s.dataMutex.Lock()
	defer s.dataMutex.Unlock()

	if _, ok := s.data[id]; !ok {
		return ErrGameNotFound
	}

	delete(s.data, id)
	return nil
}

// Len returns the number of stored games.
func (s *MemoryGameStore) Len() int {
	s.dataMutex.Lock()
	defer s.dataMutex.Unlock()

	return len(s.data)
}
