// Package game 内存对局管理：本地服务，人类玩家够用了。
package game

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/muli0525/xqpro/internal/xiangqi"
)

var ErrNotFound = errors.New("game not found")

type State struct {
	ID        string
	Pos       *xiangqi.Position
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Manager struct {
	mu    sync.RWMutex
	games map[string]*State
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*State)}
}

func (m *Manager) NewGame() *State {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	g := &State{
		ID:        id,
		Pos:       xiangqi.NewInitialPosition(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	m.games[id] = g
	return g
}

func (m *Manager) Get(id string) (*State, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, ErrNotFound
	}
	return g, nil
}

func (m *Manager) Update(id string, pos *xiangqi.Position) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[id]
	if !ok {
		return ErrNotFound
	}
	g.Pos = pos
	g.UpdatedAt = time.Now()
	return nil
}
