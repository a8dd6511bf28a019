// internal/state/mock.go
package state

import "sync"

// Mock is a test double for Manager.
type Mock struct {
	mu         sync.Mutex
	positions  map[string]int
	order      []string
	lastFolder string
	saves      int
	closed     bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{positions: make(map[string]int)}
}

func (m *Mock) SavePosition(folder string, page int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, f := range m.order {
		if f == folder {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	m.order = append(m.order, folder)
	m.positions[folder] = page
	m.saves++
}

func (m *Mock) GetPosition(folder string) (int, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	page, ok := m.positions[folder]
	return page, ok, nil
}

func (m *Mock) RecentFolders(limit int) ([]Position, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Position
	for i := len(m.order) - 1; i >= 0 && len(out) < limit; i-- {
		f := m.order[i]
		out = append(out, Position{Folder: f, Page: m.positions[f]})
	}
	return out, nil
}

func (m *Mock) SaveLastFolder(folder string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastFolder = folder
	return nil
}

func (m *Mock) GetLastFolder() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastFolder, nil
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SaveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

func (m *Mock) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
