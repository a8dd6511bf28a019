package state

import (
	"database/sql"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"

	dbutil "github.com/llehouerou/reel/internal/db"
)

const (
	appName      = "reel"
	dbFileName   = "reel.db"
	saveDebounce = 500 * time.Millisecond
)

type Manager struct {
	db        *sql.DB
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   map[string]int
	debounce  time.Duration
}

// Open opens the state database in the XDG data directory.
func Open() (*Manager, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, err
	}
	return OpenPath(dbPath)
}

// OpenPath opens the state database at path.
func OpenPath(path string) (*Manager, error) {
	db, err := dbutil.Open(path)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{
		db:       db,
		pending:  make(map[string]int),
		debounce: saveDebounce,
	}, nil
}

func (m *Manager) Close() error {
	m.Flush()
	return m.db.Close()
}

// SavePosition records the page shown for folder. Writes are debounced so
// rapid page changes only hit the database once they calm down.
func (m *Manager) SavePosition(folder string, page int) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending[folder] = page

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(m.debounce, m.Flush)
}

// Flush writes pending positions immediately.
func (m *Manager) Flush() {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
		m.saveTimer = nil
	}
	pending := m.pending
	m.pending = make(map[string]int)
	m.saveMu.Unlock()

	if len(pending) > 0 {
		_ = savePositions(m.db, pending, time.Now())
	}
}

// GetPosition returns the saved page for folder. A pending, not yet written
// position wins over the stored one.
func (m *Manager) GetPosition(folder string) (int, bool, error) {
	m.saveMu.Lock()
	page, ok := m.pending[folder]
	m.saveMu.Unlock()
	if ok {
		return page, true, nil
	}
	return getPosition(m.db, folder)
}

// RecentFolders returns up to limit folders, most recently viewed first.
func (m *Manager) RecentFolders(limit int) ([]Position, error) {
	m.Flush()
	return recentPositions(m.db, limit)
}

func (m *Manager) SaveLastFolder(folder string) error {
	return saveLastFolder(m.db, folder)
}

func (m *Manager) GetLastFolder() (string, error) {
	return getLastFolder(m.db)
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
