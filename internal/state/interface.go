// internal/state/interface.go
package state

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	SavePosition(folder string, page int)
	GetPosition(folder string) (int, bool, error)
	RecentFolders(limit int) ([]Position, error)
	SaveLastFolder(folder string) error
	GetLastFolder() (string, error)
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
