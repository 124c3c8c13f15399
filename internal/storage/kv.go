package storage

// KV is a local key-value store holding JSON blobs under fixed string keys.
// Two backends exist: one file per key (default) and a single sqlite table.
type KV interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) ([]byte, bool, error)
	// Put overwrites the value for key wholesale.
	Put(key string, value []byte) error
	Close() error
}

// Fixed blob keys. The names match the original persisted data so an old
// export imports cleanly.
const (
	KeyTasks      = "focusflow_tasks"
	KeySettings   = "focusflow_settings"
	KeyCategories = "focusflow_categories"
)
