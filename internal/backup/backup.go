package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	// MaxSnapshots is the maximum number of snapshots to keep
	MaxSnapshots = 14
	// SnapshotDirName is the name of the snapshot directory
	SnapshotDirName = "backups"
	// SnapshotFilePrefix is the prefix for snapshot files
	SnapshotFilePrefix = "duolist-"
	// SnapshotFileSuffix is the suffix for snapshot files
	SnapshotFileSuffix = ".json"
)

// Info describes one stored snapshot of the shared document.
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager stores local snapshots of the shared document. The remote bin has
// no versioning and writes are full-replace, so a snapshot taken before a
// risky edit is the only way back.
type Manager struct {
	snapshotDir string
}

func NewManager(configDir string) *Manager {
	return &Manager{
		snapshotDir: filepath.Join(configDir, SnapshotDirName),
	}
}

// Dir returns the snapshot directory path.
func (m *Manager) Dir() string {
	return m.snapshotDir
}

// CreateSnapshot writes the raw document to a timestamped file and rotates
// snapshots beyond the retention limit.
func (m *Manager) CreateSnapshot(doc json.RawMessage) (string, error) {
	if err := os.MkdirAll(m.snapshotDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102-150405")
	name := fmt.Sprintf("%s%s%s", SnapshotFilePrefix, timestamp, SnapshotFileSuffix)
	path := filepath.Join(m.snapshotDir, name)

	// Disambiguate when two snapshots land in the same second
	counter := 1
	for {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			break
		}
		name = fmt.Sprintf("%s%s-%d%s", SnapshotFilePrefix, timestamp, counter, SnapshotFileSuffix)
		path = filepath.Join(m.snapshotDir, name)
		counter++
		if counter > 100 {
			return "", fmt.Errorf("failed to generate unique snapshot filename")
		}
	}

	if err := os.WriteFile(path, doc, 0600); err != nil {
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}

	if err := m.rotate(); err != nil {
		// Rotation failure shouldn't fail the snapshot itself
		fmt.Fprintf(os.Stderr, "Warning: failed to rotate old snapshots: %v\n", err)
	}

	return path, nil
}

// ListSnapshots returns all snapshots sorted newest first.
func (m *Manager) ListSnapshots() ([]Info, error) {
	if _, err := os.Stat(m.snapshotDir); os.IsNotExist(err) {
		return []Info{}, nil
	}

	entries, err := os.ReadDir(m.snapshotDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot directory: %w", err)
	}

	var snapshots []Info
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !strings.HasPrefix(name, SnapshotFilePrefix) || !strings.HasSuffix(name, SnapshotFileSuffix) {
			continue
		}

		timestampStr := strings.TrimPrefix(name, SnapshotFilePrefix)
		timestampStr = strings.TrimSuffix(timestampStr, SnapshotFileSuffix)
		// Strip a collision counter if present
		if parts := strings.Split(timestampStr, "-"); len(parts) == 3 {
			timestampStr = strings.Join(parts[:2], "-")
		}

		timestamp, err := time.Parse("20060102-150405", timestampStr)
		if err != nil {
			continue
		}

		path := filepath.Join(m.snapshotDir, name)
		info, err := os.Stat(path)
		if err != nil {
			continue
		}

		snapshots = append(snapshots, Info{
			Path:      path,
			Timestamp: timestamp,
			Size:      info.Size(),
		})
	}

	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].Timestamp.After(snapshots[j].Timestamp)
	})

	return snapshots, nil
}

// ReadSnapshot returns the raw document stored in a snapshot file.
func (m *Manager) ReadSnapshot(path string) (json.RawMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return json.RawMessage(data), nil
}

func (m *Manager) rotate() error {
	snapshots, err := m.ListSnapshots()
	if err != nil {
		return err
	}

	if len(snapshots) <= MaxSnapshots {
		return nil
	}

	for i := MaxSnapshots; i < len(snapshots); i++ {
		if err := os.Remove(snapshots[i].Path); err != nil {
			return fmt.Errorf("failed to remove old snapshot %s: %w", snapshots[i].Path, err)
		}
	}

	return nil
}
