package telemetry

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"log"

	"github.com/cespare/xxhash/v2"
	"github.com/dgraph-io/badger/v4"
	"github.com/dustin/go-humanize"
)

// Stats is one bot() call's worth of search telemetry.
type Stats struct {
	ArenaBytes  uint64 `json:"arena_bytes"`
	Generations int    `json:"generations"`
	Nodes       int    `json:"nodes"`
	BestScore   int32  `json:"best_score"`
}

// Store persists Stats across process runs, keyed by an increasing call
// counter plus a fingerprint of the root matrix, so tuning runs can later
// be correlated back to the board state that produced them.
type Store struct {
	db *badger.DB
}

// Open opens (creating if needed) the telemetry database at dir, or at the
// platform default directory (overridable via BLUEFIN_TELEMETRY_DIR) when
// dir is empty.
func Open(dir string) (*Store, error) {
	if dir == "" {
		var err error
		dir, err = dataDir()
		if err != nil {
			return nil, err
		}
	}

	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Fingerprint hashes a root matrix's rows for use as part of a telemetry
// key, so runs against the same board can be grouped later.
func Fingerprint(rows []uint16) uint64 {
	buf := make([]byte, 0, len(rows)*2)
	for _, row := range rows {
		var b [2]byte
		binary.LittleEndian.PutUint16(b[:], row)
		buf = append(buf, b[:]...)
	}
	return xxhash.Sum64(buf)
}

func key(counter uint64, rows []uint16) []byte {
	return []byte(fmt.Sprintf("%020d-%016x", counter, Fingerprint(rows)))
}

// Record persists stats for the given call counter and root matrix.
func (s *Store) Record(counter uint64, rows []uint16, stats Stats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(counter, rows), data)
	})
}

// Load retrieves previously recorded stats for the given call counter and
// root matrix, returning ok=false if nothing was recorded.
func (s *Store) Load(counter uint64, rows []uint16) (Stats, bool, error) {
	var stats Stats
	found := false
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(counter, rows))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &stats)
		})
	})
	return stats, found, err
}

// LogSummary writes a teacher-style bracketed-tag summary line.
func LogSummary(logger *log.Logger, stats Stats) {
	if logger == nil {
		return
	}
	logger.Printf("[Telemetry] generations=%d nodes=%d arena=%s best=%d",
		stats.Generations, stats.Nodes, humanize.Bytes(stats.ArenaBytes), stats.BestScore)
}
