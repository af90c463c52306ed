package places

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/iitalics/botris-battle-bluefin/internal/falling"
)

// visitedSet is an open-addressed hash set of encoded poses, sized as a
// power of two like the teacher's transposition table
// (internal/engine/transposition.go) but allowed to grow: place enumeration
// has no fixed bound on how many distinct poses a shape can reach.
type visitedSet struct {
	keys  []uint32
	used  []bool
	mask  uint32
	count int
}

func encodePose(p falling.Pose) uint32 {
	return uint32(uint8(p.X))<<16 | uint32(uint8(p.Y))<<8 | uint32(uint8(p.R))
}

// newVisitedSet allocates a set with room for at least capHint entries
// before its first grow.
func newVisitedSet(capHint int) *visitedSet {
	size := uint32(256)
	for int(size) < capHint*2 {
		size <<= 1
	}
	return &visitedSet{
		keys: make([]uint32, size),
		used: make([]bool, size),
		mask: size - 1,
	}
}

func hashKey(key uint32) uint64 {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], key)
	return xxhash.Sum64(b[:])
}

// insert reports whether pose was newly added; it returns false if pose was
// already present.
func (s *visitedSet) insert(pose falling.Pose) bool {
	if s.count*10 >= len(s.keys)*7 {
		s.grow()
	}
	key := encodePose(pose)
	idx := uint32(hashKey(key)) & s.mask
	for {
		if !s.used[idx] {
			s.used[idx] = true
			s.keys[idx] = key
			s.count++
			return true
		}
		if s.keys[idx] == key {
			return false
		}
		idx = (idx + 1) & s.mask
	}
}

func (s *visitedSet) grow() {
	oldKeys, oldUsed := s.keys, s.used
	size := uint32(len(oldKeys)) * 2
	s.keys = make([]uint32, size)
	s.used = make([]bool, size)
	s.mask = size - 1
	s.count = 0
	for i, used := range oldUsed {
		if !used {
			continue
		}
		key := oldKeys[i]
		idx := uint32(hashKey(key)) & s.mask
		for s.used[idx] {
			idx = (idx + 1) & s.mask
		}
		s.used[idx] = true
		s.keys[idx] = key
		s.count++
	}
}
