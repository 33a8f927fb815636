package source

import (
	"fmt"
	"path/filepath"
	"sort"

	"fortio.org/safecast"
)

// Registry owns every source buffer and assigns stable ids. It is the only
// component that creates Locs: each AddBuffer carves the next disjoint slice
// out of the global location space, so bases (and ends) grow strictly
// monotonically and "which buffer owns this location" is a binary search.
//
// All state is plain mutable data with no internal synchronization; callers
// that share a Registry across goroutines must serialize access themselves.
type Registry struct {
	buffers []*Buffer

	// lastFound caches the most recent successful lookup. Diagnostic
	// emission clusters lookups in one buffer, so this hits almost always.
	// It is a performance hint only, never part of the observable contract.
	lastFound BufferID

	includeDirs []string
	loader      Loader

	nextBase Loc
}

// NewRegistry returns an empty registry backed by the OS filesystem loader.
func NewRegistry() *Registry {
	return &Registry{
		loader:   osLoader{},
		nextBase: 1,
	}
}

// SetIncludeDirs configures the directories AddIncludeFile searches, in
// order, after the direct filename fails.
func (r *Registry) SetIncludeDirs(dirs []string) {
	r.includeDirs = dirs
}

// SetLoader replaces the filesystem collaborator. Tests use this to avoid
// touching disk.
func (r *Registry) SetLoader(l Loader) {
	r.loader = l
}

// AddBuffer registers content under the given name and returns the new id.
// includeLoc, when valid, records the location in an already registered
// buffer that this content was included from.
func (r *Registry) AddBuffer(name string, content []byte, includeLoc Loc) BufferID {
	n, err := safecast.Conv[uint32](len(r.buffers) + 1)
	if err != nil {
		panic(fmt.Errorf("buffer count overflow: %w", err))
	}
	id := BufferID(n)
	buf := &Buffer{
		id:         id,
		name:       name,
		data:       content,
		base:       r.nextBase,
		includeLoc: includeLoc,
	}
	// Leave a one-location gap so the end position of this buffer is never
	// the start of the next one.
	r.nextBase = buf.End() + 1
	r.buffers = append(r.buffers, buf)
	return id
}

// AddIncludeFile loads a file through the loader, trying the direct filename
// first and then each include directory in order, and registers it with the
// given include location. It returns 0 and the empty string when every
// candidate fails; otherwise the new id and the path that loaded.
func (r *Registry) AddIncludeFile(name string, includeLoc Loc) (BufferID, string) {
	resolved := name
	content, err := r.loader.Load(resolved)
	for _, dir := range r.includeDirs {
		if err == nil {
			break
		}
		resolved = filepath.Join(dir, name)
		content, err = r.loader.Load(resolved)
	}
	if err != nil {
		return 0, ""
	}
	return r.AddBuffer(resolved, content, includeLoc), resolved
}

// Get returns the buffer with the given id. The id must be valid.
func (r *Registry) Get(id BufferID) *Buffer {
	if id == 0 || int(id) > len(r.buffers) {
		panic(fmt.Errorf("source: no buffer with id %d", id))
	}
	return r.buffers[id-1]
}

// Len returns the number of registered buffers.
func (r *Registry) Len() int {
	return len(r.buffers)
}

// FindBufferContaining returns the id of the buffer whose [Start, End] range
// contains loc, or 0 if the location is unknown to this registry.
func (r *Registry) FindBufferContaining(loc Loc) BufferID {
	if r.lastFound != 0 && r.buffers[r.lastFound-1].Contains(loc) {
		return r.lastFound
	}

	// Smallest buffer end at or past loc; confirming against the start
	// keeps locations in the inter-buffer gaps unowned.
	i := sort.Search(len(r.buffers), func(i int) bool {
		return r.buffers[i].End() >= loc
	})
	if i < len(r.buffers) && loc >= r.buffers[i].base {
		r.lastFound = r.buffers[i].id
		return r.lastFound
	}
	return 0
}

// LineAndColumn resolves loc to its 1-based line and 1-based byte column.
// id names the owning buffer when the caller already knows it; pass 0 to
// resolve it here. The location must belong to a registered buffer.
func (r *Registry) LineAndColumn(loc Loc, id BufferID) (int, int) {
	if id == 0 {
		id = r.FindBufferContaining(loc)
		if id == 0 {
			panic(fmt.Errorf("source: location %d not in any registered buffer", loc))
		}
	}
	return r.Get(id).LineAndColumn(loc)
}
