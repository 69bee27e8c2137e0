package cache

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"sync"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"

	"github.com/aledsdavies/picireny/testbuilder"
)

// record is the on-disk CBOR payload for one cached candidate.
type record struct {
	Candidate string
	Verdict   Verdict
}

// DiskCache is a content-addressed cache keyed by the BLAKE2b-256 hash of
// the candidate string, persisted as CBOR records under Dir. Working
// directory paths elsewhere in the engine are constructed deterministically
// (iter_N/level_L/op/id...) so concurrent DD workers never collide; this
// cache adds an in-memory layer in front of that for the common case of
// repeated identical candidates within one run.
type DiskCache struct {
	Dir string

	mu      sync.RWMutex
	mem     map[string]Verdict
	builder testbuilder.Func
}

// NewDiskCache returns a DiskCache rooted at dir. dir is created lazily on
// first Put.
func NewDiskCache(dir string) *DiskCache {
	return &DiskCache{Dir: dir, mem: make(map[string]Verdict)}
}

func (c *DiskCache) SetTestBuilder(b testbuilder.Func) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.builder = b
}

func (c *DiskCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mem = make(map[string]Verdict)
}

func (c *DiskCache) Get(candidate string) (Verdict, bool) {
	key := hashKey(candidate)

	c.mu.RLock()
	if v, ok := c.mem[key]; ok {
		c.mu.RUnlock()
		return v, true
	}
	c.mu.RUnlock()

	path := c.path(key)
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, false
	}
	var rec record
	if err := cbor.Unmarshal(data, &rec); err != nil {
		return 0, false
	}
	c.mu.Lock()
	c.mem[key] = rec.Verdict
	c.mu.Unlock()
	return rec.Verdict, true
}

func (c *DiskCache) Put(candidate string, v Verdict) {
	key := hashKey(candidate)

	c.mu.Lock()
	c.mem[key] = v
	c.mu.Unlock()

	if c.Dir == "" {
		return
	}
	data, err := cbor.Marshal(record{Candidate: candidate, Verdict: v})
	if err != nil {
		return
	}
	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return
	}
	_ = os.WriteFile(path, data, 0o644)
}

func (c *DiskCache) path(key string) string {
	return filepath.Join(c.Dir, key[:2], key+".cbor")
}

func hashKey(candidate string) string {
	sum := blake2b.Sum256([]byte(candidate))
	return hex.EncodeToString(sum[:])
}

var _ Cache = (*DiskCache)(nil)
