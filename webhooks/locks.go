package webhooks

import "sync"

// keyedMutex serializes work per appointment id so a duplicate create retry
// racing a reschedule for the same record cannot interleave their
// read-then-write sequences. Locks are striped; unrelated ids contend only
// on a hash collision, never on a global lock.
type keyedMutex struct {
	stripes []sync.Mutex
}

func newKeyedMutex(n int) *keyedMutex {
	if n <= 0 {
		n = 64
	}
	return &keyedMutex{stripes: make([]sync.Mutex, n)}
}

func (m *keyedMutex) lock(key string) func() {
	s := &m.stripes[fnv32(key)%uint32(len(m.stripes))]
	s.Lock()
	return s.Unlock
}

func fnv32(s string) uint32 {
	h := uint32(2166136261)
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= 16777619
	}
	return h
}
