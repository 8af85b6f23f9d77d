package redisstore

import (
	"math/rand"
	"sync"
	"time"
)

const idChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// lockedSource is a rand.Source safe for concurrent use by multiple goroutines
type lockedSource struct {
	lock sync.Mutex
	src  rand.Source
}

// ids generates the candidate tree IDs
var ids = rand.New(&lockedSource{src: rand.NewSource(time.Now().UnixNano())})

func (ls *lockedSource) Int63() int64 {
	ls.lock.Lock()
	defer ls.lock.Unlock()
	return ls.src.Int63()
}

func (ls *lockedSource) Seed(seed int64) {
	ls.lock.Lock()
	defer ls.lock.Unlock()
	ls.src.Seed(seed)
}

func newID(n int) string {
	id := make([]byte, n)
	for i := range id {
		id[i] = idChars[ids.Intn(len(idChars))]
	}
	return string(id)
}
