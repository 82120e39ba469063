// Package iocache persists scoring runs across invocations.
package iocache

import (
	"sync"

	"github.com/lmarsden/fullback/internal/contract"
)

// RunStoreManager manages the RunStore instance.
type RunStoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	runs         contract.RunStore
}

var _ contract.StoreManager = &RunStoreManager{} // Compile-time check

// GetRunStore returns the RunStore.
func (mgr *RunStoreManager) GetRunStore() contract.RunStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.runs
}
