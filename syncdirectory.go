package phonedirectory

import (
	"github.com/gostonefire/phonedirectory/hashtable"
	"sync"
)

// SyncDirectory - Wraps a Directory with one exclusive lock taken around every operation, for use from
// several goroutines. The wrapped Directory must not be used directly while wrapped.
type SyncDirectory struct {
	mu        sync.Mutex
	directory *Directory
}

// NewSyncDirectory - Returns a pointer to a new SyncDirectory wrapping directory
func NewSyncDirectory(directory *Directory) *SyncDirectory {
	return &SyncDirectory{directory: directory}
}

// Insert - See Directory.Insert
func (S *SyncDirectory) Insert(lastName, firstName, fixedPhone, mobilePhone, email string) error {
	S.mu.Lock()
	defer S.mu.Unlock()
	return S.directory.Insert(lastName, firstName, fixedPhone, mobilePhone, email)
}

// BulkLoad - See Directory.BulkLoad, the lock is held for the whole load
func (S *SyncDirectory) BulkLoad(records []Record, policy LoadPolicy) (int, error) {
	S.mu.Lock()
	defer S.mu.Unlock()
	return S.directory.BulkLoad(records, policy)
}

// FindByName - See Directory.FindByName
func (S *SyncDirectory) FindByName(lastName, firstName string) (Record, error) {
	S.mu.Lock()
	defer S.mu.Unlock()
	return S.directory.FindByName(lastName, firstName)
}

// FindByPhone - See Directory.FindByPhone
func (S *SyncDirectory) FindByPhone(fixedPhone string) (Record, error) {
	S.mu.Lock()
	defer S.mu.Unlock()
	return S.directory.FindByPhone(fixedPhone)
}

// Count - See Directory.Count
func (S *SyncDirectory) Count() int {
	S.mu.Lock()
	defer S.mu.Unlock()
	return S.directory.Count()
}

// CollisionStats - See Directory.CollisionStats
func (S *SyncDirectory) CollisionStats(index Index) (hashtable.Statistics, error) {
	S.mu.Lock()
	defer S.mu.Unlock()
	return S.directory.CollisionStats(index)
}

// ForEachRecord - See Directory.ForEachRecord, the lock is held while visiting so visitor must not call
// back into the SyncDirectory
func (S *SyncDirectory) ForEachRecord(visitor func(record Record) error) error {
	S.mu.Lock()
	defer S.mu.Unlock()
	return S.directory.ForEachRecord(visitor)
}
