package vars

import (
	"mealky-way/model"
	"sync/atomic"
	"unsafe"
)

// noticePtr holds a pointer to the current notice.
// This approach allows for lock-free reads with atomic updates.
var noticePtr unsafe.Pointer

// GetNotice returns the cached notice, or nil when the cache has not been filled yet.
func GetNotice() *model.Notice {
	ptr := atomic.LoadPointer(&noticePtr)
	if ptr == nil {
		return nil
	}
	return (*model.Notice)(ptr)
}

// SetNotice atomically replaces the cached notice with a copy of the input.
// Pass nil to clear the cache.
func SetNotice(notice *model.Notice) {
	var ptr unsafe.Pointer

	if notice != nil {
		noticeCopy := *notice
		ptr = unsafe.Pointer(&noticeCopy)
	}

	atomic.StorePointer(&noticePtr, ptr)
}

func init() {
	atomic.StorePointer(&noticePtr, nil)
}
