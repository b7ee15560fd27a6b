package daylog

import (
	"os"
	"path/filepath"
	"sync"
	"time"
)

// writer durably appends encoded lines to the date-partitioned file owned
// by one Log instance. It keeps a FIFO pending queue so buffers submitted
// by overlapping calls land on disk in submission order, and it minimizes
// handle churn by keeping the file open across appends until the idle
// timeout elapses. A writer must not share its target path with another
// writer; interleaving of two handles on one file is undefined.
type writer struct {
	root     string
	segments []string
	timeout  time.Duration
	now      func() time.Time

	// mu guards the pending queue and the flushing flag.
	mu       sync.Mutex
	pending  [][]byte
	flushing bool

	// fileMu guards the handle, its partition date, and the idle timer.
	// It is held across filesystem calls, serializing open/rotate/drain.
	fileMu     sync.Mutex
	file       *os.File
	fileDate   string
	closeTimer *time.Timer
	timerGen   uint64
}

func newWriter(root string, segments []string, timeout time.Duration) *writer {
	return &writer{
		root:     root,
		segments: segments,
		timeout:  timeout,
		now:      time.Now,
	}
}

// append enqueues line and flushes the queue. When a flush is already in
// flight the line is left for that flush to drain and append returns
// immediately; otherwise the calling goroutine drains the queue itself.
func (w *writer) append(line []byte) error {
	w.mu.Lock()
	w.pending = append(w.pending, line)
	if w.flushing {
		w.mu.Unlock()
		return nil
	}
	w.flushing = true
	w.mu.Unlock()

	return w.flushLoop()
}

// flushLoop drains until the queue stays empty, re-checking under the
// lock before giving up the flushing flag so a line enqueued during the
// final drain pass is not stranded. Errors stop the loop; queued buffers
// stay pending for the next append to retry.
func (w *writer) flushLoop() error {
	for {
		err := w.drain()

		w.mu.Lock()
		if err != nil || len(w.pending) == 0 {
			w.flushing = false
			w.mu.Unlock()
			return err
		}
		w.mu.Unlock()
	}
}

// drain writes queued buffers in submission order until the queue is
// empty. Buffers that were not attempted are re-queued on failure; only
// the buffer whose write failed is lost.
func (w *writer) drain() error {
	for {
		w.mu.Lock()
		if len(w.pending) == 0 {
			w.mu.Unlock()
			if w.timeout == 0 {
				w.fileMu.Lock()
				err := w.releaseLocked()
				w.fileMu.Unlock()
				return err
			}
			return nil
		}
		batch := w.pending
		w.pending = nil
		w.mu.Unlock()

		if err := w.flushBatch(batch); err != nil {
			return err
		}
	}
}

// flushBatch rotates the handle if needed, re-arms the idle timer, and
// writes one batch in order.
func (w *writer) flushBatch(batch [][]byte) error {
	w.fileMu.Lock()
	defer w.fileMu.Unlock()

	if err := w.rotateLocked(); err != nil {
		w.requeue(batch)
		return err
	}
	w.armTimerLocked()

	for i, buf := range batch {
		if _, err := w.file.Write(buf); err != nil {
			w.requeue(batch[i+1:])
			return fmtErrorf("failed to write to log file '%s': %w", w.file.Name(), err)
		}
	}
	return nil
}

// rotateLocked ensures the open handle belongs to today's partition,
// closing and reopening it when the wall-clock date has advanced since
// the handle was opened. The partition directory is created recursively
// on the first write of each date.
func (w *writer) rotateLocked() error {
	today := w.now().Format(partitionFormat)
	if w.file != nil && w.fileDate == today {
		return nil
	}
	if err := w.releaseLocked(); err != nil {
		// Stale handle close failure is not fatal for the new partition
		internalLog("warning - failed to close log file during rollover: %v\n", err)
	}

	path := w.partitionPath(today)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmtErrorf("failed to create log directory '%s': %w", filepath.Dir(path), err)
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmtErrorf("failed to open/create log file '%s': %w", path, err)
	}
	w.file = file
	w.fileDate = today
	return nil
}

// armTimerLocked debounces the idle-close callback: each write replaces
// any previously scheduled close. A zero timeout leaves no timer armed;
// drain closes the handle immediately instead.
func (w *writer) armTimerLocked() {
	if w.timeout <= 0 {
		return
	}
	if w.closeTimer != nil {
		w.closeTimer.Stop()
	}
	// The generation counter invalidates a callback that already fired
	// and is waiting on fileMu while a newer append re-arms the timer
	w.timerGen++
	gen := w.timerGen
	w.closeTimer = time.AfterFunc(w.timeout, func() {
		w.fileMu.Lock()
		defer w.fileMu.Unlock()
		if w.timerGen != gen {
			return
		}
		if err := w.releaseLocked(); err != nil {
			internalLog("warning - idle close failed: %v\n", err)
		}
	})
}

// requeue puts unwritten buffers back at the head of the pending queue.
func (w *writer) requeue(batch [][]byte) {
	if len(batch) == 0 {
		return
	}
	w.mu.Lock()
	w.pending = append(batch[:len(batch):len(batch)], w.pending...)
	w.mu.Unlock()
}

// close waits out any in-flight flush, force-flushes anything still
// queued, then releases the handle and cancels the idle timer. Without
// the wait a concurrent flush could reopen the handle right after close
// released it. Idempotent; a no-op with nothing open.
func (w *writer) close() error {
	var drainErr error
	for {
		w.mu.Lock()
		if w.flushing {
			w.mu.Unlock()
			time.Sleep(minWaitTime)
			continue
		}
		if len(w.pending) == 0 || drainErr != nil {
			w.mu.Unlock()
			break
		}
		w.flushing = true
		w.mu.Unlock()
		drainErr = w.flushLoop()
	}

	w.fileMu.Lock()
	defer w.fileMu.Unlock()
	return combineErrors(drainErr, w.releaseLocked())
}

// releaseLocked closes the handle and clears the date marker.
func (w *writer) releaseLocked() error {
	w.timerGen++
	if w.closeTimer != nil {
		w.closeTimer.Stop()
		w.closeTimer = nil
	}
	if w.file == nil {
		return nil
	}
	err := w.file.Close()
	w.file = nil
	w.fileDate = ""
	if err != nil {
		return fmtErrorf("failed to close log file: %w", err)
	}
	return nil
}

// hasOpenFile reports whether a handle is currently held.
func (w *writer) hasOpenFile() bool {
	w.fileMu.Lock()
	defer w.fileMu.Unlock()
	return w.file != nil
}

// partitionPath computes the file path inside the given date partition.
func (w *writer) partitionPath(date string) string {
	parts := make([]string, 0, len(w.segments)+2)
	parts = append(parts, w.root, date)
	parts = append(parts, w.segments...)
	return filepath.Join(parts...) + logExtension
}
