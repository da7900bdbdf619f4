package filelock

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestFilelockContention(t *testing.T) {
	target := filepath.Join(t.TempDir(), "passwords.txt")

	lock, err := Lock(target)
	if err != nil {
		t.Fatal(err)
	}
	if _, err = os.Stat(target + ".lck"); err != nil {
		t.Fatal("lock file was not created:", err)
	}

	_, err = Lock(target)
	if err != ErrLocked {
		t.Fatal("expected Lock call on existing lockfile to fail, got", err)
	}

	err = lock.Unlock()
	if err != nil {
		t.Fatal(err)
	}

	lock, err = Lock(target)
	if err != nil {
		t.Fatal(err)
	}

	err = lock.Unlock()
	if err != nil {
		t.Fatal(err)
	}
}

func TestFilelockConcurrent(t *testing.T) {
	target := filepath.Join(t.TempDir(), "passwords.txt")

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		acquired int
	)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := Lock(target); err == nil {
				mu.Lock()
				acquired++
				mu.Unlock()
			} else if err != ErrLocked {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	if acquired != 1 {
		t.Fatal("expected exactly one goroutine to acquire the lock, got", acquired)
	}
}

func TestFilelockMissingDir(t *testing.T) {
	_, err := Lock(filepath.Join(t.TempDir(), "nope", "passwords.txt"))
	if err == nil || err == ErrLocked {
		t.Fatal("expected Lock in a missing directory to fail, got", err)
	}
}
