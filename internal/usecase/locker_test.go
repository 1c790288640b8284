package usecase

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameLocker(t *testing.T) {
	t.Run("Serialises the same game", func(t *testing.T) {
		// Given: many goroutines updating one counter under the same id
		locker := newGameLocker()
		counter := 0

		var wg sync.WaitGroup
		for i := 0; i < 100; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()

				unlock := locker.Lock("123")
				defer unlock()

				counter++
			}()
		}

		// When: all of them finished
		wg.Wait()

		// Then: no update was lost and no lock is left behind
		assert.Equal(t, 100, counter)
		assert.Zero(t, locker.size())
	})

	t.Run("Different games do not block each other", func(t *testing.T) {
		locker := newGameLocker()

		unlockFirst := locker.Lock("1")
		unlockSecond := locker.Lock("2")

		assert.Equal(t, 2, locker.size())

		unlockFirst()
		unlockSecond()

		assert.Zero(t, locker.size())
	})
}
