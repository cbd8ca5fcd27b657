package authctx

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshot_DefaultIsEmpty(t *testing.T) {
	c := New()
	token, tenant := c.Snapshot()
	assert.Empty(t, token)
	assert.Empty(t, tenant)
}

func TestSet_ReplacesBothValues(t *testing.T) {
	c := New()
	c.Set("tok-1", "engineering")

	token, tenant := c.Snapshot()
	assert.Equal(t, "tok-1", token)
	assert.Equal(t, "engineering", tenant)

	c.Set("", "")
	token, tenant = c.Snapshot()
	assert.Empty(t, token)
	assert.Empty(t, tenant)
}

func TestSnapshot_NeverObservesMixedPair(t *testing.T) {
	c := New()
	c.Set("a", "a")

	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			if i%2 == 0 {
				c.Set("a", "a")
			} else {
				c.Set("b", "b")
			}
		}
		close(stop)
	}()

	for {
		token, tenant := c.Snapshot()
		assert.Equal(t, token, tenant)
		select {
		case <-stop:
			wg.Wait()
			return
		default:
		}
	}
}
