package service

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var mockHashRe = regexp.MustCompile(`^0x[0-9a-f]{16}\.\.\.$`)

func TestRandomHashSource_Format(t *testing.T) {
	h := NewRandomHashSource()
	for i := 0; i < 20; i++ {
		assert.Regexp(t, mockHashRe, h.TxHash())
	}
}

func TestRandomHashSource_FreshValues(t *testing.T) {
	h := NewRandomHashSource()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		seen[h.TxHash()] = true
	}
	assert.Greater(t, len(seen), 90)
}

func TestSeededHashSource_Reproducible(t *testing.T) {
	a := NewSeededHashSource(1, 2)
	b := NewSeededHashSource(1, 2)
	for i := 0; i < 5; i++ {
		assert.Equal(t, a.TxHash(), b.TxHash())
	}

	c := NewSeededHashSource(3, 4)
	assert.NotEqual(t, NewSeededHashSource(1, 2).TxHash(), c.TxHash())
}

func TestSleepDelayer_Waits(t *testing.T) {
	start := time.Now()
	SleepDelayer{}.Delay(20 * time.Millisecond)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}
