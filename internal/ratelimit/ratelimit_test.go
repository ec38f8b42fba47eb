package ratelimit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "ratelimit:batch:203.0.113.7", Key(TierBatch, "203.0.113.7"))
}

func TestDecision_Remaining(t *testing.T) {
	assert.Equal(t, int64(2), Decision{Count: 8, Limit: 10}.Remaining())
	assert.Equal(t, int64(0), Decision{Count: 10, Limit: 10}.Remaining())
	assert.Equal(t, int64(0), Decision{Count: 12, Limit: 10}.Remaining())
}
