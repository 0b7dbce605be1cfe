package bucket

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const (
	testLimit  = 10
	testWindow = time.Minute
)

type InMemoryBucketStoreSuite struct {
	suite.Suite
	store *InMemoryBucketStore
	ctx   context.Context
}

func TestInMemoryBucketStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryBucketStoreSuite))
}

func (s *InMemoryBucketStoreSuite) SetupTest() {
	s.store = NewInMemoryBucketStore()
	s.ctx = context.Background()
}

func (s *InMemoryBucketStoreSuite) TestAllow() {
	s.Run("first request allowed", func() {
		result, err := s.store.Allow(s.ctx, "test:key:first", testLimit, testWindow)
		s.Require().NoError(err)
		s.True(result.Allowed)
		s.Equal(testLimit, result.Limit)
		s.Equal(testLimit-1, result.Remaining)
	})

	s.Run("requests up to limit allowed", func() {
		var last bool
		for range testLimit {
			result, err := s.store.Allow(s.ctx, "test:key:limit", testLimit, testWindow)
			s.Require().NoError(err)
			last = result.Allowed
		}
		s.True(last)
	})

	s.Run("request over limit denied with retry hint", func() {
		for range testLimit {
			_, err := s.store.Allow(s.ctx, "test:key:over", testLimit, testWindow)
			s.Require().NoError(err)
		}
		result, err := s.store.Allow(s.ctx, "test:key:over", testLimit, testWindow)
		s.Require().NoError(err)
		s.False(result.Allowed)
		s.Equal(0, result.Remaining)
		s.GreaterOrEqual(result.RetryAfter, 1)
	})

	s.Run("after window expires requests allowed", func() {
		_, err := s.store.Allow(s.ctx, "test:key:expiry", testLimit, testWindow)
		s.Require().NoError(err)

		s.store.mu.Lock()
		if sw, exists := s.store.buckets["test:key:expiry"]; exists {
			sw.timestamps = nil
		}
		s.store.mu.Unlock()

		result, err := s.store.Allow(s.ctx, "test:key:expiry", testLimit, testWindow)
		s.Require().NoError(err)
		s.True(result.Allowed)
		s.Equal(testLimit-1, result.Remaining)
	})
}

func (s *InMemoryBucketStoreSuite) TestReset() {
	for range testLimit {
		_, err := s.store.Allow(s.ctx, "test:key:reset", testLimit, testWindow)
		s.Require().NoError(err)
	}

	s.Require().NoError(s.store.Reset(s.ctx, "test:key:reset"))

	result, err := s.store.Allow(s.ctx, "test:key:reset", testLimit, testWindow)
	s.Require().NoError(err)
	s.True(result.Allowed)
	s.Equal(testLimit-1, result.Remaining)
}

func (s *InMemoryBucketStoreSuite) TestCurrentCount() {
	for range 3 {
		_, err := s.store.Allow(s.ctx, "test:key:count", testLimit, testWindow)
		s.Require().NoError(err)
	}

	count, err := s.store.CurrentCount(s.ctx, "test:key:count")
	s.Require().NoError(err)
	s.Equal(3, count)

	count, err = s.store.CurrentCount(s.ctx, "test:key:unknown")
	s.Require().NoError(err)
	s.Equal(0, count)
}

func (s *InMemoryBucketStoreSuite) TestConcurrent() {
	limit := 100
	key := "test:key:concurrent"
	var wg sync.WaitGroup
	var mu sync.Mutex
	allowedCount := 0

	for range 200 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := s.store.Allow(s.ctx, key, limit, testWindow)
			s.Require().NoError(err)
			if result.Allowed {
				mu.Lock()
				allowedCount++
				mu.Unlock()
			}
		}()
	}

	wg.Wait()
	s.Equal(limit, allowedCount)
}
