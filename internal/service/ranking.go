// Package service provides application services for the bot.
// Requirements: 9.1, 9.2 - Best solve time ranking
package service

import (
	"sort"
	"sync"
	"time"
)

// BestTime is one player's fastest recorded solve.
type BestTime struct {
	UserID     int64
	Username   string
	Elapsed    time.Duration
	AchievedAt time.Time
}

// RankingService keeps an in-memory leaderboard of fastest solves.
// Only each player's personal best is retained. The board does not
// survive a restart on purpose.
type RankingService struct {
	best map[int64]BestTime
	mu   sync.RWMutex
}

// NewRankingService creates a new RankingService instance.
func NewRankingService() *RankingService {
	return &RankingService{
		best: make(map[int64]BestTime),
	}
}

// Record stores a completed solve, keeping it only if it beats the
// player's previous best. Returns true if a new personal best was set.
// Requirements: 9.1
func (s *RankingService) Record(userID int64, username string, elapsed time.Duration) bool {
	if elapsed < 0 {
		elapsed = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.best[userID]
	if ok && prev.Elapsed <= elapsed {
		// Keep the username fresh even when the time doesn't improve.
		prev.Username = username
		s.best[userID] = prev
		return false
	}

	s.best[userID] = BestTime{
		UserID:     userID,
		Username:   username,
		Elapsed:    elapsed,
		AchievedAt: time.Now(),
	}
	return true
}

// Best returns up to limit entries, fastest first.
// Requirements: 9.2
func (s *RankingService) Best(limit int) []BestTime {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]BestTime, 0, len(s.best))
	for _, bt := range s.best {
		entries = append(entries, bt)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Elapsed != entries[j].Elapsed {
			return entries[i].Elapsed < entries[j].Elapsed
		}
		return entries[i].AchievedAt.Before(entries[j].AchievedAt)
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// PersonalBest returns the player's best time, if any.
func (s *RankingService) PersonalBest(userID int64) (BestTime, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bt, ok := s.best[userID]
	return bt, ok
}
