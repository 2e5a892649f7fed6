package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/exertrack/exertrack/internal/cache"
	"github.com/exertrack/exertrack/internal/metrics"
	"github.com/exertrack/exertrack/internal/model"
	"github.com/exertrack/exertrack/internal/repository"
)

// LogStore is the subset of the repository the log service depends on.
type LogStore interface {
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	AppendExercise(ctx context.Context, exercise *model.Exercise) error
	ListExercises(ctx context.Context, userID string) ([]model.Exercise, error)
}

// LogCache caches full per-user log views. Implemented by *cache.Cache;
// a nil LogCache disables caching entirely.
type LogCache interface {
	GetUserLog(ctx context.Context, userID string) (*cache.CachedLog, error)
	SetUserLog(ctx context.Context, userID string, log *cache.CachedLog) error
	InvalidateUserLog(ctx context.Context, userID string) error
	IsNegativelyCached(ctx context.Context, userID string) (bool, error)
	SetNegativeCache(ctx context.Context, userID string) error
}

// LogService appends exercises to user logs and answers log queries.
type LogService struct {
	store   LogStore
	cache   LogCache
	metrics metrics.Recorder
}

// NewLogService creates a new LogService. cache may be nil.
func NewLogService(store LogStore, logCache LogCache, recorder metrics.Recorder) *LogService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &LogService{
		store:   store,
		cache:   logCache,
		metrics: recorder,
	}
}

// ExerciseView is a newly appended exercise merged with its owner.
type ExerciseView struct {
	UserID   string
	Username string
	Exercise model.Exercise
}

// LogView is the result of a log query. Count always equals len(Log):
// the number of entries in this response, not the total log size.
type LogView struct {
	UserID   string
	Username string
	Count    int
	Log      []model.Exercise
}

// AddExercise validates and appends one entry to the identified user's log.
// An empty dateRaw means today. Duration has no range constraint beyond
// parsing as an integer.
func (s *LogService) AddExercise(ctx context.Context, userID, description, durationRaw, dateRaw string) (*ExerciseView, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, ErrInvalidID
	}

	duration, err := strconv.Atoi(strings.TrimSpace(durationRaw))
	if err != nil {
		return nil, ErrInvalidDuration
	}

	date := today()
	if strings.TrimSpace(dateRaw) != "" {
		date, err = parseCalendarDate(dateRaw)
		if err != nil {
			return nil, ErrInvalidDate
		}
	}

	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, storeError(err)
	}

	exercise := model.Exercise{
		ID:          ulid.Make().String(),
		UserID:      user.ID,
		Description: description,
		Duration:    duration,
		Date:        date,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.store.AppendExercise(ctx, &exercise); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, storeError(err)
	}

	s.metrics.IncExerciseAdded()

	// Drop the cached view so the next query sees the new entry.
	if s.cache != nil {
		_ = s.cache.InvalidateUserLog(ctx, user.ID)
	}

	return &ExerciseView{
		UserID:   user.ID,
		Username: user.Username,
		Exercise: exercise,
	}, nil
}

// GetLog answers a log query. Each optional parameter is validated
// independently; a malformed value degrades to "absent" rather than
// failing the request. With no valid parameter the full log is returned
// in stored order; otherwise the pure pipeline (sort ascending by date,
// inclusive range filter, first-N limit) runs over the in-memory log.
func (s *LogService) GetLog(ctx context.Context, userID, fromRaw, toRaw, limitRaw string) (*LogView, error) {
	start := time.Now()
	defer func() {
		s.metrics.ObserveLogQueryDuration(time.Since(start))
	}()
	s.metrics.IncLogQuery()

	if _, err := uuid.Parse(userID); err != nil {
		return nil, ErrInvalidID
	}

	q := parseLogQuery(fromRaw, toRaw, limitRaw)

	user, entries, err := s.loadLog(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := applyLogQuery(entries, q)

	return &LogView{
		UserID:   user.ID,
		Username: user.Username,
		Count:    len(result),
		Log:      result,
	}, nil
}

// loadLog fetches a user and their full log, cache-first. Unknown users
// are negatively cached so repeated probes skip the database.
func (s *LogService) loadLog(ctx context.Context, userID string) (*model.User, []model.Exercise, error) {
	if s.cache != nil {
		cached, err := s.cache.GetUserLog(ctx, userID)
		if err == nil {
			s.metrics.IncLogCacheHit()
			return &cached.User, cached.Entries, nil
		}

		if errors.Is(err, cache.ErrCacheMiss) {
			s.metrics.IncLogCacheMiss()
			if negative, _ := s.cache.IsNegativelyCached(ctx, userID); negative {
				return nil, nil, ErrUserNotFound
			}
		}
		// A Redis error falls through to the database.
	}

	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			if s.cache != nil {
				_ = s.cache.SetNegativeCache(ctx, userID)
			}
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, storeError(err)
	}

	entries, err := s.store.ListExercises(ctx, user.ID)
	if err != nil {
		return nil, nil, storeError(err)
	}

	if s.cache != nil {
		_ = s.cache.SetUserLog(ctx, userID, &cache.CachedLog{
			User:    *user,
			Entries: entries,
		})
	}

	return user, entries, nil
}
