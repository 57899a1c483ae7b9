package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"alcyxob/exercise-tracker/internal/dateformat"
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/logfilter"
	"alcyxob/exercise-tracker/internal/repository"
)

// --- Error Definitions ---
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrValidationFailed = errors.New("validation failed")
)

// TrackerService owns the exercise-tracker business rules: input validation,
// date handling, and log querying on top of the user repository.
type TrackerService interface {
	CreateUser(ctx context.Context, username string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	// AddExercise validates and appends one entry to the user's log.
	// duration must be a positive integer; date is optional and defaults
	// to the current time.
	AddExercise(ctx context.Context, userID, description, duration, date string) (*domain.User, *domain.Entry, error)
	// GetLog fetches the user's log filtered by the optional from/to/limit
	// query parameters. from and to must parse when present; limit is
	// lenient (non-numeric or non-positive means no limit).
	GetLog(ctx context.Context, userID, from, to, limit string) (*domain.User, logfilter.Result, error)
}

// trackerService implements the TrackerService interface.
type trackerService struct {
	userRepo repository.UserRepository
	now      func() time.Time
}

// NewTrackerService creates a new instance of trackerService.
func NewTrackerService(userRepo repository.UserRepository) TrackerService {
	return &trackerService{
		userRepo: userRepo,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// CreateUser handles the creation of a new user with an empty log.
func (s *trackerService) CreateUser(ctx context.Context, username string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrValidationFailed)
	}

	user := &domain.User{
		Username: username,
		Log:      []domain.Entry{},
	}

	userID, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = userID

	// Fetch again so store-populated fields come back as persisted.
	return s.userRepo.GetByID(ctx, userID)
}

// ListUsers retrieves all users (id and username only).
func (s *trackerService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.List(ctx)
}

// AddExercise appends a validated entry to the user's log and returns the
// owning user together with the entry as persisted.
func (s *trackerService) AddExercise(ctx context.Context, userID, description, duration, date string) (*domain.User, *domain.Entry, error) {
	id, err := parseUserID(userID)
	if err != nil {
		return nil, nil, err
	}

	description = strings.TrimSpace(description)
	if description == "" {
		return nil, nil, fmt.Errorf("%w: description is required", ErrValidationFailed)
	}

	minutes, err := strconv.Atoi(strings.TrimSpace(duration))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: duration must be a number", ErrValidationFailed)
	}
	if minutes <= 0 {
		return nil, nil, fmt.Errorf("%w: duration must be positive", ErrValidationFailed)
	}

	when := s.now()
	if strings.TrimSpace(date) != "" {
		when, err = dateformat.Parse(strings.TrimSpace(date))
		if err != nil {
			return nil, nil, err
		}
	}

	entry := &domain.Entry{
		Description: description,
		Duration:    minutes,
		Date:        when,
	}

	if err := s.userRepo.AppendEntry(ctx, id, entry); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, err
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, err
	}

	return user, entry, nil
}

// GetLog fetches a user's log and applies the range/limit filter.
// An unknown user is an error; a user with an empty log is not.
func (s *trackerService) GetLog(ctx context.Context, userID, from, to, limit string) (*domain.User, logfilter.Result, error) {
	id, err := parseUserID(userID)
	if err != nil {
		return nil, logfilter.Result{}, err
	}

	opts := logfilter.Options{}

	if strings.TrimSpace(from) != "" {
		t, err := dateformat.Parse(strings.TrimSpace(from))
		if err != nil {
			return nil, logfilter.Result{}, err
		}
		opts.From = &t
	}
	if strings.TrimSpace(to) != "" {
		t, err := dateformat.Parse(strings.TrimSpace(to))
		if err != nil {
			return nil, logfilter.Result{}, err
		}
		opts.To = &t
	}
	// limit is lenient: anything that is not a positive integer means
	// "return everything".
	if n, err := strconv.Atoi(strings.TrimSpace(limit)); err == nil && n > 0 {
		opts.Limit = n
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, logfilter.Result{}, ErrUserNotFound
		}
		return nil, logfilter.Result{}, err
	}

	return user, logfilter.Apply(user.Log, opts), nil
}

func parseUserID(raw string) (primitive.ObjectID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return primitive.NilObjectID, fmt.Errorf("%w: userId is required", ErrValidationFailed)
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: userId is not a valid id", ErrValidationFailed)
	}
	return id, nil
}
