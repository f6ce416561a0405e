package app

import (
	"errors"
	"fmt"

	"github.com/shrimpsizemoose/klassrum/internal/lock"
	"github.com/shrimpsizemoose/klassrum/internal/roster"
	"github.com/shrimpsizemoose/klassrum/internal/store"
)

var (
	ErrClassNotFound   = errors.New("class not found")
	ErrCourseNotFound  = errors.New("course not found")
	ErrLessonNotFound  = errors.New("lesson not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrQuizNotFound    = errors.New("quiz not found")
	ErrLearnerNotFound = roster.ErrNotEnrolled
	ErrLearnerExists   = roster.ErrAlreadyEnrolled
	ErrDuplicateName   = errors.New("name already taken")
	ErrInvalidInput    = errors.New("invalid input")
)

type Service struct {
	Config *Config
	Store  store.LMSStore
	Locker lock.Locker
	Roster roster.Policy
}

func NewService(configPath string) (*Service, error) {
	config, err := LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	store, err := NewStore(config.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to init store: %w", err)
	}

	locker, err := NewLocker(config)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to init locker: %w", err)
	}

	return New(config, store, locker), nil
}

func New(config *Config, store store.LMSStore, locker lock.Locker) *Service {
	return &Service{
		Config: config,
		Store:  store,
		Locker: locker,
		Roster: config.Roster,
	}
}

func (s *Service) Close() error {
	var errs []error

	if err := s.Store.Close(); err != nil {
		errs = append(errs, fmt.Errorf("store: %w", err))
	}
	if err := s.Locker.Close(); err != nil {
		errs = append(errs, fmt.Errorf("locker: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors while closing: %v", errs)
	}
	return nil
}
