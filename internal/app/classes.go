package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/shrimpsizemoose/klassrum/internal/metrics"
	"github.com/shrimpsizemoose/klassrum/internal/models"
)

type NewClass struct {
	CourseID   int
	StartDate  string
	EndDate    string
	LearnerIDs models.Roster
	TrainerID  *int
	ClassSize  *int
}

// ClassListing pairs classes with their [courseName, trainerName] info rows.
type ClassListing struct {
	Classes []models.CourseClass `json:"classes"`
	Info    [][2]string          `json:"info"`
}

func (s *Service) CreateClass(ctx context.Context, in NewClass) (*models.CourseClass, error) {
	course, err := s.Store.GetCourse(ctx, in.CourseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}

	start, err := models.ParseDate(in.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: start date: %v", ErrInvalidInput, err)
	}
	end, err := models.ParseDate(in.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: end date: %v", ErrInvalidInput, err)
	}

	learners := in.LearnerIDs
	if learners == nil {
		learners = models.Roster{}
	}

	class := &models.CourseClass{
		CourseID:      in.CourseID,
		StartDateTime: start,
		EndDateTime:   end,
		LearnerIDs:    learners,
		TrainerID:     in.TrainerID,
		ClassSize:     in.ClassSize,
	}
	if err := s.Store.CreateClass(ctx, class); err != nil {
		return nil, err
	}

	metrics.ClassesCreated.Inc()
	return class, nil
}

func (s *Service) DeleteClass(ctx context.Context, id int) error {
	deleted, err := s.Store.DeleteClass(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrClassNotFound
	}
	return nil
}

func (s *Service) AddLearner(ctx context.Context, classID int, learner string) (*models.CourseClass, error) {
	return s.mutateClass(ctx, "add_learner", classID, func(c *models.CourseClass) error {
		next, err := s.Roster.Add(c.LearnerIDs, learner)
		if err != nil {
			return err
		}
		c.LearnerIDs = next
		return nil
	})
}

func (s *Service) AcceptLearner(ctx context.Context, classID int, learner string) (*models.CourseClass, error) {
	return s.mutateClass(ctx, "accept_learner", classID, func(c *models.CourseClass) error {
		next, err := s.Roster.Accept(c.LearnerIDs, learner)
		if err != nil {
			return err
		}
		c.LearnerIDs = next
		return nil
	})
}

func (s *Service) RemoveLearner(ctx context.Context, classID int, learner string) (*models.CourseClass, error) {
	return s.mutateClass(ctx, "remove_learner", classID, func(c *models.CourseClass) error {
		next, err := s.Roster.Remove(c.LearnerIDs, learner)
		if err != nil {
			return err
		}
		c.LearnerIDs = next
		return nil
	})
}

// SetTrainer overwrites the trainer; the id is not checked against users.
func (s *Service) SetTrainer(ctx context.Context, classID, trainerID int) (*models.CourseClass, error) {
	return s.mutateClass(ctx, "set_trainer", classID, func(c *models.CourseClass) error {
		c.TrainerID = &trainerID
		return nil
	})
}

func (s *Service) ListLearners(ctx context.Context, classID int) ([]string, error) {
	class, err := s.Store.GetClass(ctx, classID)
	if err != nil {
		return nil, err
	}
	if class == nil {
		return nil, ErrClassNotFound
	}
	return class.LearnerIDs.Learners(), nil
}

func (s *Service) ClassesByCourse(ctx context.Context, courseID int) (*ClassListing, error) {
	classes, err := s.Store.ListClassesByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	return s.listing(ctx, classes)
}

func (s *Service) ClassesByTrainer(ctx context.Context, trainerID int) (*ClassListing, error) {
	classes, err := s.Store.ListClassesByTrainer(ctx, trainerID)
	if err != nil {
		return nil, err
	}
	return s.listing(ctx, classes)
}

func (s *Service) listing(ctx context.Context, classes []models.CourseClass) (*ClassListing, error) {
	courseNames := make(map[int]string)
	trainerNames := make(map[int]string)

	info := make([][2]string, 0, len(classes))
	for _, class := range classes {
		courseName, ok := courseNames[class.CourseID]
		if !ok {
			course, err := s.Store.GetCourse(ctx, class.CourseID)
			if err != nil {
				return nil, err
			}
			if course != nil {
				courseName = course.Name
			}
			courseNames[class.CourseID] = courseName
		}

		var trainerName string
		if class.TrainerID != nil {
			name, ok := trainerNames[*class.TrainerID]
			if !ok {
				trainer, err := s.Store.GetUser(ctx, *class.TrainerID)
				if err != nil {
					return nil, err
				}
				if trainer != nil {
					name = trainer.Name
				}
				trainerNames[*class.TrainerID] = name
			}
			trainerName = name
		}

		info = append(info, [2]string{courseName, trainerName})
	}

	return &ClassListing{Classes: classes, Info: info}, nil
}

// mutateClass runs one locked read-modify-write cycle on a class row
func (s *Service) mutateClass(ctx context.Context, op string, classID int, mutate func(*models.CourseClass) error) (*models.CourseClass, error) {
	unlock, err := s.Locker.Lock(ctx, "class:"+strconv.Itoa(classID))
	if err != nil {
		metrics.RosterOperations.WithLabelValues(op, "error").Inc()
		return nil, fmt.Errorf("failed to lock class %d: %w", classID, err)
	}
	defer unlock()

	class, err := s.Store.UpdateClass(ctx, classID, mutate)
	if err == nil && class == nil {
		err = ErrClassNotFound
	}
	metrics.RosterOperations.WithLabelValues(op, outcome(err)).Inc()
	if err != nil {
		return nil, err
	}
	return class, nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrClassNotFound), errors.Is(err, ErrLearnerNotFound):
		return "not_found"
	case errors.Is(err, ErrLearnerExists):
		return "conflict"
	default:
		return "error"
	}
}
