// internal/roster/roster.go
package roster

import (
	"errors"

	"github.com/shrimpsizemoose/klassrum/internal/models"
)

var (
	ErrAlreadyEnrolled = errors.New("learner is already in this class")
	ErrNotEnrolled     = errors.New("learner is not in this class")
	ErrEmptyLearnerID  = errors.New("learner id is empty")
)

// Policy applies membership transitions to a roster. Every transition works
// on a copy, so on error the caller's roster is untouched.
type Policy struct {
	// StrictAccept refuses to accept learners that never asked to join.
	StrictAccept bool `toml:"strict_accept" env:"STRICT_ACCEPT"`
}

// Add puts a new learner into the roster as pending.
func (p Policy) Add(r models.Roster, learner string) (models.Roster, error) {
	if learner == "" {
		return r, ErrEmptyLearnerID
	}
	if r.Has(learner) {
		return r, ErrAlreadyEnrolled
	}

	out := r.Clone()
	out[learner] = models.Pending
	return out, nil
}

// Accept marks a learner as accepted. Unless StrictAccept is set, a learner
// that is not in the roster yet is added straight away as accepted.
func (p Policy) Accept(r models.Roster, learner string) (models.Roster, error) {
	if learner == "" {
		return r, ErrEmptyLearnerID
	}
	if p.StrictAccept && !r.Has(learner) {
		return r, ErrNotEnrolled
	}

	out := r.Clone()
	out[learner] = models.Accepted
	return out, nil
}

// Remove drops a learner from the roster entirely.
func (p Policy) Remove(r models.Roster, learner string) (models.Roster, error) {
	if learner == "" {
		return r, ErrEmptyLearnerID
	}
	if !r.Has(learner) {
		return r, ErrNotEnrolled
	}

	out := r.Clone()
	delete(out, learner)
	return out, nil
}
