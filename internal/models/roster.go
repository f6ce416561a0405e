package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
)

// Status is the membership state of a learner inside a class roster.
type Status int

const (
	Pending  Status = 0
	Accepted Status = 1
)

func (s Status) Valid() bool {
	return s == Pending || s == Accepted
}

func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Accepted:
		return "accepted"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Roster maps learner ids to their membership status.
// It is stored as a canonical JSON object, e.g. {"a":1,"b":0}.
type Roster map[string]Status

func (r Roster) Has(learner string) bool {
	_, ok := r[learner]
	return ok
}

// Learners returns roster keys in ascending order.
func (r Roster) Learners() []string {
	learners := make([]string, 0, len(r))
	for id := range r {
		learners = append(learners, id)
	}
	sort.Strings(learners)
	return learners
}

func (r Roster) Clone() Roster {
	out := make(Roster, len(r))
	for id, status := range r {
		out[id] = status
	}
	return out
}

func (r Roster) MarshalJSON() ([]byte, error) {
	raw := make(map[string]int, len(r))
	for id, status := range r {
		raw[id] = int(status)
	}
	return json.Marshal(raw)
}

func (r *Roster) UnmarshalJSON(data []byte) error {
	var raw map[string]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("roster must be an object of learner id to status: %w", err)
	}

	out := make(Roster, len(raw))
	for id, v := range raw {
		status := Status(v)
		if !status.Valid() {
			return fmt.Errorf("learner %q has invalid status %d", id, v)
		}
		out[id] = status
	}
	*r = out
	return nil
}

func (r Roster) Value() (driver.Value, error) {
	data, err := r.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (r *Roster) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*r = Roster{}
		return nil
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("cannot scan %T into roster", src)
	}

	if len(data) == 0 {
		*r = Roster{}
		return nil
	}
	return r.UnmarshalJSON(data)
}
