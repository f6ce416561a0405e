package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const (
	// DD/MM/YYYY, single digit day and month accepted
	inputDateLayout = "2/1/2006"
	// same rendering as http.TimeFormat
	outputDateLayout = "Mon, 02 Jan 2006 15:04:05 GMT"
)

var storedDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

type CourseClass struct {
	ID            int      `db:"course_class_id" json:"courseClassId"`
	CourseID      int      `db:"course_id" json:"courseId"`
	StartDateTime NullDate `db:"start_date_time" json:"startDateTime"`
	EndDateTime   NullDate `db:"end_date_time" json:"endDateTime"`
	LearnerIDs    Roster   `db:"learner_ids" json:"learnerIds"`
	TrainerID     *int     `db:"trainer_id" json:"trainerId"`
	ClassSize     *int     `db:"class_size" json:"classSize"`
}

// NullDate is an optional calendar date of a class.
type NullDate struct {
	Time  time.Time
	Valid bool
}

func NewDate(year int, month time.Month, day int) NullDate {
	return NullDate{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), Valid: true}
}

// ParseDate parses DD/MM/YYYY. An empty string yields an invalid (null) date.
func ParseDate(s string) (NullDate, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return NullDate{}, nil
	}
	t, err := time.Parse(inputDateLayout, s)
	if err != nil {
		return NullDate{}, fmt.Errorf("date %q is not in DD/MM/YYYY format", s)
	}
	return NullDate{Time: t, Valid: true}, nil
}

func (d NullDate) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Time.UTC().Format(outputDateLayout) + `"`), nil
}

func (d NullDate) Value() (driver.Value, error) {
	if !d.Valid {
		return nil, nil
	}
	return d.Time.UTC(), nil
}

func (d *NullDate) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = NullDate{}
		return nil
	case time.Time:
		*d = NullDate{Time: v.UTC(), Valid: true}
		return nil
	case []byte:
		return d.parseStored(string(v))
	case string:
		return d.parseStored(v)
	default:
		return fmt.Errorf("cannot scan %T into date", src)
	}
}

func (d *NullDate) parseStored(s string) error {
	for _, layout := range storedDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			*d = NullDate{Time: t.UTC(), Valid: true}
			return nil
		}
	}
	return fmt.Errorf("unrecognized stored date %q", s)
}
