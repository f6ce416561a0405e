package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

type Lesson struct {
	ID            int        `db:"lesson_id" json:"lessonId"`
	CourseClassID int        `db:"course_class_id" json:"courseClassId" validate:"required"`
	Name          string     `db:"lesson_name" json:"lessonName" validate:"required,max=250"`
	Content       StringList `db:"lesson_content" json:"lessonContent"`
	Links         StringList `db:"links" json:"links"`
}

func (l *Lesson) Validate() error {
	validate := validator.New()
	return validate.Struct(l)
}

// StringList is a nullable list of strings stored as a JSON array.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	data, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (l *StringList) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("cannot scan %T into string list", src)
	}

	var out []string
	if err := json.Unmarshal(data, &out); err != nil {
		return fmt.Errorf("stored string list is not a JSON array: %w", err)
	}
	*l = out
	return nil
}
