package models

import (
	"github.com/go-playground/validator/v10"
)

type Course struct {
	ID            int    `db:"course_id" json:"courseId"`
	Name          string `db:"course_name" json:"courseName" validate:"required,max=250"`
	Desc          string `db:"course_desc" json:"courseDesc" validate:"max=999"`
	Prerequisites string `db:"prerequisites" json:"prerequisites" validate:"max=999"`
	IsActive      int    `db:"is_active" json:"isActive"`
}

func (c *Course) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}
