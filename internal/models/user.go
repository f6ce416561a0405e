package models

import (
	"github.com/go-playground/validator/v10"
)

const DepartmentEngineer = "Engineer"

type User struct {
	ID         int    `db:"user_id" json:"userId"`
	Name       string `db:"name" json:"name" validate:"required,max=100"`
	Subrole    string `db:"subrole" json:"subrole" validate:"max=100"`
	Department string `db:"department" json:"department" validate:"max=100"`
	Email      string `db:"email" json:"email" validate:"max=100"`
}

func (u *User) Validate() error {
	validate := validator.New()
	return validate.Struct(u)
}
