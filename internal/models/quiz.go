package models

import (
	"github.com/go-playground/validator/v10"
)

type Quiz struct {
	ID          int     `db:"quiz_id" json:"quizId"`
	LessonID    int     `db:"lesson_id" json:"lessonId" validate:"required"`
	IsGraded    *int    `db:"is_graded" json:"isGraded"`
	PassingMark *int    `db:"passing_mark" json:"passingMark"`
	NumOfQns    *int    `db:"num_of_qns" json:"numOfQns"`
	QuizLink    *string `db:"quiz_link" json:"quizLink" validate:"omitempty,max=999"`
	IsActive    string  `db:"is_active" json:"isActive" validate:"required,max=999"`
}

func (q *Quiz) Validate() error {
	validate := validator.New()
	return validate.Struct(q)
}
