package dto

import (
	"time"

	"github.com/google/uuid"

	model "vti_backend/internals/features/institute/students/model"
)

type CreateStudentRequest struct {
	StudentName         string     `json:"student_name" validate:"required,min=2,max=120"`
	StudentFatherName   string     `json:"student_father_name" validate:"required,min=2,max=120"`
	StudentMobile       string     `json:"student_mobile" validate:"required,min=10,max=15"`
	StudentTradeID      *uuid.UUID `json:"student_trade_id" validate:"omitempty"`
	StudentTradeName    string     `json:"student_trade_name" validate:"required,min=2,max=120"`
	StudentAcademicYear string     `json:"student_academic_year" validate:"required,min=4,max=9"`
	StudentAdmissionAt  *time.Time `json:"student_admission_at" validate:"omitempty"`
}

func (r CreateStudentRequest) ToModel() *model.StudentModel {
	return &model.StudentModel{
		StudentName:         r.StudentName,
		StudentFatherName:   r.StudentFatherName,
		StudentMobile:       r.StudentMobile,
		StudentTradeID:      r.StudentTradeID,
		StudentTradeName:    r.StudentTradeName,
		StudentAcademicYear: r.StudentAcademicYear,
		StudentAdmissionAt:  r.StudentAdmissionAt,
	}
}

type UpdateStudentRequest struct {
	StudentName         *string    `json:"student_name" validate:"omitempty,min=2,max=120"`
	StudentFatherName   *string    `json:"student_father_name" validate:"omitempty,min=2,max=120"`
	StudentMobile       *string    `json:"student_mobile" validate:"omitempty,min=10,max=15"`
	StudentTradeID      *uuid.UUID `json:"student_trade_id" validate:"omitempty"`
	StudentTradeName    *string    `json:"student_trade_name" validate:"omitempty,min=2,max=120"`
	StudentAcademicYear *string    `json:"student_academic_year" validate:"omitempty,min=4,max=9"`
	StudentAdmissionAt  *time.Time `json:"student_admission_at" validate:"omitempty"`
}

func (r UpdateStudentRequest) ToPatch() map[string]interface{} {
	patch := map[string]interface{}{}
	if r.StudentName != nil {
		patch["student_name"] = *r.StudentName
	}
	if r.StudentFatherName != nil {
		patch["student_father_name"] = *r.StudentFatherName
	}
	if r.StudentMobile != nil {
		patch["student_mobile"] = *r.StudentMobile
	}
	if r.StudentTradeID != nil {
		patch["student_trade_id"] = *r.StudentTradeID
	}
	if r.StudentTradeName != nil {
		patch["student_trade_name"] = *r.StudentTradeName
	}
	if r.StudentAcademicYear != nil {
		patch["student_academic_year"] = *r.StudentAcademicYear
	}
	if r.StudentAdmissionAt != nil {
		patch["student_admission_at"] = *r.StudentAdmissionAt
	}
	return patch
}
