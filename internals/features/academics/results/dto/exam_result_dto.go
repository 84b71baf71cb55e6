package dto

import (
	"github.com/google/uuid"

	model "vti_backend/internals/features/academics/results/model"
)

type CreateExamResultRequest struct {
	ExamResultTitle        string     `json:"exam_result_title" validate:"required,min=2,max=200"`
	ExamResultExamName     string     `json:"exam_result_exam_name" validate:"required,min=2,max=120"`
	ExamResultTradeID      *uuid.UUID `json:"exam_result_trade_id" validate:"omitempty"`
	ExamResultTradeName    string     `json:"exam_result_trade_name" validate:"required,min=2,max=120"`
	ExamResultAcademicYear string     `json:"exam_result_academic_year" validate:"required,min=4,max=9"`
	ExamResultDocumentURL  string     `json:"exam_result_document_url" validate:"required,url,max=500"`
}

func (r CreateExamResultRequest) ToModel() *model.ExamResultModel {
	return &model.ExamResultModel{
		ExamResultTitle:        r.ExamResultTitle,
		ExamResultExamName:     r.ExamResultExamName,
		ExamResultTradeID:      r.ExamResultTradeID,
		ExamResultTradeName:    r.ExamResultTradeName,
		ExamResultAcademicYear: r.ExamResultAcademicYear,
		ExamResultDocumentURL:  r.ExamResultDocumentURL,
	}
}

type UpdateExamResultRequest struct {
	ExamResultTitle        *string    `json:"exam_result_title" validate:"omitempty,min=2,max=200"`
	ExamResultExamName     *string    `json:"exam_result_exam_name" validate:"omitempty,min=2,max=120"`
	ExamResultTradeID      *uuid.UUID `json:"exam_result_trade_id" validate:"omitempty"`
	ExamResultTradeName    *string    `json:"exam_result_trade_name" validate:"omitempty,min=2,max=120"`
	ExamResultAcademicYear *string    `json:"exam_result_academic_year" validate:"omitempty,min=4,max=9"`
	ExamResultDocumentURL  *string    `json:"exam_result_document_url" validate:"omitempty,url,max=500"`
}

func (r UpdateExamResultRequest) ToPatch() map[string]interface{} {
	patch := map[string]interface{}{}
	if r.ExamResultTitle != nil {
		patch["exam_result_title"] = *r.ExamResultTitle
	}
	if r.ExamResultExamName != nil {
		patch["exam_result_exam_name"] = *r.ExamResultExamName
	}
	if r.ExamResultTradeID != nil {
		patch["exam_result_trade_id"] = *r.ExamResultTradeID
	}
	if r.ExamResultTradeName != nil {
		patch["exam_result_trade_name"] = *r.ExamResultTradeName
	}
	if r.ExamResultAcademicYear != nil {
		patch["exam_result_academic_year"] = *r.ExamResultAcademicYear
	}
	if r.ExamResultDocumentURL != nil {
		patch["exam_result_document_url"] = *r.ExamResultDocumentURL
	}
	return patch
}
