package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExamResultModel struct {
	ExamResultID uuid.UUID `gorm:"column:exam_result_id;type:uuid;default:gen_random_uuid();primaryKey" json:"exam_result_id"`

	ExamResultTitle        string     `gorm:"column:exam_result_title;type:text;not null" json:"exam_result_title"`
	ExamResultExamName     string     `gorm:"column:exam_result_exam_name;type:text;not null" json:"exam_result_exam_name"`
	ExamResultTradeID      *uuid.UUID `gorm:"column:exam_result_trade_id;type:uuid;index" json:"exam_result_trade_id,omitempty"`
	ExamResultTradeName    string     `gorm:"column:exam_result_trade_name;type:text;not null" json:"exam_result_trade_name"`
	ExamResultAcademicYear string     `gorm:"column:exam_result_academic_year;type:text;not null;index" json:"exam_result_academic_year"`
	ExamResultDocumentURL  string     `gorm:"column:exam_result_document_url;type:text;not null" json:"exam_result_document_url"`

	ExamResultCreatedAt time.Time      `gorm:"column:exam_result_created_at;autoCreateTime" json:"exam_result_created_at"`
	ExamResultUpdatedAt *time.Time     `gorm:"column:exam_result_updated_at;autoUpdateTime" json:"exam_result_updated_at,omitempty"`
	ExamResultDeletedAt gorm.DeletedAt `gorm:"column:exam_result_deleted_at;index" json:"exam_result_deleted_at,omitempty"`
}

func (ExamResultModel) TableName() string { return "exam_results" }
