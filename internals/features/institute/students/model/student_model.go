package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentModel struct {
	StudentID uuid.UUID `gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_id"`

	StudentName         string     `gorm:"column:student_name;type:text;not null;index" json:"student_name"`
	StudentFatherName   string     `gorm:"column:student_father_name;type:text;not null" json:"student_father_name"`
	StudentMobile       string     `gorm:"column:student_mobile;type:text;not null;index" json:"student_mobile"`
	StudentTradeID      *uuid.UUID `gorm:"column:student_trade_id;type:uuid;index" json:"student_trade_id,omitempty"`
	StudentTradeName    string     `gorm:"column:student_trade_name;type:text;not null" json:"student_trade_name"`
	StudentAcademicYear string     `gorm:"column:student_academic_year;type:text;not null;index" json:"student_academic_year"`
	StudentAdmissionAt  *time.Time `gorm:"column:student_admission_at" json:"student_admission_at,omitempty"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt *time.Time     `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at,omitempty"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }
