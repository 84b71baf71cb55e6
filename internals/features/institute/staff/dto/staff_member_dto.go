package dto

import (
	"github.com/google/uuid"

	model "vti_backend/internals/features/institute/staff/model"
)

type CreateStaffMemberRequest struct {
	StaffMemberName          string     `json:"staff_member_name" validate:"required,min=2,max=120"`
	StaffMemberDesignation   string     `json:"staff_member_designation" validate:"required,min=2,max=120"`
	StaffMemberQualification *string    `json:"staff_member_qualification" validate:"omitempty,max=255"`
	StaffMemberTradeID       *uuid.UUID `json:"staff_member_trade_id" validate:"omitempty"`
	StaffMemberPhotoURL      *string    `json:"staff_member_photo_url" validate:"omitempty,url,max=500"`
	StaffMemberDisplayOrder  int        `json:"staff_member_display_order" validate:"omitempty,min=0,max=1000"`
}

func (r CreateStaffMemberRequest) ToModel() *model.StaffMemberModel {
	return &model.StaffMemberModel{
		StaffMemberName:          r.StaffMemberName,
		StaffMemberDesignation:   r.StaffMemberDesignation,
		StaffMemberQualification: r.StaffMemberQualification,
		StaffMemberTradeID:       r.StaffMemberTradeID,
		StaffMemberPhotoURL:      r.StaffMemberPhotoURL,
		StaffMemberDisplayOrder:  r.StaffMemberDisplayOrder,
	}
}

type UpdateStaffMemberRequest struct {
	StaffMemberName          *string    `json:"staff_member_name" validate:"omitempty,min=2,max=120"`
	StaffMemberDesignation   *string    `json:"staff_member_designation" validate:"omitempty,min=2,max=120"`
	StaffMemberQualification *string    `json:"staff_member_qualification" validate:"omitempty,max=255"`
	StaffMemberTradeID       *uuid.UUID `json:"staff_member_trade_id" validate:"omitempty"`
	StaffMemberPhotoURL      *string    `json:"staff_member_photo_url" validate:"omitempty,url,max=500"`
	StaffMemberDisplayOrder  *int       `json:"staff_member_display_order" validate:"omitempty,min=0,max=1000"`
}

func (r UpdateStaffMemberRequest) ToPatch() map[string]interface{} {
	patch := map[string]interface{}{}
	if r.StaffMemberName != nil {
		patch["staff_member_name"] = *r.StaffMemberName
	}
	if r.StaffMemberDesignation != nil {
		patch["staff_member_designation"] = *r.StaffMemberDesignation
	}
	if r.StaffMemberQualification != nil {
		patch["staff_member_qualification"] = *r.StaffMemberQualification
	}
	if r.StaffMemberTradeID != nil {
		patch["staff_member_trade_id"] = *r.StaffMemberTradeID
	}
	if r.StaffMemberPhotoURL != nil {
		patch["staff_member_photo_url"] = *r.StaffMemberPhotoURL
	}
	if r.StaffMemberDisplayOrder != nil {
		patch["staff_member_display_order"] = *r.StaffMemberDisplayOrder
	}
	return patch
}
