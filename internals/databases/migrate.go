package database

import (
	"log"

	resultModel "vti_backend/internals/features/academics/results/model"
	feeModel "vti_backend/internals/features/finance/fees/model"
	staffModel "vti_backend/internals/features/institute/staff/model"
	studentModel "vti_backend/internals/features/institute/students/model"
	tradeModel "vti_backend/internals/features/institute/trades/model"
	galleryModel "vti_backend/internals/features/media/gallery/model"
	userModel "vti_backend/internals/features/users/model"
)

// Migrate runs gorm AutoMigrate for every table the app owns.
func Migrate() {
	log.Println("[INFO] Running migrations...")

	if err := DB.AutoMigrate(
		&userModel.AdminUserModel{},
		&tradeModel.TradeModel{},
		&staffModel.StaffMemberModel{},
		&studentModel.StudentModel{},
		&resultModel.ExamResultModel{},
		&galleryModel.GalleryItemModel{},
		&feeModel.NumberSequenceModel{},
		&feeModel.FeeRecordModel{},
		&feeModel.FeeInstallmentModel{},
		&feeModel.FeePaymentModel{},
	); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}

	log.Println("✅ Migrations completed.")
}
