package model

// NumberSequenceModel backs the invoice/receipt counters. Rows are incremented
// under a row lock so issued numbers are unique and monotonic per (key, year).
type NumberSequenceModel struct {
	NumberSequenceKey       string `gorm:"column:number_sequence_key;type:text;primaryKey" json:"number_sequence_key"`
	NumberSequenceYear      int    `gorm:"column:number_sequence_year;primaryKey" json:"number_sequence_year"`
	NumberSequenceLastValue int64  `gorm:"column:number_sequence_last_value;not null;default:0" json:"number_sequence_last_value"`
}

func (NumberSequenceModel) TableName() string { return "number_sequences" }
