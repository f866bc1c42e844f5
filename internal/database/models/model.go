package models

// Model is a weapon model
type Model struct {
	ReferenceModel
	Name string         `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Type WeaponCategory `json:"type" gorm:"size:20;not null" validate:"required"`
}

// TableName returns the table name for Model
func (Model) TableName() string {
	return "models"
}
