package models

// AttachmentType is a named attachment kind bound to one slot. Names are unique.
type AttachmentType struct {
	ReferenceModel
	Name string         `json:"name" gorm:"size:100;not null;uniqueIndex" validate:"required,min=1,max=100"`
	Type AttachmentSlot `json:"type" gorm:"size:20;not null" validate:"required"`
}

// TableName returns the table name for AttachmentType
func (AttachmentType) TableName() string {
	return "attachment_names"
}
