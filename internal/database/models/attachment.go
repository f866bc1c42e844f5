package models

import "gorm.io/datatypes"

// Characteristics holds the free-text pros and cons of an attachment
type Characteristics struct {
	Pros []string `json:"pros"`
	Cons []string `json:"cons"`
}

// Attachment is one concrete attachment option for a model
type Attachment struct {
	ReferenceModel
	ModelID         uint                                `json:"model" gorm:"column:model;not null;index"`
	TypeID          uint                                `json:"type" gorm:"column:type;not null;index"`
	Characteristics datatypes.JSONType[Characteristics] `json:"characteristics" gorm:"not null"`

	WeaponModel    *Model          `json:"model_detail,omitempty" gorm:"foreignKey:ModelID"`
	AttachmentType *AttachmentType `json:"type_detail,omitempty" gorm:"foreignKey:TypeID"`
}

// TableName returns the table name for Attachment
func (Attachment) TableName() string {
	return "attachments"
}

// NewCharacteristics wraps pros and cons for storage
func NewCharacteristics(pros, cons []string) datatypes.JSONType[Characteristics] {
	if pros == nil {
		pros = []string{}
	}
	if cons == nil {
		cons = []string{}
	}
	return datatypes.NewJSONType(Characteristics{Pros: pros, Cons: cons})
}
