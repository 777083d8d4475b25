package model

import (
	"time"

	"github.com/google/uuid"
)

// Project groups purchases under one cost centre. RootFolder is the on-disk
// directory that holds the project's document tree (one subfolder per
// document type), created when the project is.
type Project struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `gorm:"not null;uniqueIndex"`
	Location     *string
	CapexCode    *string
	CostCategory string `gorm:"not null;default:'Goods'"` // Capex | Goods | Services
	RootFolder   string `gorm:"not null"`
	CreatedAt    time.Time

	Purchases []Purchase `gorm:"foreignKey:ProjectID"`
}

func (Project) TableName() string { return "projects" }
