package models

import "time"

type BranchModel struct {
	ID                  uint   `gorm:"primaryKey"`
	Name                string `gorm:"size:100;not null"`
	Code                string `gorm:"uniqueIndex;size:30;not null"`
	CanAcceptOrders     bool   `gorm:"not null;default:false"`
	CanProduce          bool   `gorm:"not null;default:false"`
	IsDefaultProduction bool   `gorm:"not null;default:false"`
	IsActive            bool   `gorm:"not null;default:true;index"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (BranchModel) TableName() string {
	return "branches"
}
