package entity

import (
	"time"
)

// Signal 价差信号记录, 只追加不修改
type Signal struct {
	Id                   int64     `gorm:"primaryKey;autoIncrement"`
	Timestamp            time.Time `gorm:"not null;index"`
	Asset                string    `gorm:"not null;index"`
	SignalType           string    `gorm:"not null"`
	EntryOrSellPrice     float64   `gorm:"not null"`
	TargetPrice          float64   `gorm:"not null"`
	PercentageDifference float64   `gorm:"not null"`
	Grade                *string
}

const (
	SignalTypeBuy  = "BUY"
	SignalTypeSell = "SELL"
)
