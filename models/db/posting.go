package dbmodels

import (
	"time"

	"github.com/lib/pq"
)

type Posting struct {
	BaseModel
	RecruiterID string     `gorm:"type:varchar(36);index"`
	Recruiter   *Recruiter `gorm:"foreignKey:RecruiterID"`
	// снапшот данных рекрутера на момент публикации
	RecruiterName  string `gorm:"type:varchar(255)"`
	RecruiterEmail string `gorm:"type:varchar(255)"`

	Title        string `gorm:"type:varchar(255)"`
	Company      string `gorm:"type:varchar(255)"`
	Location     string `gorm:"type:varchar(255)"`
	JobType      string `gorm:"type:varchar(100)"`
	Compensation int
	Skills       pq.StringArray `gorm:"type:text[]"`

	MaxApplications int
	MaxAccepted     int
	ApplyBy         time.Time

	// счетчики изменяются только движком откликов
	ApplicationsReceived int
	AcceptedCount        int

	PostedAt       time.Time
	DurationMonths int  // 0-6
	Deleted        bool // мягкое удаление, записи не удаляются физически
}

func (p Posting) IsDeadlinePassed(now time.Time) bool {
	return p.ApplyBy.Before(now)
}

func (p Posting) HasApplicationSlots() bool {
	return p.ApplicationsReceived < p.MaxApplications
}

func (p Posting) IsFull() bool {
	return p.AcceptedCount >= p.MaxAccepted
}
