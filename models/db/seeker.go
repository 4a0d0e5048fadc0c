package dbmodels

type Seeker struct {
	BaseModel
	Name     string `gorm:"type:varchar(255)"`
	Email    string `gorm:"type:varchar(255);uniqueIndex"`
	Password string `gorm:"type:varchar(128)"`
	Mobile   string `gorm:"type:varchar(20)"`
}
