package repository

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}

type Entry struct {
	ID       uint   `gorm:"primaryKey"`
	UserID   uint   `gorm:"not null;index"`
	Title    string `gorm:"type:text;not null"`
	Notes    string `gorm:"type:text;not null"`
	PhotoURL string `gorm:"type:text;not null"`
}
