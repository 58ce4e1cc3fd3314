package entities

// User represents the persisted user profile row.
// The table itself is created by the migration in database/migrations;
// no field carries a NOT NULL constraint on purpose.
type User struct {
	ID      int64   `gorm:"primaryKey;autoIncrement"`
	Name    *string `gorm:"type:varchar(255)"`
	Email   *string `gorm:"type:varchar(255)"`
	Country *string `gorm:"type:varchar(255)"`
}

func (User) TableName() string {
	return "users"
}
