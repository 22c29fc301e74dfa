package entity

type User struct {
	BaseSimple   `bson:",inline"`
	Email        string `bson:"email" db:"email"`
	PasswordHash string `bson:"password_hash" db:"password_hash"`
	FullName     string `bson:"full_name" db:"full_name"`
	Phone        string `bson:"phone" db:"phone"`
	Address      string `bson:"address" db:"address"`
	IsActive     bool   `bson:"is_active" db:"is_active"`
}
