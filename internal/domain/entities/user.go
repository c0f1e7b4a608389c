package entities

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type User struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Username  string             `json:"username" bson:"username"`
	Password  string             `json:"-" bson:"password"`
	Email     string             `json:"email" bson:"email"`
	Mobile    string             `json:"mobile" bson:"mobile"`
	Admin     bool               `json:"admin" bson:"admin"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

func NewUser(name, username, password, email, mobile string, admin bool) *User {
	now := time.Now()
	return &User{
		Name:      name,
		Username:  username,
		Password:  password,
		Email:     email,
		Mobile:    mobile,
		Admin:     admin,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate checks the fields registration requires. The admin flag is
// optional and defaults to false.
func (u *User) Validate() error {
	if u.Name == "" || u.Username == "" || u.Password == "" || u.Email == "" || u.Mobile == "" {
		return errors.New("all fields are required")
	}
	return nil
}

func (u *User) HashPassword() error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword compares the stored hash against a candidate password.
// bcrypt's comparison is constant time.
func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
}
