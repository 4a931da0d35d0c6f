// Package models defines the records the client keeps in its local store.
package models

import (
	"fmt"
	"time"
)

type UserType string

const (
	UserTypeFarmer  UserType = "farmer"
	UserTypeOfficer UserType = "officer"
)

const AccountStatusActive = "active"

// Preferences are created with the account and only read afterwards.
type Preferences struct {
	Theme         string `json:"theme"`
	Notifications bool   `json:"notifications"`
	Language      string `json:"language"`
}

func DefaultPreferences(language string) Preferences {
	return Preferences{Theme: "light", Notifications: true, Language: language}
}

// User is a registered account. Password holds an encoded one-way hash.
type User struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Email         string      `json:"email"`
	Phone         string      `json:"phone"`
	State         string      `json:"state"`
	District      string      `json:"district"`
	Village       string      `json:"village,omitempty"`
	Crops         []string    `json:"crops"`
	Language      string      `json:"language,omitempty"`
	FarmSize      string      `json:"farmSize,omitempty"`
	UserType      UserType    `json:"userType,omitempty"`
	Password      string      `json:"password"`
	JoinDate      time.Time   `json:"joinDate"`
	LastLogin     time.Time   `json:"lastLogin"`
	AccountStatus string      `json:"accountStatus"`
	Preferences   Preferences `json:"preferences"`
}

// Matches reports whether identifier is the user's email or phone.
func (u *User) Matches(identifier string) bool {
	return u.Email == identifier || u.Phone == identifier
}

// String never includes the password hash.
func (u User) String() string {
	return fmt.Sprintf("%s <%s> %s, %s/%s", u.Name, u.Email, u.Phone, u.District, u.State)
}

// SignupForm is the raw signup input before validation.
type SignupForm struct {
	Name            string
	Phone           string
	Email           string
	State           string
	District        string
	Village         string
	Crops           []string
	Language        string
	FarmSize        string
	UserType        UserType
	Password        string
	ConfirmPassword string
}
