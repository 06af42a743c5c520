package user

import (
	"strings"
	"unicode/utf8"
)

const MaxNameLength = 120

// User is a feed viewer. Engagement (likes, comments) is not modelled yet.
type User struct {
	id        int64
	name      string
	profileID *int64
}

func NewUser(name string, profileID *int64) (*User, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return nil, ErrEmptyName
	}
	if utf8.RuneCountInString(n) > MaxNameLength {
		return nil, ErrNameTooLong
	}
	if profileID != nil && *profileID <= 0 {
		return nil, ErrInvalidProfile
	}
	return &User{name: n, profileID: profileID}, nil
}

func Reconstruct(id int64, name string, profileID *int64) *User {
	return &User{id: id, name: name, profileID: profileID}
}

func (u *User) ID() int64         { return u.id }
func (u *User) Name() string      { return u.name }
func (u *User) ProfileID() *int64 { return u.profileID }
