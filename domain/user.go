package domain

import "time"

const DefaultAbout = "Hey there! I am using ZenChat."

type User struct {
	ID             UserID     `json:"id"`
	Email          string     `json:"email"`
	UserName       string     `json:"userName,omitempty"`
	ProfilePicture string     `json:"profilePicture,omitempty"`
	About          string     `json:"about"`
	LastSeen       *time.Time `json:"lastSeen,omitempty"`
	IsOnline       bool       `json:"isOnline"`
	IsVerified     bool       `json:"isVerified"`
	Agreed         bool       `json:"agreed"`
	OTPHash        string     `json:"otpHash,omitempty"`
	OTPExpiry      *time.Time `json:"otpExpiry,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// Public strips credentials before a user leaves the server.
func (u User) Public() User {
	u.OTPHash = ""
	u.OTPExpiry = nil
	return u
}
