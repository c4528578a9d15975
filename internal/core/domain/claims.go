package domain

import "time"

// Claims is the identity embedded in an access token.
type Claims struct {
	UserID    string
	Username  string
	Role      Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}
