// server/internal/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles a user can hold.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID         string             `bson:"userID" json:"userID"`
	Email          string             `bson:"email" json:"email"`
	Password       string             `bson:"password" json:"-"`
	FirstName      string             `bson:"firstName" json:"firstName"`
	LastName       string             `bson:"lastName" json:"lastName"`
	PersonalNumber string             `bson:"personalNumber" json:"personalNumber"` // birth-date-encoding identifier, YYMMDD- or YYYYMMDD-prefixed
	Role           string             `bson:"role" json:"role"`
	MembershipType string             `bson:"membershipType" json:"membershipType"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}
