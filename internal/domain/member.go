package domain

import (
	"time"

	"github.com/google/uuid"
)

// Member is a registered resort customer. A member is uniquely identified
// by email or by mobile; both carry unique indexes.
type Member struct {
	ID                 uuid.UUID  `db:"id" json:"id"`
	Name               string     `db:"name" json:"name"`
	Surname            string     `db:"surname" json:"surname"`
	Fullname           string     `db:"fullname" json:"fullname"`
	Mobile             string     `db:"mobile" json:"mobile"`
	Email              string     `db:"email" json:"email"`
	Birthdate          *time.Time `db:"birthdate" json:"birthdate"`
	StartPrivilegeDate time.Time  `db:"start_privilege_date" json:"startPrivilegeDate"`

	// Pdpa is the one-to-one consent record, attached by lookups that
	// request it; nil when the member has never submitted consent.
	Pdpa *Consent `db:"-" json:"pdpa,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"-"`
	UpdatedAt time.Time `db:"updated_at" json:"-"`
}

// Profile is the member view exposed by the profile endpoints, with the
// storage name "mobile" renamed to the API name "phonenumber".
type Profile struct {
	Fullname           string     `json:"fullname"`
	PhoneNumber        string     `json:"phonenumber"`
	Birthdate          *time.Time `json:"birthdate"`
	Email              string     `json:"email"`
	StartPrivilegeDate time.Time  `json:"startPrivilegeDate"`
}
