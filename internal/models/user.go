package models

import (
	"strings"
	"time"
)

type UserRole string

const (
	UserRoleMentor UserRole = "mentor"
	UserRoleMentee UserRole = "mentee"
)

// Expertise is the fixed set of tags mentors can be discovered by.
type Expertise string

const (
	ExpertiseAlgorand Expertise = "ALGORAND"
	ExpertiseSui      Expertise = "SUI"
	ExpertiseEthereum Expertise = "ETHEREUM"
	ExpertiseICP      Expertise = "ICP"
	ExpertiseBitcoin  Expertise = "BITCOIN"
	ExpertiseSolidity Expertise = "SOLIDITY"
	ExpertiseSolana   Expertise = "SOLANA"
)

// ParseExpertise normalizes the input to upper case and reports
// whether it names a known tag.
func ParseExpertise(input string) (Expertise, bool) {
	tag := Expertise(strings.ToUpper(strings.TrimSpace(input)))
	switch tag {
	case ExpertiseAlgorand, ExpertiseSui, ExpertiseEthereum,
		ExpertiseICP, ExpertiseBitcoin, ExpertiseSolidity, ExpertiseSolana:
		return tag, true
	}
	return "", false
}

// User is an account in the directory. Password holds the stored
// credential: the verbatim input by default, or an argon2id encoding
// when password hashing is enabled. UpdatedAt stays nil because no
// operation mutates a user after registration.
type User struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Password  string     `json:"-"`
	Role      UserRole   `json:"role"`
	Expertise *Expertise `json:"expertise,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}
