package models

// UserID identifies one of the two fixed parties in the retrospective.
type UserID string

const (
	UserA UserID = "A"
	UserB UserID = "B"
)

func (u UserID) Valid() bool {
	return u == UserA || u == UserB
}

// Partner returns the other party.
func (u UserID) Partner() UserID {
	if u == UserA {
		return UserB
	}
	return UserA
}
