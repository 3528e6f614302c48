package user

import "strings"

// User is a registered club member. Records are immutable once created.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	FavoriteClub string `json:"favoriteClub"`
	NewsLetter   bool   `json:"newsLetter"`
}

// RegisterInput carries the fields submitted for a new registration.
// A nil NewsLetter means the field was omitted.
type RegisterInput struct {
	Username     string
	Password     string
	FavoriteClub string
	NewsLetter   *bool
}

// Clubs lists the curling clubs a member may pick as a favorite.
var Clubs = []string{
	"Cache Valley Stone Society",
	"Ogden Curling Club",
	"Park City Curling Club",
	"Salt City Curling Club",
	"Utah Olympic Oval Curling Club",
}

// IsKnownClub matches name against Clubs ignoring case.
func IsKnownClub(name string) bool {
	for _, club := range Clubs {
		if strings.EqualFold(club, name) {
			return true
		}
	}
	return false
}
