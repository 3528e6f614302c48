package httpdto

import "curling-registry/internal/domain/user"

// RegisterRequest is used for POST /register
type RegisterRequest struct {
	Username     string `json:"username"`
	Password     string `json:"password"`
	FavoriteClub string `json:"favoriteClub"`
	NewsLetter   *bool  `json:"newsLetter,omitempty"`
}

// ToInput converts the request into the directory's registration input
func (r RegisterRequest) ToInput() user.RegisterInput {
	return user.RegisterInput{
		Username:     r.Username,
		Password:     r.Password,
		FavoriteClub: r.FavoriteClub,
		NewsLetter:   r.NewsLetter,
	}
}

// UserDTO represents a user in API responses
type UserDTO struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	FavoriteClub string `json:"favoriteClub"`
	NewsLetter   bool   `json:"newsLetter"`
}

// FromUser converts a domain user to UserDTO
func FromUser(u user.User) UserDTO {
	return UserDTO{
		ID:           u.ID,
		Username:     u.Username,
		Password:     u.Password,
		FavoriteClub: u.FavoriteClub,
		NewsLetter:   u.NewsLetter,
	}
}

// FromUserSlice converts a slice of domain users to UserDTO slice
func FromUserSlice(users []user.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i, u := range users {
		dtos[i] = FromUser(u)
	}
	return dtos
}
