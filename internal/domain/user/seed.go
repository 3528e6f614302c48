package user

// SeedUsers returns the records every directory starts with.
func SeedUsers() []User {
	return []User{
		{
			ID:           "cjsgblka00000jhvf6xfy4mtm",
			Username:     "sallyStudent",
			Password:     "c00d1ng1sc00l",
			FavoriteClub: "Cache Valley Stone Society",
			NewsLetter:   true,
		},
		{
			ID:           "cjsgblka10001jhvfhp1mfvph",
			Username:     "johnBlocton",
			Password:     "veryg00dpassw0rd",
			FavoriteClub: "Salt City Curling Club",
			NewsLetter:   false,
		},
	}
}
