package services

import (
	"regexp"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"

	"curling-registry/internal/domain/user"
	registry_errors "curling-registry/pkg/errors"

	"github.com/google/uuid"
)

var (
	passwordCharset = regexp.MustCompile(`^[A-Za-z\d]{8,}$`)
	passwordLetter  = regexp.MustCompile(`[A-Za-z]`)
	passwordDigit   = regexp.MustCompile(`\d`)
)

type registrationRule struct {
	valid func(in user.RegisterInput) bool
	err   error
}

// registrationRules run in order and the first failing rule decides the error,
// so a multiply-invalid input always gets the same message.
var registrationRules = []registrationRule{
	{
		valid: func(in user.RegisterInput) bool { return lengthBetween(in.Username, 6, 20) },
		err:   registry_errors.ErrInvalidUsername,
	},
	{
		valid: func(in user.RegisterInput) bool { return lengthBetween(in.Password, 8, 36) },
		err:   registry_errors.ErrInvalidPasswordLength,
	},
	{
		valid: func(in user.RegisterInput) bool {
			return passwordCharset.MatchString(in.Password) &&
				passwordLetter.MatchString(in.Password) &&
				passwordDigit.MatchString(in.Password)
		},
		err: registry_errors.ErrInvalidPasswordComplexity,
	},
	{
		valid: func(in user.RegisterInput) bool { return in.FavoriteClub != "" && user.IsKnownClub(in.FavoriteClub) },
		err:   registry_errors.ErrInvalidClub,
	},
}

func lengthBetween(s string, lo, hi int) bool {
	n := utf8.RuneCountInString(s)
	return n >= lo && n <= hi
}

// ValidateRegistration returns the error of the first rule the input breaks.
func ValidateRegistration(in user.RegisterInput) error {
	for _, rule := range registrationRules {
		if !rule.valid(in) {
			return rule.err
		}
	}
	return nil
}

// UserDirectory is the in-memory, insertion-ordered registry of users.
// Every method holds mu for its whole duration.
type UserDirectory struct {
	mu      sync.Mutex
	users   []user.User
	baseURL string
	newID   func() string
}

func NewUserDirectory(baseURL string, seed []user.User) *UserDirectory {
	users := make([]user.User, len(seed))
	copy(users, seed)
	return &UserDirectory{
		users:   users,
		baseURL: strings.TrimRight(baseURL, "/"),
		newID:   func() string { return uuid.New().String() },
	}
}

// Register validates in, appends the new record and returns it with its locator.
func (d *UserDirectory) Register(in user.RegisterInput) (user.User, string, error) {
	if err := ValidateRegistration(in); err != nil {
		return user.User{}, "", err
	}

	newsLetter := false
	if in.NewsLetter != nil {
		newsLetter = *in.NewsLetter
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	u := user.User{
		ID:           d.newID(),
		Username:     in.Username,
		Password:     in.Password,
		FavoriteClub: in.FavoriteClub,
		NewsLetter:   newsLetter,
	}
	d.users = append(d.users, u)

	return u, d.Locator(u.ID), nil
}

// Remove deletes the user with the given id, keeping the order of the rest.
func (d *UserDirectory) Remove(userID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	index := slices.IndexFunc(d.users, func(u user.User) bool { return u.ID == userID })
	if index == -1 {
		return registry_errors.ErrNotFound
	}
	d.users = slices.Delete(d.users, index, index+1)
	return nil
}

// ListAll returns a copy of every user in insertion order.
func (d *UserDirectory) ListAll() []user.User {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]user.User, len(d.users))
	copy(out, d.users)
	return out
}

// Locator is the canonical URL of the user resource with the given id.
func (d *UserDirectory) Locator(userID string) string {
	return d.baseURL + "/user/" + userID
}
