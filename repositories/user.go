//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"fmt"
	"slices"
	"strings"
	"time"
	"zenchat/domain"
	"zenchat/errors"

	"github.com/dgraph-io/badger/v4"
)

const (
	userPrefix      = "user:id:"
	userEmailPrefix = "user:email:"
)

type IUserRepository interface {
	Save(user domain.User) error
	GetByID(id domain.UserID) (domain.User, error)
	GetByEmail(email string) (domain.User, error)
	List() ([]domain.User, error)
	UpdatePresence(id domain.UserID, online bool, lastSeen *time.Time) error
	ResetPresence(lastSeen time.Time) (int, error)
}

type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) *UserRepository {
	return &UserRepository{db: db}
}

func userKey(id domain.UserID) []byte {
	return []byte(userPrefix + string(id))
}

// Emails are case-insensitive
func emailKey(email string) []byte {
	return []byte(userEmailPrefix + strings.ToLower(strings.TrimSpace(email)))
}

// Save upserts the user and its email index.
func (r *UserRepository) Save(user domain.User) error {
	return update(r.db, func(txn *badger.Txn) error {
		if err := writeJSON(txn, userKey(user.ID), user); err != nil {
			return err
		}
		return txn.Set(emailKey(user.Email), []byte(user.ID))
	})
}

func (r *UserRepository) GetByID(id domain.UserID) (domain.User, error) {
	var user domain.User
	err := r.db.View(func(txn *badger.Txn) error {
		return readJSON(txn, userKey(id), &user, errors.ErrUserNotFound)
	})
	return user, err
}

func (r *UserRepository) GetByEmail(email string) (domain.User, error) {
	var user domain.User
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(emailKey(email))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return errors.ErrUserNotFound
		}
		if err != nil {
			return err
		}
		id, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		return readJSON(txn, userKey(domain.UserID(id)), &user, errors.ErrUserNotFound)
	})
	return user, err
}

// List returns every user ordered by name then id.
func (r *UserRepository) List() ([]domain.User, error) {
	var users []domain.User
	err := r.db.View(func(txn *badger.Txn) error {
		for _, id := range scanKeys(txn, []byte(userPrefix)) {
			var user domain.User
			if err := readJSON(txn, userKey(domain.UserID(id)), &user, errors.ErrUserNotFound); err != nil {
				return fmt.Errorf("reading user %s: %w", id, err)
			}
			users = append(users, user)
		}
		return nil
	})
	slices.SortFunc(users, func(a, b domain.User) int {
		if c := strings.Compare(a.UserName, b.UserName); c != 0 {
			return c
		}
		return strings.Compare(string(a.ID), string(b.ID))
	})
	return users, err
}

// UpdatePresence sets the online flag and, when given, the last seen time.
func (r *UserRepository) UpdatePresence(id domain.UserID, online bool, lastSeen *time.Time) error {
	return update(r.db, func(txn *badger.Txn) error {
		var user domain.User
		if err := readJSON(txn, userKey(id), &user, errors.ErrUserNotFound); err != nil {
			return err
		}
		user.IsOnline = online
		if lastSeen != nil {
			user.LastSeen = lastSeen
		}
		return writeJSON(txn, userKey(id), user)
	})
}

// ResetPresence marks offline every user still flagged online, last seen
// at lastSeen, and returns how many were reset.
func (r *UserRepository) ResetPresence(lastSeen time.Time) (int, error) {
	reset := 0
	err := update(r.db, func(txn *badger.Txn) error {
		for _, id := range scanKeys(txn, []byte(userPrefix)) {
			var user domain.User
			if err := readJSON(txn, userKey(domain.UserID(id)), &user, errors.ErrUserNotFound); err != nil {
				return fmt.Errorf("reading user %s: %w", id, err)
			}
			if !user.IsOnline {
				continue
			}
			user.IsOnline = false
			user.LastSeen = &lastSeen
			if err := writeJSON(txn, userKey(user.ID), user); err != nil {
				return err
			}
			reset++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return reset, nil
}
