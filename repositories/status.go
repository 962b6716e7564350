//go:generate go run go.uber.org/mock/mockgen -source=status.go -destination=../mocks/mock_status_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"slices"
	"time"
	"zenchat/domain"
	"zenchat/errors"

	"github.com/dgraph-io/badger/v4"
)

const statusPrefix = "status:"

type IStatusRepository interface {
	Save(status domain.Status) error
	GetByID(id domain.StatusID) (domain.Status, error)
	Update(id domain.StatusID, fn func(status *domain.Status) error) (domain.Status, error)
	Delete(id domain.StatusID) error
	List() ([]domain.Status, error)
}

// StatusRepository stores statuses with a badger TTL matching their expiry,
// expired statuses disappear on their own.
type StatusRepository struct {
	db  *badger.DB
	now func() time.Time
}

func NewStatusRepository(db *badger.DB, now func() time.Time) *StatusRepository {
	return &StatusRepository{db: db, now: now}
}

func statusKey(id domain.StatusID) []byte {
	return []byte(statusPrefix + string(id))
}

func (r *StatusRepository) write(txn *badger.Txn, status domain.Status) error {
	ttl := status.ExpiresAt.Sub(r.now())
	if ttl <= 0 {
		return errors.ErrStatusNotFound
	}
	data, err := json.Marshal(status)
	if err != nil {
		return err
	}
	return txn.SetEntry(badger.NewEntry(statusKey(status.ID), data).WithTTL(ttl))
}

func (r *StatusRepository) read(txn *badger.Txn, id domain.StatusID) (domain.Status, error) {
	var status domain.Status
	if err := readJSON(txn, statusKey(id), &status, errors.ErrStatusNotFound); err != nil {
		return domain.Status{}, err
	}
	// TTL granularity is one second
	if status.IsExpired(r.now()) {
		return domain.Status{}, errors.ErrStatusNotFound
	}
	return status, nil
}

func (r *StatusRepository) Save(status domain.Status) error {
	return update(r.db, func(txn *badger.Txn) error {
		return r.write(txn, status)
	})
}

func (r *StatusRepository) GetByID(id domain.StatusID) (domain.Status, error) {
	var status domain.Status
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		status, err = r.read(txn, id)
		return err
	})
	return status, err
}

func (r *StatusRepository) Update(id domain.StatusID, fn func(status *domain.Status) error) (domain.Status, error) {
	var status domain.Status
	err := update(r.db, func(txn *badger.Txn) error {
		var err error
		if status, err = r.read(txn, id); err != nil {
			return err
		}
		if err = fn(&status); err != nil {
			return err
		}
		return r.write(txn, status)
	})
	return status, err
}

func (r *StatusRepository) Delete(id domain.StatusID) error {
	return update(r.db, func(txn *badger.Txn) error {
		if _, err := r.read(txn, id); err != nil {
			return err
		}
		return txn.Delete(statusKey(id))
	})
}

// List returns the live statuses, newest first.
func (r *StatusRepository) List() ([]domain.Status, error) {
	var statuses []domain.Status
	err := r.db.View(func(txn *badger.Txn) error {
		for _, id := range scanKeys(txn, []byte(statusPrefix)) {
			status, err := r.read(txn, domain.StatusID(id))
			if errors.Is(err, errors.ErrStatusNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			statuses = append(statuses, status)
		}
		return nil
	})
	slices.SortStableFunc(statuses, func(a, b domain.Status) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return statuses, err
}
