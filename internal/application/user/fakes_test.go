package user

import (
	"context"
	"strings"
	"time"

	"github.com/tiendamoderna/tienda/internal/domain/user"
)

// fakeUserRepo keeps accounts in memory with the same error mapping the
// mysql repository promises.
type fakeUserRepo struct {
	byID   map[uint]*user.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[uint]*user.User), nextID: 1}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	for _, existing := range f.byID {
		if strings.EqualFold(existing.Email, u.Email) {
			return user.ErrEmailTaken
		}
	}
	u.ID = f.nextID
	f.nextID++
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uint) (*user.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	for _, u := range f.byID {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, user.ErrNotFound
}

func (f *fakeUserRepo) FindByVerificationToken(ctx context.Context, token string) (*user.User, error) {
	for _, u := range f.byID {
		if token != "" && u.VerificationToken == token {
			return u, nil
		}
	}
	return nil, user.ErrNotFound
}

func (f *fakeUserRepo) FindByResetToken(ctx context.Context, token string) (*user.User, error) {
	for _, u := range f.byID {
		if token != "" && u.ResetToken == token {
			return u, nil
		}
	}
	return nil, user.ErrNotFound
}

func (f *fakeUserRepo) Update(ctx context.Context, u *user.User) error {
	if _, ok := f.byID[u.ID]; !ok {
		return user.ErrNotFound
	}
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := f.FindByEmail(ctx, email)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (f *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.byID)), nil
}

type fakePublisher struct {
	events []string
}

func (f *fakePublisher) Publish(ctx context.Context, routingKey string, payload interface{}) error {
	f.events = append(f.events, routingKey)
	return nil
}

// fakeBlacklist records blacklisted tokens for the logout flow.
type fakeBlacklist struct {
	tokens []string
}

func (f *fakeBlacklist) Add(ctx context.Context, token string, ttl time.Duration) error {
	f.tokens = append(f.tokens, token)
	return nil
}

// fakeSessionStore records session writes and deletions.
type fakeSessionStore struct {
	saved    map[uint]map[string]interface{}
	deleted  []uint
	failWith error
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{saved: make(map[uint]map[string]interface{})}
}

func (f *fakeSessionStore) Save(ctx context.Context, userID uint, data map[string]interface{}, ttl time.Duration) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.saved[userID] = data
	return nil
}

func (f *fakeSessionStore) Delete(ctx context.Context, userID uint) error {
	f.deleted = append(f.deleted, userID)
	delete(f.saved, userID)
	return nil
}
