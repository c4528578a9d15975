package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/portfolio/contact-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	mu        sync.Mutex
	users     map[string]*domain.User
	nextID    int
	createErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return nil, r.createErr
	}
	for _, u := range r.users {
		if u.Email == user.Email || u.Username == user.Username {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	c := cloneUser(user)
	c.ID = "user-" + string(rune('0'+r.nextID))
	if c.Role == "" {
		c.Role = domain.RoleUser
	}
	r.users[c.ID] = c
	return cloneUser(c), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if patch.FirstName != nil {
		u.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		u.LastName = *patch.LastName
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.Username != nil {
		u.Username = *patch.Username
	}
	if patch.Password != nil {
		u.Password = *patch.Password
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) UpdateRole(_ context.Context, id string, role domain.Role) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.Role = role
	return cloneUser(u), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	delete(r.users, id)
	return u, nil
}

// fakeHasher prefixes instead of running bcrypt; it counts calls so tests can
// check that work was done on every path.
type fakeHasher struct {
	mu       sync.Mutex
	hashes   int
	compares int
	hashErr  error
}

func (h *fakeHasher) Hash(_ context.Context, plaintext string) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.hashes++
	if h.hashErr != nil {
		return "", h.hashErr
	}
	return "hashed:" + plaintext, nil
}

func (h *fakeHasher) Compare(_ context.Context, plaintext, hash string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.compares++
	return strings.TrimPrefix(hash, "hashed:") == plaintext && strings.HasPrefix(hash, "hashed:")
}

type stubTokens struct {
	issueErr error
	issued   []*domain.User
}

func (s *stubTokens) Issue(user *domain.User) (string, *domain.Claims, error) {
	if s.issueErr != nil {
		return "", nil, s.issueErr
	}
	s.issued = append(s.issued, cloneUser(user))
	return "token-for-" + user.Username, &domain.Claims{UserID: user.ID, Username: user.Username, Role: user.Role}, nil
}

func (s *stubTokens) Verify(string) (*domain.Claims, error) {
	return nil, errors.New("not used")
}

type stubMessageRepo struct {
	mu        sync.Mutex
	msgs      map[string]*domain.ContactMessage
	nextID    int
	lastList  domain.MessageFilter
	createErr error
}

func newStubMessageRepo() *stubMessageRepo {
	return &stubMessageRepo{msgs: make(map[string]*domain.ContactMessage)}
}

func (r *stubMessageRepo) Create(_ context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.nextID++
	c := *msg
	c.ID = "msg-" + string(rune('0'+r.nextID))
	r.msgs[c.ID] = &c
	out := c
	return &out, nil
}

func (r *stubMessageRepo) FindByID(_ context.Context, id string) (*domain.ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.msgs[id]
	if !ok {
		return nil, domain.ErrMessageNotFound
	}
	c := *m
	return &c, nil
}

func (r *stubMessageRepo) List(_ context.Context, f domain.MessageFilter) ([]*domain.ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastList = f
	var out []*domain.ContactMessage
	for _, m := range r.msgs {
		if f.Status != "" && m.Status != f.Status {
			continue
		}
		c := *m
		out = append(out, &c)
	}
	return out, nil
}

func (r *stubMessageRepo) UpdateStatus(_ context.Context, id string, status domain.MessageStatus) (*domain.ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.msgs[id]
	if !ok {
		return nil, domain.ErrMessageNotFound
	}
	m.Status = status
	c := *m
	return &c, nil
}

func (r *stubMessageRepo) Delete(_ context.Context, id string) (*domain.ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.msgs[id]
	if !ok {
		return nil, domain.ErrMessageNotFound
	}
	delete(r.msgs, id)
	return m, nil
}

type stubDedup struct {
	seen      map[string]string
	lookupErr error
}

func newStubDedup() *stubDedup {
	return &stubDedup{seen: make(map[string]string)}
}

func (d *stubDedup) Lookup(_ context.Context, email, subject, body string) (string, error) {
	if d.lookupErr != nil {
		return "", d.lookupErr
	}
	return d.seen[email+"|"+subject+"|"+body], nil
}

func (d *stubDedup) Remember(_ context.Context, email, subject, body, id string) error {
	d.seen[email+"|"+subject+"|"+body] = id
	return nil
}

type stubMetrics struct {
	mu       sync.Mutex
	logins   []string
	users    int
	messages int
	hits     int
	misses   int
}

func (m *stubMetrics) LoginAttempt(result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logins = append(m.logins, result)
}

func (m *stubMetrics) UserCreated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users++
}

func (m *stubMetrics) MessageCreated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages++
}

func (m *stubMetrics) MessageDedup(hit bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if hit {
		m.hits++
		return
	}
	m.misses++
}
