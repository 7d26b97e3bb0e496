package store

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/rbmartins/secretaria/internal/model"
)

// Users holds the single local profile. It is a store of at most one
// record; Current returning nil means "not logged in".
type Users struct {
	key     string
	backend Backend
	user    *model.User
	opts    settings

	flushMu  sync.Mutex
	pending  []byte
	flushing bool
	flushes  sync.WaitGroup
}

func NewUsers(b Backend, opts ...Option) *Users {
	s := defaultSettings()
	for _, o := range opts {
		o(&s)
	}
	u := &Users{key: "user", backend: b, opts: s}
	u.load()
	return u
}

func (u *Users) load() {
	b, err := u.backend.Load(u.key)
	if err != nil {
		log.Printf("store %s: load: %v", u.key, err)
		return
	}
	if len(b) == 0 {
		return
	}
	var usr model.User
	if err := json.Unmarshal(b, &usr); err != nil {
		log.Printf("store %s: unreadable document, starting empty: %v", u.key, err)
		return
	}
	if usr.ID != "" {
		u.user = &usr
	}
}

// Current returns the logged-in user, or nil.
func (u *Users) Current() *model.User { return u.user }

// SetUser replaces the profile, stamping fresh identity.
func (u *Users) SetUser(usr *model.User) *model.User {
	usr.Stamp(u.opts.newID(), u.opts.clock())
	usr.UserID = usr.ID
	u.user = usr
	u.flush()
	return usr
}

// Clear logs the user out.
func (u *Users) Clear() {
	u.user = nil
	u.flush()
}

// flush mirrors Collection.flush: snapshot now, write through a single
// ordered drainer so an older profile never lands over a newer one.
func (u *Users) flush() {
	b, err := json.MarshalIndent(u.user, "", "  ")
	if err != nil {
		log.Printf("store %s: marshal: %v", u.key, err)
		return
	}
	u.flushMu.Lock()
	u.pending = b
	if u.flushing {
		u.flushMu.Unlock()
		return
	}
	u.flushing = true
	u.flushes.Add(1)
	u.flushMu.Unlock()
	go u.drain()
}

func (u *Users) drain() {
	defer u.flushes.Done()
	for {
		u.flushMu.Lock()
		b := u.pending
		u.pending = nil
		if b == nil {
			u.flushing = false
			u.flushMu.Unlock()
			return
		}
		u.flushMu.Unlock()
		if err := u.backend.Save(u.key, b); err != nil {
			log.Printf("store %s: save: %v", u.key, err)
		}
	}
}

func (u *Users) Wait() { u.flushes.Wait() }
