// Package auth verifies the two fixed dashboard accounts. It gates
// access to the admin routes; it is a route guard, not a security
// boundary (credentials come from configuration, not a user table).
package auth

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Accounts holds bcrypt hashes for the configured credential pairs.
type Accounts struct {
	hashes map[string][]byte
}

// New builds the account set from username → password pairs. A password
// already in bcrypt form (a "$2" prefix) is stored as-is; plain-text
// passwords are hashed at startup so the clear text never lingers.
func New(pairs map[string]string) (*Accounts, error) {
	a := &Accounts{hashes: make(map[string][]byte, len(pairs))}
	for user, pass := range pairs {
		if user == "" || pass == "" {
			return nil, fmt.Errorf("auth: empty username or password")
		}
		if strings.HasPrefix(pass, "$2") {
			a.hashes[user] = []byte(pass)
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("auth hash for %q: %w", user, err)
		}
		a.hashes[user] = hash
	}
	return a, nil
}

// Verify reports whether the username/password pair matches a configured
// account. Unknown usernames still run a bcrypt comparison so the two
// failure paths take comparable time.
func (a *Accounts) Verify(username, password string) bool {
	hash, ok := a.hashes[username]
	if !ok {
		bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return false
	}
	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
}

// dummyHash is compared against for unknown usernames. Any valid bcrypt
// hash works; this one is of an unguessable random string.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")
