package testutil

import (
	"context"
	"sync"
	"testing"
	"time"

	"werkbon/internal/app/config"
	"werkbon/internal/app/ds"

	"github.com/golang-jwt/jwt"
)

const JWTSecret = "werkbon-test-secret"

func Config() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Token:         JWTSecret,
			ExpiresIn:     time.Hour,
			SigningMethod: jwt.SigningMethodHS256,
		},
		Planning: config.PlanningConfig{Timezone: "UTC", Location: time.UTC},
	}
}

// Token signs a token for userID that expires after ttl.
func Token(t *testing.T, userID string, ttl time.Duration) string {
	t.Helper()
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, ds.JWTClaims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(ttl).Unix(),
			IssuedAt:  now.Unix(),
			Issuer:    "werkbon",
		},
		UserID: userID,
		Email:  "jan@example.com",
	})
	signed, err := token.SignedString([]byte(JWTSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

// Blacklist is an in-memory token blacklist.
type Blacklist struct {
	mu     sync.Mutex
	tokens map[string]time.Duration
	Err    error
}

func NewBlacklist() *Blacklist {
	return &Blacklist{tokens: map[string]time.Duration{}}
}

func (b *Blacklist) IsJWTBlacklisted(_ context.Context, jwtStr string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.Err != nil {
		return false, b.Err
	}
	_, ok := b.tokens[jwtStr]
	return ok, nil
}

func (b *Blacklist) WriteJWTToBlacklist(_ context.Context, jwtStr string, ttl time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.Err != nil {
		return b.Err
	}
	b.tokens[jwtStr] = ttl
	return nil
}

// TTL returns the blacklist TTL of a token.
func (b *Blacklist) TTL(jwtStr string) (time.Duration, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	ttl, ok := b.tokens[jwtStr]
	return ttl, ok
}

// Users is an in-memory user and technician directory.
type Users struct {
	Users       []ds.User
	Technicians []ds.Technician
	Err         error
}

func (u *Users) GetUserByEmail(_ context.Context, email string) (*ds.User, error) {
	if u.Err != nil {
		return nil, u.Err
	}
	for i := range u.Users {
		if u.Users[i].Email == email {
			user := u.Users[i]
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (u *Users) GetUserByID(_ context.Context, id string) (*ds.User, error) {
	if u.Err != nil {
		return nil, u.Err
	}
	for i := range u.Users {
		if u.Users[i].ID == id {
			user := u.Users[i]
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (u *Users) FindTechnicianByUserID(_ context.Context, userID string) (*ds.Technician, error) {
	if u.Err != nil {
		return nil, u.Err
	}
	for i := range u.Technicians {
		if u.Technicians[i].UserID == userID {
			tech := u.Technicians[i]
			return &tech, nil
		}
	}
	return nil, nil
}
