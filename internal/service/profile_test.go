package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/securepass/securepass-go/internal/crypto"
	"github.com/securepass/securepass-go/internal/model"
	"github.com/securepass/securepass-go/internal/repository"
)

const testSecret = "test-secret"

type memoryProfiles struct {
	mu     sync.Mutex
	nextID int64
	byName map[string]*model.Profile
}

func newMemoryProfiles() *memoryProfiles {
	return &memoryProfiles{byName: make(map[string]*model.Profile)}
}

func (m *memoryProfiles) Create(_ context.Context, p *model.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byName[p.Name]; ok {
		return repository.ErrDuplicateProfile
	}
	m.nextID++
	p.ID = m.nextID
	stored := *p
	m.byName[p.Name] = &stored
	return nil
}

func (m *memoryProfiles) GetByName(_ context.Context, name string) (*model.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.byName[name]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}
	return p, nil
}

func (m *memoryProfiles) GetByID(_ context.Context, id int64) (*model.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.byName {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, repository.ErrProfileNotFound
}

func TestProfileRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc := NewProfileService(newMemoryProfiles(), testSecret, time.Hour)
	req := model.ProfileRequest{Name: "laptop", Passphrase: "quiet-Harbor-lantern-93"}

	reg, err := svc.Register(ctx, req)
	if err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	if reg.Profile.ID != 1 || reg.Profile.Name != "laptop" {
		t.Errorf("Register() profile = %+v", reg.Profile)
	}

	claims, err := crypto.ParseProfileToken(reg.Token, testSecret)
	if err != nil {
		t.Fatalf("token does not parse: %v", err)
	}
	if claims.ProfileID != 1 {
		t.Errorf("token profile id = %d, want 1", claims.ProfileID)
	}

	login, err := svc.Login(ctx, model.ProfileRequest{Name: " laptop ", Passphrase: req.Passphrase})
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	if login.Profile.ID != 1 {
		t.Errorf("Login() profile id = %d, want 1", login.Profile.ID)
	}

	got, err := svc.Get(ctx, 1)
	if err != nil || got.Name != "laptop" {
		t.Errorf("Get() = %+v, %v", got, err)
	}
}

func TestProfileRegisterErrors(t *testing.T) {
	ctx := context.Background()
	svc := NewProfileService(newMemoryProfiles(), testSecret, time.Hour)
	if _, err := svc.Register(ctx, model.ProfileRequest{Name: "desk", Passphrase: "quiet-Harbor-lantern-93"}); err != nil {
		t.Fatalf("seeding profile: %v", err)
	}

	tests := []struct {
		name    string
		req     model.ProfileRequest
		wantErr error
	}{
		{"missing name", model.ProfileRequest{Name: "  ", Passphrase: "quiet-Harbor-lantern-93"}, ErrNameRequired},
		{"missing passphrase", model.ProfileRequest{Name: "phone"}, ErrPassphraseRequired},
		{"weak passphrase", model.ProfileRequest{Name: "phone", Passphrase: "password"}, ErrPassphraseTooWeak},
		{"duplicate name", model.ProfileRequest{Name: "desk", Passphrase: "other-Meadow-copper-71"}, ErrNameTaken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Register() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestProfileLoginInvalidCredentials(t *testing.T) {
	ctx := context.Background()
	svc := NewProfileService(newMemoryProfiles(), testSecret, time.Hour)
	if _, err := svc.Register(ctx, model.ProfileRequest{Name: "desk", Passphrase: "quiet-Harbor-lantern-93"}); err != nil {
		t.Fatalf("seeding profile: %v", err)
	}

	for _, req := range []model.ProfileRequest{
		{Name: "desk", Passphrase: "wrong-passphrase"},
		{Name: "nobody", Passphrase: "quiet-Harbor-lantern-93"},
	} {
		if _, err := svc.Login(ctx, req); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Login(%q) error = %v, want ErrInvalidCredentials", req.Name, err)
		}
	}
}
