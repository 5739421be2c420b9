package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/securepass/securepass-go/internal/crypto"
	"github.com/securepass/securepass-go/internal/model"
	"github.com/securepass/securepass-go/internal/repository"
	"github.com/securepass/securepass-go/internal/strength"
)

// minPassphraseScore is the lowest zxcvbn score accepted for a profile passphrase.
const minPassphraseScore = 2

var (
	ErrInvalidCredentials = errors.New("invalid profile name or passphrase")
	ErrNameRequired       = errors.New("profile name is required")
	ErrPassphraseRequired = errors.New("passphrase is required")
	ErrPassphraseTooWeak  = errors.New("passphrase is too easy to guess")
	ErrNameTaken          = errors.New("profile name already taken")
)

// ProfileRepository is the persistence the profile service needs.
type ProfileRepository interface {
	Create(ctx context.Context, p *model.Profile) error
	GetByName(ctx context.Context, name string) (*model.Profile, error)
	GetByID(ctx context.Context, id int64) (*model.Profile, error)
}

// ProfileService registers and authenticates settings profiles.
type ProfileService struct {
	repo      ProfileRepository
	jwtSecret string
	jwtExpiry time.Duration
}

func NewProfileService(repo ProfileRepository, secret string, expiry time.Duration) *ProfileService {
	return &ProfileService{
		repo:      repo,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// Register creates a profile and returns a token for it.
func (s *ProfileService) Register(ctx context.Context, req model.ProfileRequest) (model.AuthResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return model.AuthResponse{}, ErrNameRequired
	}
	if req.Passphrase == "" {
		return model.AuthResponse{}, ErrPassphraseRequired
	}
	if strength.PatternScore(req.Passphrase, name) < minPassphraseScore {
		return model.AuthResponse{}, ErrPassphraseTooWeak
	}

	hash, err := crypto.HashPassphrase(req.Passphrase)
	if err != nil {
		return model.AuthResponse{}, err
	}

	p := &model.Profile{Name: name, PassphraseHash: hash, CreatedAt: time.Now().UTC()}
	if err := s.repo.Create(ctx, p); err != nil {
		if errors.Is(err, repository.ErrDuplicateProfile) {
			return model.AuthResponse{}, ErrNameTaken
		}
		return model.AuthResponse{}, err
	}

	return s.authResponse(p)
}

// Login verifies the passphrase and returns a fresh token.
func (s *ProfileService) Login(ctx context.Context, req model.ProfileRequest) (model.AuthResponse, error) {
	p, err := s.repo.GetByName(ctx, strings.TrimSpace(req.Name))
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return model.AuthResponse{}, ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}

	match, err := crypto.VerifyPassphrase(req.Passphrase, p.PassphraseHash)
	if err != nil {
		return model.AuthResponse{}, err
	}
	if !match {
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	return s.authResponse(p)
}

// Get returns the public view of a profile.
func (s *ProfileService) Get(ctx context.Context, id int64) (model.ProfileResponse, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return model.ProfileResponse{}, err
	}
	return profileResponse(p), nil
}

func (s *ProfileService) authResponse(p *model.Profile) (model.AuthResponse, error) {
	token, err := crypto.IssueProfileToken(p.ID, p.Name, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.AuthResponse{}, err
	}
	return model.AuthResponse{Token: token, Profile: profileResponse(p)}, nil
}

func profileResponse(p *model.Profile) model.ProfileResponse {
	return model.ProfileResponse{ID: p.ID, Name: p.Name, CreatedAt: p.CreatedAt}
}
