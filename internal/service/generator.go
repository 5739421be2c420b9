package service

import (
	"errors"
	"math"

	"github.com/securepass/securepass-go/internal/crypto"
	"github.com/securepass/securepass-go/internal/model"
	"github.com/securepass/securepass-go/internal/strength"
)

var ErrPasswordRequired = errors.New("password is required")

// GeneratorService handles password generation and rating.
type GeneratorService struct {
	gen crypto.Generator
}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService() *GeneratorService {
	return &GeneratorService{}
}

// Generate produces a password based on the given request and rates it.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := optionsFromRequest(req)

	password, err := s.gen.Generate(opts)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
		Strength: strength.Score(password).String(),
		Crack:    crackTimes(strength.EstimateCrackTime(password, opts)),
	}, nil
}

// Estimate rates an existing password. Without options the charset is
// inferred from the classes the password contains.
func (s *GeneratorService) Estimate(req model.EstimateRequest) (model.EstimateResponse, error) {
	if req.Password == "" {
		return model.EstimateResponse{}, ErrPasswordRequired
	}

	var opts crypto.GeneratorOptions
	if req.Options != nil {
		opts = optionsFromRequest(*req.Options)
	} else {
		opts = inferOptions(req.Password)
	}

	est := strength.EstimateCrackTime(req.Password, opts)
	return model.EstimateResponse{
		Length:       len([]rune(req.Password)),
		Strength:     strength.Score(req.Password).String(),
		PatternScore: strength.PatternScore(req.Password),
		Crack:        crackTimes(est),
	}, nil
}

func optionsFromRequest(req model.GenerateRequest) crypto.GeneratorOptions {
	opts := crypto.GeneratorOptions{
		Length:         req.Length,
		Uppercase:      boolOrDefault(req.Uppercase, true),
		Lowercase:      boolOrDefault(req.Lowercase, true),
		Numbers:        boolOrDefault(req.Numbers, true),
		Symbols:        boolOrDefault(req.Symbols, true),
		ExcludeSimilar: boolOrDefault(req.ExcludeSimilar, false),
	}
	if opts.Length == 0 {
		opts.Length = model.DefaultSettings().Length
	}
	return opts
}

func inferOptions(password string) crypto.GeneratorOptions {
	var opts crypto.GeneratorOptions
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			opts.Uppercase = true
		case r >= 'a' && r <= 'z':
			opts.Lowercase = true
		case r >= '0' && r <= '9':
			opts.Numbers = true
		default:
			opts.Symbols = true
		}
	}
	opts.Length = len([]rune(password))
	return opts
}

func crackTimes(est strength.CrackEstimate) model.CrackTimes {
	return model.CrackTimes{
		Online:         est.Online,
		Offline:        est.Offline,
		OnlineSeconds:  finite(est.OnlineSeconds),
		OfflineSeconds: finite(est.OfflineSeconds),
		CharsetSize:    est.CharsetSize,
	}
}

// finite returns nil for values JSON cannot carry.
func finite(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
