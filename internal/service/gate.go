package service

import (
	"crypto/subtle"
	"strings"

	"github.com/brewboard/brewboard/internal/auth"
	"github.com/brewboard/brewboard/internal/logger"
	"github.com/brewboard/brewboard/internal/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AccessGate exchanges the shared staff passcode for a capability token.
type AccessGate struct {
	passcode string
	token    *auth.CapabilityToken
}

// NewAccessGate creates new AccessGate instance. The configured passcode
// may be plaintext or a bcrypt hash of the passcode.
func NewAccessGate(passcode string, token *auth.CapabilityToken) *AccessGate {
	return &AccessGate{
		passcode: passcode,
		token:    token,
	}
}

// Authenticate returns a capability token iff code matches the configured
// passcode. A missing configured passcode denies every attempt.
func (ag *AccessGate) Authenticate(code string) (string, error) {
	if ag.passcode == "" || !ag.match(code) {
		logger.Log.Warn("passcode authentication failed")
		return "", models.ErrAccessDenied
	}

	token, err := ag.token.Create()
	if err != nil {
		return "", err
	}

	logger.Log.Info("capability issued")
	return token, nil
}

func (ag *AccessGate) match(code string) bool {
	if strings.HasPrefix(ag.passcode, "$2a$") || strings.HasPrefix(ag.passcode, "$2b$") {
		return bcrypt.CompareHashAndPassword([]byte(ag.passcode), []byte(code)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(ag.passcode), []byte(code)) == 1
}

// Verify validates a previously issued capability token.
func (ag *AccessGate) Verify(tokenString string) (*models.CapabilityPayload, error) {
	payload, err := ag.token.Verify(tokenString)
	if err != nil {
		logger.Log.Debug("capability rejected", zap.Error(err))
		return nil, models.ErrAccessDenied
	}
	return payload, nil
}
