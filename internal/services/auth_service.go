package services

import (
	"context"
	"fmt"

	authorizer "github.com/localnerve/authorizer-go"
	"github.com/localnerve/swipefile/internal/config"
	"github.com/localnerve/swipefile/internal/logger"
	"github.com/localnerve/swipefile/internal/utils"
)

// SessionValidator checks an authorizer session cookie against roles
type SessionValidator interface {
	ValidateSession(cookie string, roles []string) (map[string]interface{}, error)
}

// Authorizer validates sessions with an Authorizer server
type Authorizer struct {
	client *authorizer.AuthorizerClient
}

// NewAuthorizer pings the Authorizer server and builds a client for it
func NewAuthorizer(ctx context.Context, cfg *config.Config, redirectURL string, log *logger.Logger) (*Authorizer, error) {
	if err := utils.PingAuthorizer(ctx, cfg.AuthzURL); err != nil {
		return nil, fmt.Errorf("authorizer ping failed: %w", err)
	}

	log.Info("initializing authorizer", "authorizerUrl", cfg.AuthzURL, "clientId", cfg.AuthzClientID, "redirectUrl", redirectURL)
	client, err := authorizer.NewAuthorizerClient(cfg.AuthzClientID, cfg.AuthzURL, redirectURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create authorizer client: %w", err)
	}
	return &Authorizer{client: client}, nil
}

// ValidateSession validates a session cookie for the given roles
func (a *Authorizer) ValidateSession(cookie string, roles []string) (map[string]interface{}, error) {
	rolesPtrs := make([]*string, len(roles))
	for i := range roles {
		rolesPtrs[i] = &roles[i]
	}

	res, err := a.client.ValidateSession(&authorizer.ValidateSessionInput{
		Cookie: cookie,
		Roles:  rolesPtrs,
	})
	if err != nil {
		return nil, fmt.Errorf("session validation failed: %w", err)
	}
	if res == nil || !res.IsValid {
		return nil, fmt.Errorf("session is not valid")
	}

	return map[string]interface{}{
		"is_valid": res.IsValid,
		"user":     res.User,
	}, nil
}
