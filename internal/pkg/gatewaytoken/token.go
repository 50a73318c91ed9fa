// Package gatewaytoken parses the pre-authenticated connection tokens
// the API gateway mints for WebSocket clients. A token is
// "<secret>:<tenant>:<app>:<userID>"; the secret is shared between the
// gateway and this service. Full credential verification happens at the
// gateway, this layer only checks the token came from it.
package gatewaytoken

import (
	"context"
	"crypto/subtle"
	"errors"
	"strconv"
	"strings"

	"dispatch/internal/entities"
	"dispatch/internal/handlers/ws/connect"
)

var ErrInvalidToken = errors.New("invalid gateway token")

type Authenticator struct {
	secret string
}

func New(secret string) *Authenticator {
	return &Authenticator{secret: secret}
}

func (a *Authenticator) Authenticate(_ context.Context, token string) (*connect.Principal, error) {
	parts := strings.Split(token, ":")
	if len(parts) != 4 {
		return nil, ErrInvalidToken
	}

	if subtle.ConstantTimeCompare([]byte(parts[0]), []byte(a.secret)) != 1 {
		return nil, ErrInvalidToken
	}

	tenant := entities.Tenant(parts[1])
	appType := entities.AppType(parts[2])
	userID, err := strconv.ParseInt(parts[3], 10, 64)
	if err != nil || userID <= 0 || !tenant.Valid() || !appType.Valid() {
		return nil, ErrInvalidToken
	}

	return &connect.Principal{
		UserID:  userID,
		Tenant:  tenant,
		AppType: appType,
	}, nil
}
