package middleware

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v4"
)

const (
	jwtClaimUsername = "username"
	jwtClaimRole     = "role"
)

func claimsFromContext(ctx context.Context) (jwt.MapClaims, error) {
	claims, ok := ctx.Value(claimsContextKey).(jwt.MapClaims)
	if !ok {
		return nil, errors.New("admin claims not found in context or invalid type")
	}
	return claims, nil
}

func GetUsernameFromContext(ctx context.Context) (string, error) {
	claims, err := claimsFromContext(ctx)
	if err != nil {
		return "", err
	}

	usernameClaim, ok := claims[jwtClaimUsername]
	if !ok {
		return "", fmt.Errorf("missing %q claim in token", jwtClaimUsername)
	}
	username, ok := usernameClaim.(string)
	if !ok || username == "" {
		return "", fmt.Errorf("invalid %q claim in token", jwtClaimUsername)
	}
	return username, nil
}

func GetRoleFromContext(ctx context.Context) (string, error) {
	claims, err := claimsFromContext(ctx)
	if err != nil {
		return "", err
	}

	roleClaim, ok := claims[jwtClaimRole]
	if !ok {
		return "", fmt.Errorf("missing %q claim in token", jwtClaimRole)
	}
	role, ok := roleClaim.(string)
	if !ok || role == "" {
		return "", fmt.Errorf("invalid %q claim in token", jwtClaimRole)
	}
	return role, nil
}
