package auth

import (
	"context"
	"strings"

	"shop-demo/internal/domain"
)

// BearerScheme is the only accepted authorization scheme. It is case-sensitive.
const BearerScheme = "Bearer"

// PrincipalResolver turns an Authorization header value into a Principal.
// It is stateless and safe for concurrent use.
type PrincipalResolver struct {
	codec TokenCodec
}

func NewPrincipalResolver(codec TokenCodec) *PrincipalResolver {
	return &PrincipalResolver{codec: codec}
}

// Resolve verifies the header value. It fails with a *domain.UnauthorizedError
// wrapping ErrMissingCredentials, ErrMalformedCredentials or ErrInvalidToken.
func (r *PrincipalResolver) Resolve(ctx context.Context, header string) (domain.Principal, error) {
	if header == "" {
		return domain.Principal{}, domain.ErrUnauthorized(domain.ErrMissingCredentials,
			"unauthorized: authorization header is required")
	}

	token, err := ExtractBearer(header)
	if err != nil {
		return domain.Principal{}, err
	}

	claims, err := r.codec.Verify(ctx, token)
	if err != nil {
		return domain.Principal{}, domain.ErrUnauthorized(domain.ErrInvalidToken,
			"unauthorized: %v", err)
	}

	return domain.Principal{Username: claims.Subject}, nil
}

// ExtractBearer returns the token of a "Bearer <token>" value: exact scheme,
// a single space and a token without whitespace.
func ExtractBearer(header string) (string, error) {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || scheme != BearerScheme || token == "" || strings.ContainsAny(token, " \t\r\n") {
		return "", domain.ErrUnauthorized(domain.ErrMalformedCredentials,
			"unauthorized: authorization header must have the form %q", BearerScheme+" <token>")
	}
	return token, nil
}
