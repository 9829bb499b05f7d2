package domain

import "time"

// TokenKind distinguishes the two bearer credentials the service issues.
// Access tokens authorize note operations; refresh tokens can only mint
// new access tokens.
type TokenKind string

const (
	TokenKindAccess  TokenKind = "access"
	TokenKindRefresh TokenKind = "refresh"
)

// RefreshTokenTTL is fixed; only the access token lifetime is configurable.
const RefreshTokenTTL = 30 * 24 * time.Hour
