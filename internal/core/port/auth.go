package port

import "github.com/refitlab/refitmarket/internal/core/domain"

// TokenPayload carries the member identity and nothing else. Balance and
// level live in the authoritative store and are re-fetched on every
// mutating operation.
type TokenPayload struct {
	MemberID uint64
}

//go:generate mockgen -source=auth.go -destination=mock/auth.go -package=mock
type TokenService interface {
	CreateToken(member *domain.Member) (string, error)
	VerifyToken(token string) (*TokenPayload, error)
}
