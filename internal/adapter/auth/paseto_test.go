package auth_test

import (
	"testing"

	"github.com/refitlab/refitmarket/internal/adapter/auth"
	"github.com/refitlab/refitmarket/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestPasetoToken_RoundTrip(t *testing.T) {
	ts, err := auth.New()
	assert.NoError(t, err)

	member := domain.Member{ID: 42, Email: "m@example.com", Nickname: "m"}

	token, err := ts.CreateToken(&member)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	payload, err := ts.VerifyToken(token)
	assert.NoError(t, err)
	assert.Equal(t, member.ID, payload.MemberID)
}

func TestPasetoToken_RejectsGarbage(t *testing.T) {
	ts, err := auth.New()
	assert.NoError(t, err)

	_, err = ts.VerifyToken("v4.local.not-a-token")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestPasetoToken_RejectsForeignKey(t *testing.T) {
	issuer, err := auth.New()
	assert.NoError(t, err)
	verifier, err := auth.New()
	assert.NoError(t, err)

	token, err := issuer.CreateToken(&domain.Member{ID: 42})
	assert.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}
