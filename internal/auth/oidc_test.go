package auth

import (
	"context"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testIssuer = "https://idp.example.com"

func newTestOIDCCodec(t *testing.T, allowed []string) (*OIDCCodec, *rsa.PrivateKey) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	keySet := &oidc.StaticKeySet{PublicKeys: []crypto.PublicKey{&key.PublicKey}}
	return newOIDCCodecFromKeySet(keySet, testIssuer, "shop-api", allowed), key
}

func TestOIDCCodec_Verify(t *testing.T) {
	codec, key := newTestOIDCCodec(t, nil)
	future := time.Now().Add(time.Hour).Unix()

	t.Run("valid", func(t *testing.T) {
		token := makeToken(t, jwt.SigningMethodRS256, key, jwt.MapClaims{
			"sub": "yaho", "iss": testIssuer, "aud": "shop-api", "exp": future,
		})
		claims, err := codec.Verify(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, "yaho", claims.Subject)
		assert.Equal(t, []string{"shop-api"}, claims.Audience)
	})

	t.Run("wrong audience", func(t *testing.T) {
		token := makeToken(t, jwt.SigningMethodRS256, key, jwt.MapClaims{
			"sub": "yaho", "iss": testIssuer, "aud": "other", "exp": future,
		})
		_, err := codec.Verify(context.Background(), token)
		require.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		token := makeToken(t, jwt.SigningMethodRS256, key, jwt.MapClaims{
			"sub": "yaho", "iss": testIssuer, "aud": "shop-api", "exp": time.Now().Add(-time.Hour).Unix(),
		})
		_, err := codec.Verify(context.Background(), token)
		require.Error(t, err)
	})

	t.Run("signed by unknown key", func(t *testing.T) {
		other, err := rsa.GenerateKey(rand.Reader, 2048)
		require.NoError(t, err)
		token := makeToken(t, jwt.SigningMethodRS256, other, jwt.MapClaims{
			"sub": "yaho", "iss": testIssuer, "aud": "shop-api", "exp": future,
		})
		_, err = codec.Verify(context.Background(), token)
		require.Error(t, err)
	})
}

func TestIssuerSet(t *testing.T) {
	t.Parallel()

	assert.Equal(t, map[string]bool{testIssuer: true}, issuerSet(testIssuer, nil))
	assert.Equal(t, map[string]bool{"a": true, "b": true}, issuerSet(testIssuer, []string{"a", "", "b"}))
	assert.Empty(t, issuerSet("", nil))
}
