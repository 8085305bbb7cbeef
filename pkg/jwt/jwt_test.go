package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/classicmodels-admin/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func TestJWT_GenerateAndParse_ConRole(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "1002", "murphy@classicmodelcars.com", "admin", time.Hour)
	require.NoError(t, err)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "1002", claims.Subject)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "murphy@classicmodelcars.com", claims.Email)
}

func TestJWT_TokenExpirado_RetornaErrExpired(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "1002", "", "admin", -time.Minute)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.ErrorIs(t, err, pkgjwt.ErrExpired)

	_, err = pkgjwt.Inspect(tok, time.Now())
	assert.ErrorIs(t, err, pkgjwt.ErrExpired)
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "1002", "", "admin", time.Hour)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err)

	// Inspect no verifica firma: el mismo token es legible.
	claims, err := pkgjwt.Inspect(tok, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
}

func TestJWT_InspectTokenOpaco(t *testing.T) {
	_, err := pkgjwt.Inspect("no-es-un-jwt", time.Now())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, pkgjwt.ErrExpired)
}
