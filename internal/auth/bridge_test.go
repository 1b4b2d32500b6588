package auth_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aetheris/airline-platform/internal/auth"
	"github.com/aetheris/airline-platform/internal/domain"
)

func TestVerifyAsyncDeliversClaims(t *testing.T) {
	t.Parallel()

	codec := auth.NewTokenCodec("unit-secret", 3600)
	verifier := auth.NewVerifier(codec, 4)

	token, err := codec.Issue(9, domain.RoleAdmin, "a@example.com")
	require.NoError(t, err)

	outcome := <-verifier.VerifyAsync(token)
	require.NoError(t, outcome.Err)
	require.NotNil(t, outcome.Claims)
	assert.Equal(t, int64(9), outcome.Claims.SubjectID)
	assert.Equal(t, "a@example.com", outcome.Claims.Email)
}

func TestVerifyAsyncDeliversRejection(t *testing.T) {
	t.Parallel()

	codec := auth.NewTokenCodec("unit-secret", 3600)
	verifier := auth.NewVerifier(codec, 4)

	outcome := <-verifier.VerifyAsync("not-a-token")
	assert.ErrorIs(t, outcome.Err, auth.ErrInvalidToken)
	assert.Nil(t, outcome.Claims)
}

func TestVerifyAsyncUnderContention(t *testing.T) {
	t.Parallel()

	codec := auth.NewTokenCodec("unit-secret", 3600)
	verifier := auth.NewVerifier(codec, 2)

	token, err := codec.Issue(1, domain.RoleCustomer, "c@example.com")
	require.NoError(t, err)

	var wg sync.WaitGroup
	outcomes := make(chan auth.Outcome, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			outcomes <- <-verifier.VerifyAsync(token)
		}()
	}
	wg.Wait()
	close(outcomes)

	for outcome := range outcomes {
		require.NoError(t, outcome.Err)
		assert.Equal(t, int64(1), outcome.Claims.SubjectID)
	}
}
