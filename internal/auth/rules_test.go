package auth_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aetheris/airline-platform/internal/auth"
)

func TestPersonsRulesExclusions(t *testing.T) {
	t.Parallel()

	rules := auth.PersonsRules()

	cases := []struct {
		name   string
		method string
		path   string
		want   bool
	}{
		{"login open", http.MethodPost, "/api/persons/login", true},
		{"login open through prefix", http.MethodPost, "/persons-service/api/persons/login", true},
		{"login open with trailing slash", http.MethodPost, "/persons-service/api/persons/login/", true},
		{"user signup open", http.MethodPost, "/api/users/save", true},
		{"admin signup open", http.MethodPost, "/api/admins/save", true},
		{"employee signup requires auth", http.MethodPost, "/api/employees/save", false},

		{"me reserved", http.MethodGet, "/api/persons/me", false},
		{"me reserved through prefix", http.MethodGet, "/persons-service/api/persons/me", false},
		{"me reserved with trailing slash", http.MethodGet, "/persons-service/api/persons/me/", false},

		{"email lookup open", http.MethodGet, "/api/persons/email/a@b.c", true},
		{"update matches numeric id", http.MethodPut, "/api/persons/update/12", true},
		{"update rejects non-numeric id", http.MethodPut, "/api/persons/update/12x", false},
		{"update rejects extra segment", http.MethodPut, "/api/persons/update/12/extra", false},
		{"password update matches numeric id", http.MethodPatch, "/api/persons/update-password/9", true},
		{"prefixed regex still matches", http.MethodPut, "/persons-service/api/persons/update/12", true},

		{"collection read open", http.MethodGet, "/api/persons", true},
		{"item read open", http.MethodGet, "/api/persons/12", true},
		{"collection delete requires auth", http.MethodDelete, "/api/persons/delete/12", false},
		{"employees read open", http.MethodGet, "/api/employees", true},

		{"docs index open", http.MethodGet, "/swagger/index.html", true},
		{"docs subtree open", http.MethodGet, "/api-docs/v3/spec.json", true},
		{"unknown path requires auth", http.MethodGet, "/api/other", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, rules.Excluded(tc.method, tc.path), "%s %s", tc.method, tc.path)
		})
	}
}

func TestCrudRulesExclusions(t *testing.T) {
	t.Parallel()

	rules := auth.FlightsRules()

	cases := []struct {
		name   string
		method string
		path   string
		want   bool
	}{
		{"collection read open", http.MethodGet, "/api/flights", true},
		{"item read open", http.MethodGet, "/api/flights/abc-123", true},
		{"prefixed read open", http.MethodGet, "/flights-service/api/flights", true},
		{"create requires auth", http.MethodPost, "/api/flights/save", false},
		{"update requires auth", http.MethodPut, "/api/flights/update/abc-123", false},
		{"docs open", http.MethodGet, "/swagger/index.html", true},
		{"foreign collection requires auth", http.MethodGet, "/api/aircraft", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, rules.Excluded(tc.method, tc.path), "%s %s", tc.method, tc.path)
		})
	}
}

// The exclusion decision is method-sensitive only for the collection-read
// prefixes; the same path flips with the verb.
func TestExclusionMethodSensitivity(t *testing.T) {
	t.Parallel()

	rules := auth.ReservationsRules()
	assert.True(t, rules.Excluded(http.MethodGet, "/api/reservations"))
	assert.False(t, rules.Excluded(http.MethodPost, "/api/reservations"))
	assert.False(t, rules.Excluded(http.MethodDelete, "/api/reservations/7"))
}
