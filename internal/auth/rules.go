package auth

import (
	"regexp"
	"strings"
)

// RuleTable is an ordered set of exclusion rules deciding whether a request
// may bypass authentication. Evaluation order is static literals, then
// full-match regexes, then GET-only collection prefixes; first match wins.
// Reserved paths are never excluded, regardless of method.
//
// Every rule tolerates the optional route prefix: the same logical path may
// arrive prefixed (through the gateway) or unprefixed (direct call).
type RuleTable struct {
	prefix   string
	static   []string
	dynamic  []*regexp.Regexp
	getOnly  []string
	reserved map[string]struct{}
}

// NewRuleTable builds a table. Static entries and GET-only prefixes are
// logical (prefix-free) paths; dynamic entries are regex sources matched
// against the full path, anchored on both ends.
func NewRuleTable(routePrefix string, static, dynamic, getOnlyPrefixes []string, reserved ...string) *RuleTable {
	t := &RuleTable{
		prefix:   strings.TrimSuffix(routePrefix, "/"),
		static:   make([]string, 0, len(static)),
		dynamic:  make([]*regexp.Regexp, 0, len(dynamic)),
		getOnly:  make([]string, 0, len(getOnlyPrefixes)),
		reserved: make(map[string]struct{}, len(reserved)),
	}
	for _, s := range static {
		t.static = append(t.static, strings.TrimSuffix(s, "/"))
	}
	optionalPrefix := ""
	if t.prefix != "" {
		optionalPrefix = "(?:" + regexp.QuoteMeta(t.prefix) + ")?"
	}
	for _, d := range dynamic {
		t.dynamic = append(t.dynamic, regexp.MustCompile("^"+optionalPrefix+d+"$"))
	}
	for _, p := range getOnlyPrefixes {
		t.getOnly = append(t.getOnly, strings.TrimSuffix(p, "/"))
	}
	for _, r := range reserved {
		t.reserved[strings.TrimSuffix(r, "/")] = struct{}{}
	}
	return t
}

// Excluded reports whether the request may bypass authentication.
func (t *RuleTable) Excluded(method, path string) bool {
	logical := t.normalize(path)

	if _, ok := t.reserved[logical]; ok {
		return false
	}

	for _, s := range t.static {
		if logical == s {
			return true
		}
	}

	for _, re := range t.dynamic {
		if re.MatchString(path) || re.MatchString(logical) {
			return true
		}
	}

	if method == "GET" {
		for _, p := range t.getOnly {
			if logical == p || strings.HasPrefix(logical, p+"/") {
				return true
			}
		}
	}

	return false
}

// normalize strips the optional route prefix and any trailing slash.
func (t *RuleTable) normalize(path string) string {
	if t.prefix != "" && strings.HasPrefix(path, t.prefix) {
		rest := path[len(t.prefix):]
		if rest == "" || strings.HasPrefix(rest, "/") {
			path = rest
		}
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}

// Route prefixes under which the gateway exposes each service. The services
// also accept their logical paths without the prefix.
const (
	PersonsRoutePrefix       = "/persons-service"
	FlightsRoutePrefix       = "/flights-service"
	AircraftRoutePrefix      = "/aircraft-service"
	ReservationsRoutePrefix  = "/reservations-service"
	PaymentsRoutePrefix      = "/payments-service"
	NotificationsRoutePrefix = "/notifications-service"
)

// CurrentPrincipalPath is the reserved endpoint that always requires
// authentication, even though it sits under a public GET prefix.
const CurrentPrincipalPath = "/api/persons/me"

// PersonsRules is the exclusion table of the persons service. Login, the
// unauthenticated account-creation endpoints and the docs surface are open;
// reads on the identity collections are open; /me never is.
func PersonsRules() *RuleTable {
	return NewRuleTable(
		PersonsRoutePrefix,
		[]string{
			"/api/persons/login",
			"/api/users/save",
			"/api/admins/save",
			"/swagger/index.html",
			"/api-docs",
		},
		[]string{
			`/api/persons/email/[^/]+`,
			`/api/persons/update/\d+`,
			`/api/persons/update-password/\d+`,
			`/swagger/.+`,
			`/api-docs/.+`,
		},
		[]string{"/api/users", "/api/admins", "/api/employees", "/api/persons"},
		CurrentPrincipalPath,
	)
}

// FlightsRules is the exclusion table of the flights service.
func FlightsRules() *RuleTable {
	return crudRules(FlightsRoutePrefix, "/api/flights")
}

// AircraftRules is the exclusion table of the aircraft service.
func AircraftRules() *RuleTable {
	return crudRules(AircraftRoutePrefix, "/api/aircraft")
}

// ReservationsRules is the exclusion table of the reservations service.
func ReservationsRules() *RuleTable {
	return crudRules(ReservationsRoutePrefix, "/api/reservations")
}

// PaymentsRules is the exclusion table of the payments service.
func PaymentsRules() *RuleTable {
	return crudRules(PaymentsRoutePrefix, "/api/payments")
}

// NotificationsRules is the exclusion table of the notifications service.
func NotificationsRules() *RuleTable {
	return crudRules(NotificationsRoutePrefix, "/api/notifications")
}

// crudRules builds the common table of a plain CRUD service: docs open,
// collection reads open, writes authenticated.
func crudRules(routePrefix, collection string) *RuleTable {
	return NewRuleTable(
		routePrefix,
		[]string{"/swagger/index.html", "/api-docs"},
		[]string{`/swagger/.+`, `/api-docs/.+`},
		[]string{collection},
	)
}
