package dto

import (
	"net/http"
	"net/url"
	"strings"

	"tzbot/internal/domains/timezone/model"
	"tzbot/shared/constant"
)

// NormalizeUsername lowercases a username the way it is keyed in the store.
func NormalizeUsername(user string) string {
	return strings.ToLower(user)
}

// DecodeTimezone undoes one more level of percent-encoding on an already
// decoded query value and trims it. Values that do not decode are kept as-is.
func DecodeTimezone(tz string) string {
	if decoded, err := url.PathUnescape(tz); err == nil {
		tz = decoded
	}

	return strings.TrimSpace(tz)
}

// QueryValue returns the first value of key in the request query. Pairs that
// url.ParseQuery drops for a bad escape are read from the raw query instead,
// keeping their undecodable text.
func QueryValue(r *http.Request, key string) string {
	query := r.URL.Query()
	if query.Has(key) {
		return query.Get(key)
	}

	for pair := range strings.SplitSeq(r.URL.RawQuery, "&") {
		rawKey, rawValue, _ := strings.Cut(pair, "=")
		if unescape(rawKey) == key {
			return unescape(rawValue)
		}
	}

	return ""
}

func unescape(s string) string {
	if decoded, err := url.QueryUnescape(s); err == nil {
		return decoded
	}

	return s
}

type SetTimezoneRequest struct {
	User     string `query:"user" validate:"required"`
	Timezone string `query:"tz" validate:"required"`
}

func (s *SetTimezoneRequest) FromRequest(r *http.Request) {
	s.User = NormalizeUsername(QueryValue(r, constant.RequestParamUser))
	s.Timezone = DecodeTimezone(QueryValue(r, constant.RequestParamTimezone))
}

func (s *SetTimezoneRequest) ToModel() model.Timezone {
	return model.Timezone{
		Username: s.User,
		Timezone: s.Timezone,
	}
}

type UserRequest struct {
	User string `query:"user"`
}

func (u *UserRequest) FromRequest(r *http.Request) {
	u.User = NormalizeUsername(QueryValue(r, constant.RequestParamUser))
}

// LocalTime is one user's zone with the current time rendered in it.
// Resolved is false when the zone could not be loaded and Time is empty.
type LocalTime struct {
	Username string `json:"username"`
	Timezone string `json:"timezone"`
	Time     string `json:"time,omitempty"`
	Resolved bool   `json:"resolved"`
}

func (l LocalTime) String() string {
	if !l.Resolved {
		return l.Username + ": " + l.Timezone
	}

	return l.Username + ": " + l.Timezone + " (" + l.Time + ")"
}

type LocalTimes []LocalTime

func (l LocalTimes) String() string {
	entries := make([]string, len(l))
	for i, entry := range l {
		entries[i] = entry.String()
	}

	return strings.Join(entries, " | ")
}
