package dto_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"tzbot/internal/domains/timezone/model/dto"
)

func TestSetTimezoneRequest_FromRequest(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		wantUser string
		wantTZ   string
	}{
		{name: "plain", target: "/set-timezone?user=Alice&tz=Europe/London", wantUser: "alice", wantTZ: "Europe/London"},
		{name: "encoded slash", target: "/set-timezone?user=BOB&tz=America%2FNew_York", wantUser: "bob", wantTZ: "America/New_York"},
		{name: "double encoded", target: "/set-timezone?user=bob&tz=Asia%252FTokyo", wantUser: "bob", wantTZ: "Asia/Tokyo"},
		{name: "surrounding spaces", target: "/set-timezone?user=carol&tz=%20UTC%20", wantUser: "carol", wantTZ: "UTC"},
		{name: "undecodable kept", target: "/set-timezone?user=dave&tz=Europe%25zz", wantUser: "dave", wantTZ: "Europe%zz"},
		{name: "bad escape kept raw", target: "/set-timezone?user=alice&tz=Europe%zzLondon", wantUser: "alice", wantTZ: "Europe%zzLondon"},
		{name: "bad escape in user", target: "/set-timezone?user=al%zzice&tz=UTC", wantUser: "al%zzice", wantTZ: "UTC"},
		{name: "missing", target: "/set-timezone", wantUser: "", wantTZ: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.SetTimezoneRequest{}
			req.FromRequest(httptest.NewRequest("GET", tt.target, nil))

			assert.Equal(t, tt.wantUser, req.User)
			assert.Equal(t, tt.wantTZ, req.Timezone)

			record := req.ToModel()
			assert.Equal(t, tt.wantUser, record.Username)
			assert.Equal(t, tt.wantTZ, record.Timezone)
		})
	}
}

func TestUserRequest_FromRequest(t *testing.T) {
	req := dto.UserRequest{}
	req.FromRequest(httptest.NewRequest("GET", "/get-timezone?user=MiXeD", nil))

	assert.Equal(t, "mixed", req.User)
}

func TestQueryValue(t *testing.T) {
	r := httptest.NewRequest("GET", "/get-timezone?user=Eve&user=Mallory&tz=%zz&note", nil)

	assert.Equal(t, "Eve", dto.QueryValue(r, "user"))
	assert.Equal(t, "%zz", dto.QueryValue(r, "tz"))
	assert.Equal(t, "", dto.QueryValue(r, "note"))
	assert.Equal(t, "", dto.QueryValue(r, "absent"))
}

func TestLocalTimes_String(t *testing.T) {
	times := dto.LocalTimes{
		{Username: "alice", Timezone: "Europe/London", Time: "14:05", Resolved: true},
		{Username: "bob", Timezone: "Gone/Zone"},
		{Username: "carol", Timezone: "Asia/Tokyo", Time: "23:05", Resolved: true},
	}

	assert.Equal(t, "alice: Europe/London (14:05) | bob: Gone/Zone | carol: Asia/Tokyo (23:05)", times.String())
	assert.Equal(t, "", dto.LocalTimes{}.String())
}

func TestMessages(t *testing.T) {
	assert.Equal(t, "alice, your timezone (Europe/London) has been saved ✅", dto.MessageSaved("alice", "Europe/London"))
	assert.Equal(t, "alice, invalid timezone. Example: Europe/London or America/New_York", dto.MessageInvalidTimezone("alice"))
	assert.Equal(t, "alice has not set a timezone.", dto.MessageNotSet("alice"))
	assert.Equal(t, "The local time for alice (Europe/London) is 02:05 PM ⏰", dto.MessageLocalTime("alice", "Europe/London", "02:05 PM"))
	assert.Equal(t, "alice, your timezone has been cleared 🗑️", dto.MessageCleared("alice"))
}
