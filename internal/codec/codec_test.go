package codec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidIP(t *testing.T) {
	tests := []struct {
		ip   string
		want bool
	}{
		{"192.168.1.55", true},
		{"8.8.8.8", true},
		{"999.1.1.1", true},
		{"1.2.3", false},
		{"1.2.3.4.5", false},
		{"1+2.3.4.5", false},
		{"::1", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidIP(tt.ip), tt.ip)
	}
}

func TestIsPrivateIP(t *testing.T) {
	assert.True(t, IsPrivateIP("127.0.0.1"))
	assert.True(t, IsPrivateIP("10.1.2.3"))
	assert.True(t, IsPrivateIP("192.168.0.10"))
	assert.True(t, IsPrivateIP("172.16.4.4"))
	assert.True(t, IsPrivateIP("172.31.255.1"))
	assert.False(t, IsPrivateIP("172.32.0.1"))
	assert.False(t, IsPrivateIP("8.8.8.8"))
}

func TestAnonymizeIP(t *testing.T) {
	assert.Equal(t, "192.168.1.0", AnonymizeIP("192.168.1.55"))
	assert.Equal(t, "10.0.0.0", AnonymizeIP("10.0.0.255"))
	assert.Equal(t, "", AnonymizeIP(""))
	assert.Equal(t, "", AnonymizeIP("not-an-ip"))
}

func TestParseLocale(t *testing.T) {
	tags, err := ParseLocale("en-US,de;q=0.8,fr;q=0.9")
	require.NoError(t, err)
	assert.Equal(t, []string{"en-us", "fr", "de"}, tags)

	tags, err = ParseLocale("")
	require.NoError(t, err)
	assert.Empty(t, tags)

	_, err = ParseLocale("en-US;q=x")
	assert.Error(t, err)
}

func TestPrimaryLocale(t *testing.T) {
	assert.Equal(t, "de-ch", PrimaryLocale("de-CH, en;q=0.5"))
	assert.Equal(t, "", PrimaryLocale(""))
}

func TestConvertGATimestamp(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{"seconds", "1000000000", time.Date(2001, 9, 9, 1, 46, 40, 0, time.UTC)},
		{"max seconds", "2147483647", time.Date(2038, 1, 19, 3, 14, 7, 0, time.UTC)},
		{"milliseconds", "4000000000000", time.Date(2096, 10, 2, 7, 6, 40, 0, time.UTC)},
		{"small", "4", time.Date(1970, 1, 1, 0, 0, 4, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertGATimestamp(tt.in)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}

	for _, in := range []string{"yesterday", "NaN", "Inf", "-Inf", "1e300", "-1e300"} {
		_, err := ConvertGATimestamp(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestEncodeURIComponent(t *testing.T) {
	assert.Equal(t, "Hello%20World!", EncodeURIComponent("Hello World!"))
	assert.Equal(t, "(a)*'b'", EncodeURIComponent("(a)*'b'"))
	assert.Equal(t, "%2Fhome%3Fx%3D1", EncodeURIComponent("/home?x=1"))
	assert.Equal(t, "a-b_c.d~e", EncodeURIComponent("a-b_c.d~e"))
}

func TestConvertToURIEncoding(t *testing.T) {
	assert.Equal(t, "!*'()%20", ConvertToURIEncoding("%21%2A%27%28%29%20"))
}

func TestHash(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
	}{
		{"", 1},
		{"a", 1589345},
		{"example.com", 60493049},
		{"www.google.com", 145581362},
		{"hello world", 151502496},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Hash(tt.in), tt.in)
	}
}

func TestRandom32(t *testing.T) {
	for i := 0; i < 1000; i++ {
		assert.LessOrEqual(t, Random32(), uint32(MaxID))
	}
}

func TestIsValidAccountID(t *testing.T) {
	assert.True(t, IsValidAccountID("UA-123-1"))
	assert.True(t, IsValidAccountID("MO-9-2"))
	assert.False(t, IsValidAccountID("G-ABC123"))
	assert.False(t, IsValidAccountID(""))
}
