// Package totp generates RFC 6238 time-based one-time codes from base32
// seeds, using the standard 6-digit / 30-second profile.
package totp

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base32"
	"encoding/binary"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/vauthproject/vauth/internal/common"
)

const (
	// Interval is the code validity window in seconds.
	Interval = 30
	// Digits is the code length.
	Digits = 6
)

// DecodeSeed decodes a base32 TOTP seed. Input is case-insensitive and
// missing '=' padding is tolerated. Returns common.ErrInvalidSeed if the
// seed does not decode.
func DecodeSeed(seed string) ([]byte, error) {
	s := strings.ToUpper(strings.TrimSpace(seed))
	if s == "" {
		return nil, common.ErrInvalidSeed
	}
	if n := len(s) % 8; n != 0 {
		s += strings.Repeat("=", 8-n)
	}
	key, err := base32.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, common.ErrInvalidSeed
	}
	return key, nil
}

// Code computes the one-time code for the given seed at time now, along with
// the number of seconds until the current interval ends. The remaining value
// is in (0, Interval].
func Code(seed string, now time.Time) (string, int, error) {
	key, err := DecodeSeed(seed)
	if err != nil {
		return "", 0, err
	}

	counter := uint64(now.Unix() / Interval)
	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], counter)

	mac := hmac.New(sha1.New, key)
	mac.Write(msg[:])
	sum := mac.Sum(nil)

	// RFC 4226 dynamic truncation.
	offset := sum[len(sum)-1] & 0x0f
	code := binary.BigEndian.Uint32(sum[offset:offset+4]) & 0x7fffffff
	code %= 1_000_000

	remaining := Interval - int(now.Unix()%Interval)
	return fmt.Sprintf("%0*d", Digits, code), remaining, nil
}

// ProvisioningURI formats an otpauth:// URI for the given seed, suitable for
// QR rendering and scanning by authenticator apps.
func ProvisioningURI(seed, username, service string) string {
	return fmt.Sprintf("otpauth://totp/%s:%s?secret=%s&issuer=%s",
		url.PathEscape(service), url.PathEscape(username),
		url.QueryEscape(seed), url.QueryEscape(service))
}
