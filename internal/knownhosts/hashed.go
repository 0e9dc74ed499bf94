// Copyright (c) 2026 Keymaster Team
// ssr - SSH known_hosts manager
// This source code is licensed under the MIT license found in the LICENSE file.

package knownhosts

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"strings"
)

const hashMagic = "|1|"

// matchHashed reports whether token is a hashed hostname ("|1|salt|hash",
// as written with HashKnownHosts) of the already normalized host.
func matchHashed(token, normalized string) bool {
	if !strings.HasPrefix(token, hashMagic) {
		return false
	}
	parts := strings.Split(token[len(hashMagic):], "|")
	if len(parts) != 2 {
		return false
	}
	salt, err := base64.StdEncoding.DecodeString(parts[0])
	if err != nil {
		return false
	}
	want, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return false
	}
	mac := hmac.New(sha1.New, salt)
	mac.Write([]byte(normalized))
	return hmac.Equal(mac.Sum(nil), want)
}
