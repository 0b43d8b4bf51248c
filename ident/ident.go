// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ident

import (
	"encoding/binary"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// suffixLen is the number of base36 characters in an option id's random suffix
const suffixLen = 9

// UserID derives a user's id from their display name
func UserID(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// OptionID creates a unique option id: {weekID}-{unix millis}-{random base36}.
// Ids are unique but not globally ordered.
func OptionID(weekID string, now time.Time) string {
	return weekID + "-" + strconv.FormatInt(now.UnixMilli(), 10) + "-" + randomSuffix()
}

// randomSuffix returns suffixLen base36 characters drawn from a random UUID
func randomSuffix() string {
	u := uuid.New()
	num := binary.BigEndian.Uint64(u[:8])

	s := strconv.FormatUint(num, 36)
	if len(s) < suffixLen {
		s = strings.Repeat("0", suffixLen-len(s)) + s
	}
	return s[len(s)-suffixLen:]
}
