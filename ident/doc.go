// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ident generates identifiers for users and options.

# User IDs

User ids are the lowercased display name:

	ident.UserID("Fjordi") // "fjordi"

# Option IDs

Option ids combine the week, a millisecond timestamp and a random suffix:

	id := ident.OptionID("2025-W42", time.Now())
	// 2025-W42-1760727600000-k3j9x0q2a

The suffix is nine base36 characters taken from a random UUID, so two options
created in the same millisecond still collide with negligible probability.
*/
package ident
