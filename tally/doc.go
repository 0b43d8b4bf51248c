// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tally turns vote counts into approval percentages and section winners.

# Approval

Approval is relative to everyone attending that week, not only to voters:

	tally.Approval(2, 3) // 67
	tally.Approval(1, 0) // 0

# Winners

BySection groups a week's options and picks a winner per section: the option
with the most votes, the earliest listed one on ties, and none when nobody
voted in that section.
*/
package tally
