// Package leaderboard ranks winning games per built-in difficulty.
//
// Each difficulty keeps its 25 fastest completion times, fastest first with
// ties broken by which win came earlier. Custom board configurations are
// not ranked since their times aren't comparable.
//
// The store is safe for concurrent use and can optionally persist its
// boards to a JSON file so rankings survive server restarts.
package leaderboard
