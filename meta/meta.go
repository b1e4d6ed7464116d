// meta/meta.go
package meta

// DEPTH defines the default search depth of computer players.
const DEPTH = 5

// MAX_TURNS bounds the moves of one game. Every move fills a cell, so a game
// from the opening position ends well before this.
const MAX_TURNS = 64

// GAMES defines the number of games played per experiment matchup.
const GAMES = 10

// GO_ROUTINES defines the number of games an experiment plays at once.
const GO_ROUTINES = 4
