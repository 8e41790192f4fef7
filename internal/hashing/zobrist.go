// Package hashing provides Zobrist position keys and a node-count cache
// for perft.
package hashing

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// zobristSeed fixes the key tables so keys are stable between runs.
const zobristSeed uint64 = 0x9E3779B97F4A7C15

var (
	pieceKeys     [2][chess.King + 1][chess.BoardSize][chess.BoardSize]uint64
	castlingKeys  [2][2]uint64
	enPassantKeys [chess.BoardSize]uint64
	whiteToMove   uint64
)

func init() {
	state := zobristSeed
	for colour := range pieceKeys {
		for t := chess.Pawn; t <= chess.King; t++ {
			for rank := 0; rank < chess.BoardSize; rank++ {
				for file := 0; file < chess.BoardSize; file++ {
					pieceKeys[colour][t][rank][file] = splitmix64(&state)
				}
			}
		}
	}
	for colour := range castlingKeys {
		for side := range castlingKeys[colour] {
			castlingKeys[colour][side] = splitmix64(&state)
		}
	}
	for file := range enPassantKeys {
		enPassantKeys[file] = splitmix64(&state)
	}
	whiteToMove = splitmix64(&state)
}

// splitmix64 advances state and returns the next pseudo-random value.
func splitmix64(state *uint64) uint64 {
	*state += 0x9E3779B97F4A7C15
	z := *state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// GenerateZobristHash computes the Zobrist key of a position from scratch.
// Positions that differ in placement, side to move, castling rights or en
// passant file get different keys with overwhelming probability.
func GenerateZobristHash(board *chess.Board) uint64 {
	var key uint64
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			p := board.Squares[rank][file]
			if p == chess.NoPiece {
				continue
			}
			key ^= pieceKeys[p.Colour()][p.Type()][rank][file]
		}
	}
	for colour := range castlingKeys {
		for side := range castlingKeys[colour] {
			if board.Castling[colour][side] {
				key ^= castlingKeys[colour][side]
			}
		}
	}
	if board.CanEnPassant() {
		key ^= enPassantKeys[board.EnPassant.File]
	}
	if board.ToMove == chess.White {
		key ^= whiteToMove
	}
	return key
}
