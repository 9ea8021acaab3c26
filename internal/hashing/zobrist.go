package hashing

import "github.com/lgbarn/movecheck/internal/chess"

// zobristSeed fixes the key table so hashes are stable between runs.
const zobristSeed = 0x6d6f7665636b

// pieceKeys holds one random key per (colour, piece, square).
var pieceKeys [2][len(chess.Kinds) + 1][chess.NumSquares]uint64

func init() {
	state := uint64(zobristSeed)
	for c := range pieceKeys {
		for p := 1; p <= len(chess.Kinds); p++ {
			for sq := range pieceKeys[c][p] {
				pieceKeys[c][p][sq] = splitmix64(&state)
			}
		}
	}
}

// splitmix64 advances state and returns the next pseudo-random value.
func splitmix64(state *uint64) uint64 {
	*state += 0x9e3779b97f4a7c15
	z := *state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// GenerateZobristHash returns the Zobrist hash of the piece placement.
// Equal placements always hash equal.
func GenerateZobristHash(board *chess.Board) uint64 {
	var h uint64
	for sq, o := range board.Squares {
		if o.IsEmpty() {
			continue
		}
		h ^= pieceKeys[o.Colour][o.Piece][sq]
	}
	return h
}

// WeakHash is a cheap order-sensitive checksum of the placement, used as a
// second opinion when two Zobrist hashes collide.
func WeakHash(board *chess.Board) uint32 {
	var h uint32
	for sq, o := range board.Squares {
		if o.IsEmpty() {
			continue
		}
		h = h*31 + uint32(sq)<<8 + uint32(o.Letter())
	}
	return h
}
