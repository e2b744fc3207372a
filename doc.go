// Package burrow finds the least energy needed to sort amphipods into their
// side rooms, and everything around that search: parsing diagrams, walking
// the state space, batching puzzles and reporting metrics.
//
// 🚀 What is in here?
//
//	• amphipod/ — Kind, Room, Hallway and State: the comparable burrow value
//	              and the legal-move generator
//	• diagram/  — reads and unfolds the ASCII burrow diagram
//	• dijkstra/ — uniform-cost search for the minimum energy (and its moves)
//	• bfs/      — breadth-first walk by move count, with per-level counts
//	• batch/    — many puzzles across a bounded worker pool
//	• metrics/  — Prometheus collectors for search statistics
//	• config/   — YAML configuration and logger construction
//	• cmd/burrow — the command-line front end
//
// Quick example:
//
//	#############
//	#...........#
//	###B#C#B#D###
//	  #A#D#C#A#
//	  #########
//
// needs 12521 energy; with the two hidden rows unfolded, 44169.
//
//	go run ./cmd/burrow solve --both puzzle.txt
package burrow
