// Package score implements the voice surgery this tool exists for:
// extracting a single named voice out of a closed-score choral arrangement,
// propagating lyrics between voices, and re-assembling the result as a
// 4-part open score.
//
// All operations work on clones; the input score is never mutated.
package score
