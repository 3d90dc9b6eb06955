// Package match ranks registered member names by similarity to a requested
// one, for "did you mean" hints on failed static lookups.
//
// Key functions:
//   - NormalizeIdent: folds case and separators ("func_int" ~ "FuncInt")
//   - Levenshtein: edit distance between two strings
//   - Suggest: the closest candidates above a similarity threshold
package match
