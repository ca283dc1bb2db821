// Package pipeline turns collected profile data into a rendered document.
//
// Two stages run in order:
//   - Fragment building: list fields (skills, education, projects) are
//     flattened into HTML snippets, one fixed format per item.
//   - Placeholder substitution: each known {{KEY}} token is replaced once,
//     in a fixed key order, each step producing a new string.
//
// User text is inserted verbatim. Nothing is HTML-escaped, so a rendered
// document is only safe to open locally; serving it exposes any markup the
// user typed.
//
// Each placeholder is replaced at its first occurrence only. A template that
// repeats a placeholder keeps the later copies as literal tokens.
package pipeline
