// Package drafting produces filing text in which every factual paragraph
// cites registered evidence.
//
// Paragraphs are drafted into named sessions. Each drafted paragraph gets a
// parenthetical citation such as "(Ex. A, pp. 1-3; Ex. B, p. 5)" and is
// recorded with its offset in the session's running text. ValidateDocument
// then scans a finished document for spans that read like factual claims
// (dates, money, counts, conduct by the respondent) and flags those with no
// recorded citation within ProximityWindow bytes. ExhibitList renders the
// LaTeX exhibit list for everything a session cited.
package drafting
