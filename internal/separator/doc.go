// Package separator infers the field separator of a delimited file from
// its header line.
//
// The heuristic splits the header once on ',' and once on ';' and picks
// whichever produces more fields, preferring comma on a tie. It inspects
// only the first line and is deliberately not a full CSV parser.
package separator
