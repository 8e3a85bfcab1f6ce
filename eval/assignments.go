package eval

// AllAssignments returns the 2^n assignments over the given atoms, in the
// canonical row order of a truth table: the first atom is the most
// significant bit and rows run from all-true down to all-false, so atoms
// [P, Q] yield TT, TF, FT, FF. Atoms must already be sorted and distinct,
// as returned by ast.Atoms.
func AllAssignments(atoms []string) []Assignment {
	n := len(atoms)
	rows := make([]Assignment, 0, 1<<n)
	for mask := 1<<n - 1; mask >= 0; mask-- {
		a := make(Assignment, n)
		for i, atom := range atoms {
			a[atom] = mask&(1<<(n-1-i)) != 0
		}
		rows = append(rows, a)
	}
	return rows
}
