package satsolver

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DIMACS records clauses without solving them directly; its purpose is the
// debug/export persistence format of SPEC_FULL.md section 8 ("p cnf
// <nvars> <nclauses>", one clause per line, space-separated signed
// integers terminated by 0). To remain usable as a drop-in Adapter for the
// "Encode -> DIMACS -> re-parse -> solve" round-trip property
// (SPEC_FULL.md section 10), Solve delegates to a freshly built Batch over
// the recorded clauses.
type DIMACS struct {
	nextVar     int32
	clauses     [][]Lit
	forcedUnsat bool
	delegate    *Batch
}

// NewDIMACS returns an empty DIMACS adapter.
func NewDIMACS() *DIMACS {
	return &DIMACS{nextVar: 1}
}

// NewVar implements Adapter.
func (d *DIMACS) NewVar() Var {
	v := Var(d.nextVar)
	d.nextVar++

	return v
}

// AddClause implements Adapter.
func (d *DIMACS) AddClause(lits ...Lit) {
	if len(lits) == 0 {
		d.forcedUnsat = true

		return
	}
	clause := make([]Lit, len(lits))
	copy(clause, lits)
	d.clauses = append(d.clauses, clause)
}

// Solve implements Adapter by delegating to a fresh Batch built from the
// recorded clauses.
func (d *DIMACS) Solve() (bool, error) {
	d.delegate = NewBatch()
	d.delegate.nextVar = d.nextVar
	if d.forcedUnsat {
		d.delegate.forcedUnsat = true
	}
	for _, clause := range d.clauses {
		d.delegate.AddClause(clause...)
	}

	return d.delegate.Solve()
}

// Value implements Adapter, delegating to the Batch built by the last
// Solve call.
func (d *DIMACS) Value(v Var) bool {
	if d.delegate == nil {
		panic(ErrNotSolved.Error())
	}

	return d.delegate.Value(v)
}

// NumVars implements Adapter.
func (d *DIMACS) NumVars() int { return int(d.nextVar) - 1 }

// NumClauses implements Adapter.
func (d *DIMACS) NumClauses() int {
	if d.forcedUnsat {
		return len(d.clauses) + 1
	}

	return len(d.clauses)
}

// Release implements Adapter.
func (d *DIMACS) Release() {
	d.clauses = nil
	if d.delegate != nil {
		d.delegate.Release()
		d.delegate = nil
	}
}

// Render writes the recorded formula in standard DIMACS CNF text form.
func (d *DIMACS) Render(w io.Writer) error {
	bw := bufio.NewWriter(w)
	nclauses := d.NumClauses()
	if _, err := fmt.Fprintf(bw, "p cnf %d %d\n", d.NumVars(), nclauses); err != nil {
		return err
	}
	if d.forcedUnsat {
		if _, err := fmt.Fprintln(bw, "0"); err != nil {
			return err
		}
	}
	for _, clause := range d.clauses {
		parts := make([]string, 0, len(clause)+1)
		for _, l := range clause {
			parts = append(parts, strconv.Itoa(int(l)))
		}
		parts = append(parts, "0")
		if _, err := fmt.Fprintln(bw, strings.Join(parts, " ")); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// ParseDIMACS reads a standard DIMACS CNF text stream and returns a DIMACS
// adapter pre-loaded with its variables and clauses, ready for Solve.
func ParseDIMACS(r io.Reader) (*DIMACS, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	d := NewDIMACS()
	headerSeen := false
	var declaredVars int

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		if strings.HasPrefix(line, "p") {
			fields := strings.Fields(line)
			if len(fields) != 4 || fields[0] != "p" || fields[1] != "cnf" {
				return nil, fmt.Errorf("satsolver: malformed DIMACS header %q", line)
			}
			n, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("satsolver: malformed DIMACS header %q: %w", line, err)
			}
			declaredVars = n
			headerSeen = true

			continue
		}
		if !headerSeen {
			return nil, fmt.Errorf("satsolver: clause line before header: %q", line)
		}
		fields := strings.Fields(line)
		var lits []Lit
		for _, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("satsolver: malformed literal %q: %w", f, err)
			}
			if n == 0 {
				break
			}
			lits = append(lits, Lit(n))
		}
		if len(lits) == 0 {
			d.forcedUnsat = true

			continue
		}
		d.clauses = append(d.clauses, lits)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	for int(d.nextVar)-1 < declaredVars {
		d.NewVar()
	}

	return d, nil
}
