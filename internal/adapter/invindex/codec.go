package invindex

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"lemsearch/internal/domain"
)

// Encode writes the table in its canonical text form: one newline-terminated
// line per lemma, lemmas sorted ascending, IDs ascending. The output is
// byte-identical for equal tables.
func Encode(w io.Writer, table domain.PostingTable) error {
	lemmas := make([]string, 0, len(table))
	for lemma := range table {
		lemmas = append(lemmas, lemma)
	}
	sort.Strings(lemmas)

	bw := bufio.NewWriter(w)
	for _, lemma := range lemmas {
		if _, err := bw.WriteString(lemma); err != nil {
			return err
		}
		for _, id := range table[lemma] {
			if _, err := bw.WriteString(" " + strconv.Itoa(int(id))); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Decode parses a serialized posting table. Any line that violates the
// contract (blank line, lemma without postings, non-integer ID, duplicate
// or out-of-order IDs) makes the whole index untrusted and yields a
// MalformedIndexError; corrupted input is rejected, never repaired.
func Decode(r io.Reader) (domain.PostingTable, error) {
	table := make(domain.PostingTable)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			return nil, &domain.MalformedIndexError{Line: lineNo, Reason: "blank line"}
		}
		lemma := fields[0]
		if len(fields) < 2 {
			return nil, &domain.MalformedIndexError{Line: lineNo, Reason: fmt.Sprintf("lemma %q has no postings", lemma)}
		}
		if _, ok := table[lemma]; ok {
			return nil, &domain.MalformedIndexError{Line: lineNo, Reason: fmt.Sprintf("duplicate lemma %q", lemma)}
		}

		postings := make(domain.PostingList, 0, len(fields)-1)
		prev := -1
		for _, field := range fields[1:] {
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, &domain.MalformedIndexError{Line: lineNo, Reason: fmt.Sprintf("non-integer document id %q", field)}
			}
			if n <= prev {
				return nil, &domain.MalformedIndexError{Line: lineNo, Reason: "document ids not strictly ascending"}
			}
			prev = n
			postings = append(postings, domain.DocID(n))
		}
		table[lemma] = postings
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read index: %w", err)
	}

	return table, nil
}
