package invindex

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"lemsearch/internal/adapter/fs"
	"lemsearch/internal/domain"
)

// scenarioCorpus writes the 3-document corpus: doc1={cat,dog}, doc2={dog,bird},
// doc3={cat,bird}.
func scenarioCorpus(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"lemmas_1.txt": "cat cats\ndog dogs\n",
		"lemmas_2.txt": "dog dog\nbird birds\n",
		"lemmas_3.txt": "cat cat\nbird bird\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestBuilder_Build(t *testing.T) {
	dir := scenarioCorpus(t)

	table, err := NewBuilder(fs.NewCorpus(nil)).Build(dir)
	if err != nil {
		t.Fatal(err)
	}

	want := domain.PostingTable{
		"cat":  {1, 3},
		"dog":  {1, 2},
		"bird": {2, 3},
	}
	if diff := cmp.Diff(want, table); diff != "" {
		t.Errorf("posting table mismatch (-want +got):\n%s", diff)
	}
}

func TestBuilder_PostingsInvariant(t *testing.T) {
	dir := t.TempDir()
	// Repeated lemmas within a document must contribute the ID once.
	content := "кошка кошки\nсобака собаки\nкошка кошку\nкошка кошке\n"
	for _, name := range []string{"lemmas_3.txt", "lemmas_1.txt", "lemmas_2.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	table, err := NewBuilder(fs.NewCorpus(nil)).Build(dir)
	if err != nil {
		t.Fatal(err)
	}

	for lemma, postings := range table {
		if len(postings) == 0 {
			t.Errorf("lemma %q has an empty posting list", lemma)
		}
		for i := 1; i < len(postings); i++ {
			if postings[i] <= postings[i-1] {
				t.Errorf("lemma %q postings not strictly ascending: %v", lemma, postings)
			}
		}
	}
}

func TestBuilder_EmptyCorpus(t *testing.T) {
	dir := t.TempDir()

	_, err := NewBuilder(fs.NewCorpus(nil)).Build(dir)
	if !errors.Is(err, domain.ErrEmptyCorpus) {
		t.Fatalf("expected ErrEmptyCorpus, got %v", err)
	}
}

func TestBuild_Idempotent(t *testing.T) {
	dir := scenarioCorpus(t)
	builder := NewBuilder(fs.NewCorpus(nil))

	var first, second bytes.Buffer
	for i, buf := range []*bytes.Buffer{&first, &second} {
		table, err := builder.Build(dir)
		if err != nil {
			t.Fatalf("build %d: %v", i, err)
		}
		if err := Encode(buf, table); err != nil {
			t.Fatalf("encode %d: %v", i, err)
		}
	}

	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("two builds over an unchanged corpus must be byte-identical")
	}
}
