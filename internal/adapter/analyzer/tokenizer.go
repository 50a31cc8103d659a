package analyzer

import (
	"strings"
	"unicode"
)

// Tokenizer splits page text into lowercase word tokens with optional
// stopword removal.
type Tokenizer struct {
	stopwords map[string]struct{}
	minLen    int
}

// NewTokenizer creates a new Tokenizer. Tokens shorter than minLen runes
// are dropped; minLen <= 0 keeps everything.
func NewTokenizer(useStopwords bool, minLen int) *Tokenizer {
	var stops map[string]struct{}
	if useStopwords {
		stops = defaultStopwords()
	}
	return &Tokenizer{
		stopwords: stops,
		minLen:    minLen,
	}
}

// Tokenize splits text into tokens.
func (t *Tokenizer) Tokenize(text string) []string {
	words := splitWords(text)
	tokens := make([]string, 0, len(words))

	for _, word := range words {
		word = strings.ToLower(word)
		if len([]rune(word)) < t.minLen {
			continue
		}
		if _, isStop := t.stopwords[word]; isStop {
			continue
		}
		tokens = append(tokens, word)
	}

	return tokens
}

// splitWords splits text on anything that is not a letter or a digit.
func splitWords(text string) []string {
	var words []string
	var current strings.Builder

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			current.WriteRune(r)
		} else {
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}
		}
	}
	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return words
}

// defaultStopwords returns common Russian and English stopwords. The crawl
// target corpus is Russian-language pages with occasional English text.
func defaultStopwords() map[string]struct{} {
	stops := []string{
		// Russian
		"и", "в", "во", "не", "что", "он", "на", "я", "с", "со",
		"как", "а", "то", "все", "она", "так", "его", "но", "да",
		"ты", "к", "у", "же", "вы", "за", "бы", "по", "только",
		"ее", "мне", "было", "вот", "от", "меня", "еще", "нет",
		"о", "из", "ему", "теперь", "когда", "даже", "ну", "вдруг",
		"ли", "если", "уже", "или", "ни", "быть", "был", "него",
		"до", "вас", "нибудь", "опять", "уж", "вам", "ведь", "там",
		"потом", "себя", "ничего", "ей", "может", "они", "тут",
		"где", "есть", "надо", "ней", "для", "мы", "тебя", "их",
		"чем", "была", "сам", "чтоб", "без", "будто", "чего", "раз",
		"тоже", "себе", "под", "будет", "тогда", "кто", "этот",
		// English
		"a", "an", "and", "are", "as", "at", "be", "by", "for",
		"from", "has", "he", "in", "is", "it", "its", "of", "on",
		"that", "the", "to", "was", "were", "will", "with", "this",
		"have", "had", "but", "not", "you", "your", "we", "our",
		"they", "their", "or", "if", "so", "no",
	}
	m := make(map[string]struct{}, len(stops))
	for _, s := range stops {
		m[s] = struct{}{}
	}
	return m
}
