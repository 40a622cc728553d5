package classifier

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"lowercases", "Uber RIDE", []string{"uber", "ride"}},
		{"drops single chars", "a b cd", []string{"cd"}},
		{"keeps digits and underscores", "top_up 4g recharge", []string{"top_up", "4g", "recharge"}},
		{"folds accents", "Café crème", []string{"cafe", "creme"}},
		{"splits on punctuation", "milk,eggs;bread", []string{"milk", "eggs", "bread"}},
		{"empty", "", nil},
		{"only noise", "! ? .", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenize(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("tokenize(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNgrams(t *testing.T) {
	tokens := []string{"uber", "ride", "home"}

	got := ngrams(tokens, 1, 3)
	want := []string{
		"uber", "ride", "home",
		"uber ride", "ride home",
		"uber ride home",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ngrams(1..3) = %v, want %v", got, want)
	}

	if got := ngrams(nil, 1, 3); got != nil {
		t.Errorf("ngrams(nil) = %v, want nil", got)
	}
	if got := ngrams(tokens, 3, 1); got != nil {
		t.Errorf("ngrams with maxN < minN = %v, want nil", got)
	}
	if got := ngrams([]string{"solo"}, 1, 3); !reflect.DeepEqual(got, []string{"solo"}) {
		t.Errorf("ngrams(single token) = %v, want [solo]", got)
	}
}
