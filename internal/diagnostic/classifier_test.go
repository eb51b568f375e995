package diagnostic

import (
	"errors"
	"testing"
)

func makeAnswers(yes, no int) []Answer {
	out := make([]Answer, 0, yes+no)
	for i := 0; i < yes; i++ {
		out = append(out, Answer{Question: "Do you track things?", Value: Yes})
	}
	for i := 0; i < no; i++ {
		out = append(out, Answer{Question: "Do you have a plan?", Value: No})
	}
	return out
}

func TestClassifyStandardSet(t *testing.T) {
	cases := []struct {
		name   string
		yes    int
		no     int
		score  int
		bucket Bucket
	}{
		{"all yes", 10, 0, 100, BucketAllYes},
		{"all no", 0, 10, 0, BucketAllNo},
		{"mostly yes at threshold", 7, 3, 70, BucketMostlyYes},
		{"mostly no at threshold", 3, 7, 30, BucketMostlyNo},
		{"balanced six four", 6, 4, 60, BucketBalanced},
		{"balanced five five", 5, 5, 50, BucketBalanced},
		{"nine yes", 9, 1, 90, BucketMostlyYes},
		{"one yes", 1, 9, 10, BucketMostlyNo},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Classify(makeAnswers(tc.yes, tc.no))
			if err != nil {
				t.Fatalf("Classify: %v", err)
			}
			if got.Score != tc.score {
				t.Fatalf("expected score %d, got %d", tc.score, got.Score)
			}
			if got.Bucket != tc.bucket {
				t.Fatalf("expected bucket %s, got %s", tc.bucket, got.Bucket)
			}
			if got.YesCount != tc.yes || got.NoCount != tc.no {
				t.Fatalf("expected counts %d/%d, got %d/%d", tc.yes, tc.no, got.YesCount, got.NoCount)
			}
		})
	}
}

func TestClassifyNormalizesShortSets(t *testing.T) {
	cases := []struct {
		name   string
		yes    int
		no     int
		score  int
		bucket Bucket
	}{
		{"three of four", 3, 1, 75, BucketMostlyYes},
		{"one of three", 1, 2, 33, BucketMostlyNo},
		{"two of five", 2, 3, 40, BucketBalanced},
		{"one of one", 1, 0, 100, BucketAllYes},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Classify(makeAnswers(tc.yes, tc.no))
			if err != nil {
				t.Fatalf("Classify: %v", err)
			}
			if got.Score != tc.score {
				t.Fatalf("expected score %d, got %d", tc.score, got.Score)
			}
			if got.Bucket != tc.bucket {
				t.Fatalf("expected bucket %s, got %s", tc.bucket, got.Bucket)
			}
		})
	}
}

func TestClassifyEmptySet(t *testing.T) {
	got, err := Classify(nil)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if got.Score != 0 {
		t.Fatalf("expected score 0, got %d", got.Score)
	}
	if got.Bucket != BucketBalanced {
		t.Fatalf("expected balanced bucket, got %s", got.Bucket)
	}
}

func TestClassifyMalformedAnswer(t *testing.T) {
	answers := makeAnswers(2, 0)
	answers = append(answers, Answer{Question: "Do you budget?", Value: "Maybe"})

	_, err := Classify(answers)
	if err == nil {
		t.Fatalf("expected error for malformed answer")
	}
	var invalid *InvalidAnswerError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidAnswerError, got %T", err)
	}
	if invalid.Index != 2 {
		t.Fatalf("expected index 2, got %d", invalid.Index)
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	answers := makeAnswers(6, 4)
	first, err := Classify(answers)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := Classify(answers)
		if err != nil {
			t.Fatalf("Classify: %v", err)
		}
		if again != first {
			t.Fatalf("expected identical classification, got %+v then %+v", first, again)
		}
	}
}
