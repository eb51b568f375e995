package diagnostic

import "math"

const (
	// StandardSetSize is the question count every current tool uses.
	StandardSetSize = 10
	// pointsPerYes applies when an answer set has the standard length.
	pointsPerYes = 10
	// mostlyShare is the fraction of one polarity that makes a set
	// "mostly" that polarity (7 of 10 for the standard set).
	mostlyShare = 0.7
)

// Classify scores an answer set and assigns its bucket.
//
// Score is 10 points per Yes for the standard 10-question set; other set
// lengths normalize to the same 0-100 range. An empty set classifies as
// score 0, Balanced. A malformed answer yields an InvalidAnswerError
// naming its index.
func Classify(answers []Answer) (Classification, error) {
	yes, no := 0, 0
	for i, a := range answers {
		switch a.Value {
		case Yes:
			yes++
		case No:
			no++
		default:
			return Classification{}, &InvalidAnswerError{Index: i}
		}
	}

	total := len(answers)
	if total == 0 {
		return Classification{Bucket: BucketBalanced}, nil
	}

	score := yes * pointsPerYes
	if total != StandardSetSize {
		score = int(math.Round(100 * float64(yes) / float64(total)))
	}

	return Classification{
		Score:    score,
		YesCount: yes,
		NoCount:  no,
		Bucket:   bucketFor(yes, no, total),
	}, nil
}

func bucketFor(yes, no, total int) Bucket {
	mostly := mostlyThreshold(total)
	switch {
	case yes == total:
		return BucketAllYes
	case no == total:
		return BucketAllNo
	case yes >= mostly:
		return BucketMostlyYes
	case no >= mostly:
		return BucketMostlyNo
	default:
		return BucketBalanced
	}
}

func mostlyThreshold(total int) int {
	return int(math.Ceil(mostlyShare * float64(total)))
}
