package statistics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/lox/preflop-trainer/preflop"
)

// RoundResult represents the outcome of a single scored round
type RoundResult struct {
	Position      preflop.Position
	Category      preflop.Category
	Tier          preflop.Tier
	ActionCorrect bool
	SizingJudged  bool // Raise was both submitted and correct, so the size was graded
	SizingCorrect bool
	Elapsed       time.Duration // Time from deal to submission
}

// Bucket tracks accuracy for one slice of the results
type Bucket struct {
	Rounds        int
	Correct       int
	SizingRounds  int
	SizingCorrect int
}

func (b *Bucket) add(r RoundResult) {
	b.Rounds++
	if r.ActionCorrect {
		b.Correct++
	}
	if r.SizingJudged {
		b.SizingRounds++
		if r.SizingCorrect {
			b.SizingCorrect++
		}
	}
}

// Accuracy returns the fraction of rounds with the correct action
func (b Bucket) Accuracy() float64 {
	if b.Rounds == 0 {
		return 0
	}
	return float64(b.Correct) / float64(b.Rounds)
}

// SizingAccuracy returns the fraction of judged raises inside the band
func (b Bucket) SizingAccuracy() float64 {
	if b.SizingRounds == 0 {
		return 0
	}
	return float64(b.SizingCorrect) / float64(b.SizingRounds)
}

// StdError returns the standard error of the accuracy estimate
func (b Bucket) StdError() float64 {
	if b.Rounds == 0 {
		return 0
	}
	p := b.Accuracy()
	return math.Sqrt(p * (1 - p) / float64(b.Rounds))
}

// ConfidenceInterval95 returns the 95% confidence interval for accuracy, clamped to [0, 1]
func (b Bucket) ConfidenceInterval95() (float64, float64) {
	p := b.Accuracy()
	margin := 1.96 * b.StdError()
	return math.Max(0, p-margin), math.Min(1, p+margin)
}

// Statistics tracks accuracy overall and broken down by seat, scenario and tier
type Statistics struct {
	Bucket

	ByPosition map[preflop.Position]*Bucket
	ByCategory map[preflop.Category]*Bucket
	ByTier     map[preflop.Tier]*Bucket

	Values []float64 // Decision times in seconds for median/percentile calculation
}

// New returns empty statistics.
func New() *Statistics {
	return &Statistics{
		ByPosition: make(map[preflop.Position]*Bucket),
		ByCategory: make(map[preflop.Category]*Bucket),
		ByTier:     make(map[preflop.Tier]*Bucket),
	}
}

// Add incorporates a new round result into the statistics
func (s *Statistics) Add(r RoundResult) {
	if s.ByPosition == nil {
		*s = *New()
	}
	s.Bucket.add(r)
	bucket(s.ByPosition, r.Position).add(r)
	bucket(s.ByCategory, r.Category).add(r)
	bucket(s.ByTier, r.Tier).add(r)
	s.Values = append(s.Values, r.Elapsed.Seconds())
}

func bucket[K comparable](m map[K]*Bucket, k K) *Bucket {
	b, ok := m[k]
	if !ok {
		b = &Bucket{}
		m[k] = b
	}
	return b
}

// MeanTime returns the mean decision time
func (s *Statistics) MeanTime() time.Duration {
	if len(s.Values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range s.Values {
		sum += v
	}
	return seconds(sum / float64(len(s.Values)))
}

// MedianTime returns the median decision time
func (s *Statistics) MedianTime() time.Duration {
	return s.PercentileTime(0.5)
}

// PercentileTime returns the decision time at the given percentile (0.0 to 1.0)
func (s *Statistics) PercentileTime(p float64) time.Duration {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return seconds(sorted[len(sorted)-1])
	}

	weight := index - float64(lower)
	return seconds(sorted[lower]*(1-weight) + sorted[upper]*weight)
}

// Weakest returns the position with the lowest accuracy among those with at
// least minRounds rounds. ok is false when no position qualifies.
func (s *Statistics) Weakest(minRounds int) (pos preflop.Position, acc float64, ok bool) {
	acc = math.Inf(1)
	for _, p := range preflop.Positions {
		b, found := s.ByPosition[p]
		if !found || b.Rounds < minRounds {
			continue
		}
		if a := b.Accuracy(); a < acc {
			pos, acc, ok = p, a, true
		}
	}
	if !ok {
		acc = 0
	}
	return pos, acc, ok
}

// Validate checks that the breakdowns add up to the totals
func (s *Statistics) Validate() error {
	for name, total := range map[string]int{
		"position": sumRounds(s.ByPosition),
		"category": sumRounds(s.ByCategory),
		"tier":     sumRounds(s.ByTier),
	} {
		if total != s.Rounds {
			return fmt.Errorf("%s rounds total (%d) does not match total rounds (%d)", name, total, s.Rounds)
		}
	}
	if len(s.Values) != s.Rounds {
		return fmt.Errorf("values array length (%d) does not match rounds (%d)", len(s.Values), s.Rounds)
	}
	if s.Correct > s.Rounds || s.SizingCorrect > s.SizingRounds {
		return fmt.Errorf("correct counts exceed totals")
	}
	return nil
}

func sumRounds[K comparable](m map[K]*Bucket) int {
	n := 0
	for _, b := range m {
		n += b.Rounds
	}
	return n
}

func seconds(f float64) time.Duration {
	return time.Duration(f * float64(time.Second))
}
