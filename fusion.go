package lexis

import "fmt"

// FusionKind defines the strategy for combining the TF-IDF and BM25 score
// vectors into a single ranking.
type FusionKind string

const (
	// WeightedSumFusion combines scores using a weighted sum:
	// combined = tfidfScore * tfidfWeight + bm25Score * bm25Weight
	WeightedSumFusion FusionKind = "weighted_sum"

	// MaxFusion takes the maximum of the two scores per document.
	MaxFusion FusionKind = "max"

	// MinFusion takes the minimum of the two scores per document.
	MinFusion FusionKind = "min"
)

// Fusion combines the two per-document score vectors produced by the
// scoring models. Both inputs are dense, indexed by docID, and normalized
// to [0, 1]; implementations must return a vector of the same length.
type Fusion interface {
	// Kind returns the kind of fusion strategy.
	Kind() FusionKind

	// Combine merges the TF-IDF and BM25 score vectors into one.
	Combine(tfidfScores, bm25Scores []float64) []float64
}

// FusionConfig holds configuration for fusion strategies.
type FusionConfig struct {
	// TFIDFWeight is the weight for TF-IDF cosine scores (used by
	// WeightedSumFusion).
	TFIDFWeight float64

	// BM25Weight is the weight for normalized BM25 scores (used by
	// WeightedSumFusion). The weights should sum to 1 to keep combined
	// scores in [0, 1].
	BM25Weight float64
}

// DefaultFusionConfig returns the default fusion configuration: an even
// split between the two models.
func DefaultFusionConfig() *FusionConfig {
	return &FusionConfig{
		TFIDFWeight: 0.5,
		BM25Weight:  0.5,
	}
}

// Singleton instances for the stateless strategies.
var (
	defaultWeightedSumFusion *weightedSumFusion
	maxFusionInstance        *maxFusion
	minFusionInstance        *minFusion
)

func init() {
	defaultWeightedSumFusion = &weightedSumFusion{config: DefaultFusionConfig()}
	maxFusionInstance = &maxFusion{}
	minFusionInstance = &minFusion{}
}

// NewFusion creates a fusion strategy of the given kind.
func NewFusion(kind FusionKind, config *FusionConfig) (Fusion, error) {
	if config == nil {
		config = DefaultFusionConfig()
	}

	switch kind {
	case WeightedSumFusion:
		return &weightedSumFusion{config: config}, nil
	case MaxFusion:
		return maxFusionInstance, nil
	case MinFusion:
		return minFusionInstance, nil
	default:
		return nil, fmt.Errorf("unknown fusion kind: %s", kind)
	}
}

// DefaultFusion returns the default strategy: weighted sum, equal weights.
func DefaultFusion() Fusion {
	return defaultWeightedSumFusion
}

// ============================================================================
// WEIGHTED SUM FUSION
// ============================================================================

// weightedSumFusion combines scores using a weighted sum.
//
// Use case: direct control over the relative importance of the vector-space
// and probabilistic models. With weights summing to 1 and both inputs in
// [0, 1], the combined score stays in [0, 1].
type weightedSumFusion struct {
	config *FusionConfig
}

func (f *weightedSumFusion) Kind() FusionKind {
	return WeightedSumFusion
}

func (f *weightedSumFusion) Combine(tfidfScores, bm25Scores []float64) []float64 {
	combined := make([]float64, len(tfidfScores))
	for i := range combined {
		combined[i] = tfidfScores[i]*f.config.TFIDFWeight + bm25Scores[i]*f.config.BM25Weight
	}
	return combined
}

// ============================================================================
// MAX FUSION
// ============================================================================

// maxFusion takes the maximum score across the two models.
//
// Use case: surface documents that excel in at least one model.
type maxFusion struct{}

func (f *maxFusion) Kind() FusionKind {
	return MaxFusion
}

func (f *maxFusion) Combine(tfidfScores, bm25Scores []float64) []float64 {
	combined := make([]float64, len(tfidfScores))
	for i := range combined {
		combined[i] = tfidfScores[i]
		if bm25Scores[i] > combined[i] {
			combined[i] = bm25Scores[i]
		}
	}
	return combined
}

// ============================================================================
// MIN FUSION
// ============================================================================

// minFusion takes the minimum score across the two models.
//
// Use case: surface documents that perform well in both models at once.
type minFusion struct{}

func (f *minFusion) Kind() FusionKind {
	return MinFusion
}

func (f *minFusion) Combine(tfidfScores, bm25Scores []float64) []float64 {
	combined := make([]float64, len(tfidfScores))
	for i := range combined {
		combined[i] = tfidfScores[i]
		if bm25Scores[i] < combined[i] {
			combined[i] = bm25Scores[i]
		}
	}
	return combined
}
