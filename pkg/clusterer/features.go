package clusterer

import "github.com/kestrelcode/godscan/pkg/metrics"

// buildFeatureMatrix constructs the per-method feature vector of spec.md
// §4.4: a TF-style weight (no IDF) for every token in the class-wide
// vocabulary, followed by six normalized structural features. vocab is
// returned in a stable order matching the leading vector dimensions.
func buildFeatureMatrix(methods []metrics.MethodMetrics) ([][]float64, []string) {
	vocab := buildVocabulary(methods)
	vocabIndex := make(map[string]int, len(vocab))
	for i, t := range vocab {
		vocabIndex[t] = i
	}

	vectors := make([][]float64, len(methods))
	for i, m := range methods {
		vectors[i] = featureVector(m, vocab, vocabIndex)
	}
	return vectors, vocab
}

// buildVocabulary unions every method's token bag into the class-wide
// vocabulary V, in first-appearance order for determinism.
func buildVocabulary(methods []metrics.MethodMetrics) []string {
	seen := make(map[string]bool)
	var vocab []string
	for _, m := range methods {
		for _, tok := range m.Tokens {
			if !seen[tok] {
				seen[tok] = true
				vocab = append(vocab, tok)
			}
		}
	}
	return vocab
}

func featureVector(m metrics.MethodMetrics, vocab []string, vocabIndex map[string]int) []float64 {
	vec := make([]float64, len(vocab)+6)

	totalTokens := len(m.Tokens)
	if totalTokens > 0 {
		counts := make(map[string]int, totalTokens)
		for _, tok := range m.Tokens {
			counts[tok]++
		}
		for tok, count := range counts {
			if idx, ok := vocabIndex[tok]; ok {
				vec[idx] = float64(count) / float64(totalTokens)
			}
		}
	}

	base := len(vocab)
	vec[base+0] = float64(m.Lines) / 100.0
	vec[base+1] = float64(m.Complexity) / 20.0
	vec[base+2] = float64(len(m.CalledMethods)) / 10.0
	vec[base+3] = float64(len(m.AccessedFields)) / 10.0
	if m.IsPublic {
		vec[base+4] = 1.0
	}
	if m.IsStatic {
		vec[base+5] = 1.0
	}

	return vec
}
