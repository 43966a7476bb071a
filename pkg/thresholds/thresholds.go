// Package thresholds defines the immutable configuration record that
// parameterizes god-file, god-class, and god-method detection and the
// clustering pass that follows a god-class verdict.
package thresholds

import "fmt"

// Thresholds is the immutable set of numeric limits the detector and
// clusterer compare structural metrics against. Zero value is not usable;
// construct with Default() or Load a DetectionThresholds config section.
type Thresholds struct {
	MaxClassLines       int
	MaxMethods          int
	MaxClassComplexity  int
	MaxMethodLines      int
	MaxMethodComplexity int
	MaxMethodParameters int
	MaxClassesPerFile   int
	MaxFileLines        int
	MinClusterSize      int
	ClusterThreshold    float64
}

// Default returns the documented defaults.
func Default() Thresholds {
	return Thresholds{
		MaxClassLines:       300,
		MaxMethods:          20,
		MaxClassComplexity:  50,
		MaxMethodLines:      50,
		MaxMethodComplexity: 10,
		MaxMethodParameters: 5,
		MaxClassesPerFile:   3,
		MaxFileLines:        500,
		MinClusterSize:      3,
		ClusterThreshold:    0.7,
	}
}

// Validate rejects threshold combinations that cannot produce a sensible
// verdict, mirroring the validation the original implementation performed
// at construction time.
func (t Thresholds) Validate() error {
	if t.MaxClassLines < t.MaxMethodLines {
		return fmt.Errorf("thresholds: max class lines (%d) must be >= max method lines (%d)", t.MaxClassLines, t.MaxMethodLines)
	}
	if t.ClusterThreshold < 0.0 || t.ClusterThreshold > 1.0 {
		return fmt.Errorf("thresholds: cluster threshold %f must be within [0,1]", t.ClusterThreshold)
	}
	if t.MinClusterSize < 2 {
		return fmt.Errorf("thresholds: min cluster size (%d) must be >= 2", t.MinClusterSize)
	}
	if t.MaxMethods < 0 || t.MaxClassComplexity < 0 || t.MaxMethodComplexity < 0 ||
		t.MaxMethodParameters < 0 || t.MaxClassesPerFile < 0 || t.MaxFileLines < 0 || t.MaxClassLines < 0 || t.MaxMethodLines < 0 {
		return fmt.Errorf("thresholds: negative limits are not allowed")
	}
	return nil
}
