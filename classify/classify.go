// Package classify implements a naive-Bayes classifier bank: a
// Classifier scores a bag of features against a fixed set of classes with
// Laplace-smoothed log probabilities, and a Model routes a recursively
// structured Input to the right Classifier by id, summing log scores down
// the tree.
package classify

import (
	"errors"
	"math"
)

// ErrNoClasses is returned by Classify when the classifier has no classes
// to choose among.
var ErrNoClasses = errors.New("classify: no classes in classifier")

var negInf = float32(math.Inf(-1))

// ClassInfo holds one class's trained statistics: how many training
// examples fell in it, its prior in log space, the fallback log
// probability for a feature never seen in this class, and the per-feature
// log probabilities.
type ClassInfo[Feat comparable] struct {
	ExampleCount  int
	ClassProbaLog float32
	UnkProbaLog   float32
	FeatProbaLog  map[Feat]float32
}

// Classifier is a trained naive-Bayes model over a fixed set of classes.
type Classifier[Class comparable, Feat comparable] struct {
	Classes map[Class]ClassInfo[Feat]
}

// Train builds a Classifier from labeled bag-of-feature examples, with
// add-one (Laplace) smoothing against the full feature vocabulary seen
// across every class.
func Train[Class comparable, Feat comparable](examples []TrainingExample[Class, Feat]) Classifier[Class, Feat] {
	type accum struct {
		count    int
		features map[Feat]int
	}
	byClass := make(map[Class]*accum)
	allFeatures := make(map[Feat]struct{})

	for _, ex := range examples {
		a, ok := byClass[ex.Class]
		if !ok {
			a = &accum{features: make(map[Feat]int)}
			byClass[ex.Class] = a
		}
		a.count++
		for feat, count := range ex.Features {
			allFeatures[feat] = struct{}{}
			a.features[feat] += count
		}
	}

	totalExamples := len(examples)
	totalFeatures := len(allFeatures)
	classes := make(map[Class]ClassInfo[Feat], len(byClass))
	for class, a := range byClass {
		featTotal := 0
		for _, count := range a.features {
			featTotal += count
		}
		smoothDenom := float32(totalFeatures + featTotal)

		featProbaLog := make(map[Feat]float32, len(a.features))
		for feat, count := range a.features {
			featProbaLog[feat] = float32(math.Log(float64(float32(count)+1) / float64(smoothDenom)))
		}

		classes[class] = ClassInfo[Feat]{
			ExampleCount:  a.count,
			ClassProbaLog: float32(math.Log(float64(a.count) / float64(totalExamples))),
			UnkProbaLog:   float32(math.Log(1 / float64(smoothDenom))),
			FeatProbaLog:  featProbaLog,
		}
	}
	return Classifier[Class, Feat]{Classes: classes}
}

// TrainingExample pairs a bag-of-features with the class it belongs to.
type TrainingExample[Class comparable, Feat comparable] struct {
	Features map[Feat]int
	Class    Class
}

// ClassScore pairs a class with its normalized log probability.
type ClassScore[Class comparable] struct {
	Class    Class
	ProbaLog float32
}

// Scores returns every class's log probability given bagOfFeatures,
// normalized so that Σ exp(ProbaLog) == 1. The max-subtraction before
// exponentiating keeps the sum numerically stable for classifiers with
// many classes or large log-probability magnitudes, without changing the
// result beyond float32 rounding.
func (c Classifier[Class, Feat]) Scores(bagOfFeatures map[Feat]int) []ClassScore[Class] {
	scores := make([]ClassScore[Class], 0, len(c.Classes))
	for class, info := range c.Classes {
		var probaLog float32
		for feat, count := range bagOfFeatures {
			p, ok := info.FeatProbaLog[feat]
			if !ok {
				p = info.UnkProbaLog
			}
			probaLog += float32(count) * p
		}
		scores = append(scores, ClassScore[Class]{Class: class, ProbaLog: probaLog + info.ClassProbaLog})
	}

	if len(scores) == 0 {
		return scores
	}
	max := scores[0].ProbaLog
	for _, s := range scores[1:] {
		if s.ProbaLog > max {
			max = s.ProbaLog
		}
	}
	var sumExp float64
	for _, s := range scores {
		sumExp += math.Exp(float64(s.ProbaLog - max))
	}
	normLog := max + float32(math.Log(sumExp))
	for i := range scores {
		scores[i].ProbaLog -= normLog
	}
	return scores
}

// Classify returns the highest-scoring class for bagOfFeatures.
func (c Classifier[Class, Feat]) Classify(bagOfFeatures map[Feat]int) (ClassScore[Class], error) {
	scores := c.Scores(bagOfFeatures)
	if len(scores) == 0 {
		return ClassScore[Class]{}, ErrNoClasses
	}
	best := scores[0]
	for _, s := range scores[1:] {
		if s.ProbaLog > best.ProbaLog {
			best = s
		}
	}
	return best, nil
}
