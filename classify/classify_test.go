package classify

import (
	"math"
	"testing"
)

type species int

const (
	speciesCat species = iota
	speciesDog
	speciesHuman
)

type friend int

const (
	friendCat friend = iota
	friendDog
	friendHuman
	friendFish
)

func mammalsExamples() []TrainingExample[species, friend] {
	return []TrainingExample[species, friend]{
		{Class: speciesDog, Features: map[friend]int{friendDog: 1, friendHuman: 1, friendCat: 1}},
		{Class: speciesDog, Features: map[friend]int{friendDog: 1}},
		{Class: speciesDog, Features: map[friend]int{friendDog: 1, friendHuman: 1}},
		{Class: speciesDog, Features: map[friend]int{friendHuman: 1}},
		{Class: speciesCat, Features: map[friend]int{friendFish: 1, friendCat: 1}},
		{Class: speciesCat, Features: map[friend]int{friendCat: 1}},
		{Class: speciesCat, Features: map[friend]int{friendFish: 1}},
		{Class: speciesCat, Features: map[friend]int{friendHuman: 1, friendFish: 1, friendCat: 1}},
		{Class: speciesHuman, Features: map[friend]int{friendHuman: 1, friendFish: 1, friendCat: 1, friendDog: 1}},
		{Class: speciesHuman, Features: map[friend]int{friendFish: 1, friendCat: 1, friendDog: 1}},
		{Class: speciesHuman, Features: map[friend]int{friendHuman: 1, friendFish: 1, friendDog: 1}},
		{Class: speciesHuman, Features: map[friend]int{friendHuman: 1, friendCat: 1}},
	}
}

func almostEqual(a, b float32) bool {
	const eps = 1e-4
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < eps
}

func TestTrainMatchesMammalsFixture(t *testing.T) {
	c := Train(mammalsExamples())

	want := map[species]ClassInfo[friend]{
		speciesCat: {
			ExampleCount:  4,
			ClassProbaLog: -1.0986123,
			UnkProbaLog:   -2.3978953,
			FeatProbaLog: map[friend]float32{
				friendCat:   -1.0116009,
				friendHuman: -1.704748,
				friendFish:  -1.0116009,
			},
		},
		speciesDog: {
			ExampleCount:  4,
			ClassProbaLog: -1.0986123,
			UnkProbaLog:   -2.3978953,
			FeatProbaLog: map[friend]float32{
				friendCat:   -1.704748,
				friendDog:   -1.0116009,
				friendHuman: -1.0116009,
			},
		},
		speciesHuman: {
			ExampleCount:  4,
			ClassProbaLog: -1.0986123,
			UnkProbaLog:   -2.7725887,
			FeatProbaLog: map[friend]float32{
				friendCat:   -1.3862944,
				friendDog:   -1.3862944,
				friendHuman: -1.3862944,
				friendFish:  -1.3862944,
			},
		},
	}

	if len(c.Classes) != len(want) {
		t.Fatalf("got %d classes, want %d", len(c.Classes), len(want))
	}
	for class, wantInfo := range want {
		got, ok := c.Classes[class]
		if !ok {
			t.Fatalf("missing class %v", class)
		}
		if got.ExampleCount != wantInfo.ExampleCount {
			t.Errorf("class %v: ExampleCount = %d, want %d", class, got.ExampleCount, wantInfo.ExampleCount)
		}
		if !almostEqual(got.ClassProbaLog, wantInfo.ClassProbaLog) {
			t.Errorf("class %v: ClassProbaLog = %v, want %v", class, got.ClassProbaLog, wantInfo.ClassProbaLog)
		}
		if !almostEqual(got.UnkProbaLog, wantInfo.UnkProbaLog) {
			t.Errorf("class %v: UnkProbaLog = %v, want %v", class, got.UnkProbaLog, wantInfo.UnkProbaLog)
		}
		for feat, wantP := range wantInfo.FeatProbaLog {
			gotP, ok := got.FeatProbaLog[feat]
			if !ok {
				t.Errorf("class %v: missing feature %v", class, feat)
				continue
			}
			if !almostEqual(gotP, wantP) {
				t.Errorf("class %v feature %v: ProbaLog = %v, want %v", class, feat, gotP, wantP)
			}
		}
	}
}

func TestScoresAreNormalized(t *testing.T) {
	c := Train(mammalsExamples())
	bag := map[friend]int{friendFish: 1, friendCat: 1}

	var sum float64
	for _, s := range c.Scores(bag) {
		sum += math.Exp(float64(s.ProbaLog))
	}
	if sum < 0.9999 || sum > 1.0001 {
		t.Errorf("sum of exp(ProbaLog) = %v, want ~1.0", sum)
	}
}

func TestClassify(t *testing.T) {
	c := Train(mammalsExamples())

	cases := []struct {
		name string
		bag  map[friend]int
		want species
	}{
		{"probable cat", map[friend]int{friendFish: 1, friendCat: 1}, speciesCat},
		{"probable dog", map[friend]int{friendHuman: 1, friendDog: 1}, speciesDog},
		{"probable human", map[friend]int{friendDog: 1, friendCat: 1, friendHuman: 1, friendFish: 1}, speciesHuman},
	}
	for _, tc := range cases {
		got, err := c.Classify(tc.bag)
		if err != nil {
			t.Fatalf("%s: Classify: %v", tc.name, err)
		}
		if got.Class != tc.want {
			t.Errorf("%s: Classify = %v, want %v", tc.name, got.Class, tc.want)
		}
	}
}

func TestClassifyNoClasses(t *testing.T) {
	var c Classifier[species, friend]
	if _, err := c.Classify(map[friend]int{friendCat: 1}); err != ErrNoClasses {
		t.Errorf("Classify on empty classifier = %v, want ErrNoClasses", err)
	}
}

func TestModelClassifyUnknownClassifierIsNeutral(t *testing.T) {
	model := Model[string, species, friend]{
		Classifiers: map[string]Classifier[species, friend]{
			"mammals": Train(mammalsExamples()),
			"void":    {Classes: map[species]ClassInfo[friend]{}},
		},
	}
	input := Input[string, friend]{ClassifierID: "unseen", Features: []friend{friendDog}}
	got, err := model.Classify(input, speciesDog)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if got != 0.0 {
		t.Errorf("Classify against unknown classifier id = %v, want 0.0", got)
	}
}

func TestModelClassifyRecursesIntoChildren(t *testing.T) {
	model := Model[string, species, friend]{
		Classifiers: map[string]Classifier[species, friend]{
			"mammals": Train(mammalsExamples()),
		},
	}
	leaf := Input[string, friend]{ClassifierID: "mammals", Features: []friend{friendHuman, friendDog}}

	dogScore, err := model.Classify(leaf, speciesDog)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if dogScore <= -0.5 {
		t.Errorf("dog score = %v, want > -0.5", dogScore)
	}
	catScore, err := model.Classify(leaf, speciesCat)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if catScore >= -0.5 {
		t.Errorf("cat score = %v, want < -0.5", catScore)
	}

	tree := Input[string, friend]{
		ClassifierID: "mammals",
		Features:     []friend{friendHuman, friendDog},
		Children:     []Input[string, friend]{leaf},
	}
	dogDog, err := model.Classify(tree, speciesDog)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if dogDog <= -1.0 || dogDog >= 0.5 {
		t.Errorf("two-level dog score = %v, want in (-1.0, 0.5)", dogDog)
	}
}
