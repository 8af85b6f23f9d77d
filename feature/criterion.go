package feature

import (
	"fmt"
	"strings"
)

/*
Sample is an interface for something that can satisfy a Criterion.

Its ValueFor method returns the value corresponding to the feature
passed as parameter.
*/
type Sample interface {
	ValueFor(*Feature) (string, error)
}

/*
Criterion represents a constraint on a feature: the value it must take.
Criteria label the edges of a tree, from a node splitting on Feature to
the child for Value.
*/
type Criterion struct {
	Feature *Feature
	Value   string
}

/*
NewCriterion takes a feature and a value and returns a Criterion
constraining the feature to the value.
*/
func NewCriterion(f *Feature, value string) Criterion {
	return Criterion{f, value}
}

/*
SatisfiedBy receives a sample as parameter and returns a boolean indicating if the
sample satisfies the criterion, that is, if its value for the criterion's feature
equals the criterion's value. An error is returned if the sample cannot provide
a value for the feature.
*/
func (c Criterion) SatisfiedBy(s Sample) (bool, error) {
	v, err := s.ValueFor(c.Feature)
	if err != nil {
		return false, err
	}
	return v == c.Value, nil
}

func (c Criterion) String() string {
	return fmt.Sprintf("%s is %s", c.Feature.Name(), c.Value)
}

/*
Conjunction is a slice of criteria that must all be satisfied.
*/
type Conjunction []Criterion

/*
SatisfiedBy returns whether the sample satisfies every criterion in the
conjunction. An empty conjunction is satisfied by every sample.
*/
func (cs Conjunction) SatisfiedBy(s Sample) (bool, error) {
	for _, c := range cs {
		ok, err := c.SatisfiedBy(s)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

func (cs Conjunction) String() string {
	if len(cs) == 0 {
		return "(root)"
	}
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}
	return strings.Join(parts, " and ")
}
