package regressor

import "fmt"

type estimator interface {
	predict(x []float64) float64
}

func newEstimator(spec EstimatorSpec, width int) (estimator, error) {
	switch spec.Type {
	case EstimatorLinear:
		if len(spec.Coefficients) != width {
			return nil, fmt.Errorf("linear estimator has %d coefficients, encoded width is %d", len(spec.Coefficients), width)
		}
		return &linear{intercept: spec.Intercept, coef: spec.Coefficients}, nil
	case EstimatorGradientBoosting:
		if len(spec.Trees) == 0 {
			return nil, fmt.Errorf("gradient boosting estimator has no trees")
		}
		for i, t := range spec.Trees {
			if err := validateTree(t, width); err != nil {
				return nil, fmt.Errorf("tree %d: %w", i, err)
			}
		}
		return &boosting{base: spec.BaseScore, rate: spec.LearningRate, trees: spec.Trees}, nil
	default:
		return nil, fmt.Errorf("unknown estimator type %q", spec.Type)
	}
}

type linear struct {
	intercept float64
	coef      []float64
}

func (l *linear) predict(x []float64) float64 {
	y := l.intercept
	for i, c := range l.coef {
		y += c * x[i]
	}
	return y
}

type boosting struct {
	base  float64
	rate  float64
	trees []TreeSpec
}

func (b *boosting) predict(x []float64) float64 {
	sum := 0.0
	for _, t := range b.trees {
		sum += walk(t, x)
	}
	return b.base + b.rate*sum
}

func walk(t TreeSpec, x []float64) float64 {
	i := 0
	for {
		n := t.Nodes[i]
		if n.Leaf {
			return n.Value
		}
		if x[n.Feature] <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
}

// validateTree требует, чтобы дочерние узлы шли после родителя: так обход всегда конечен
func validateTree(t TreeSpec, width int) error {
	if len(t.Nodes) == 0 {
		return fmt.Errorf("no nodes")
	}
	for i, n := range t.Nodes {
		if n.Leaf {
			continue
		}
		if n.Feature < 0 || n.Feature >= width {
			return fmt.Errorf("node %d: feature index %d out of range [0,%d)", i, n.Feature, width)
		}
		for _, child := range []int{n.Left, n.Right} {
			if child <= i || child >= len(t.Nodes) {
				return fmt.Errorf("node %d: invalid child index %d", i, child)
			}
		}
	}
	return nil
}
