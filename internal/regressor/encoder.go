package regressor

import (
	"fmt"
	"math"

	"github.com/shenikar/disaster_response_predictor/internal/frame"
)

type featureEncoder struct {
	spec  FeatureSpec
	kind  frame.Kind
	index map[string]int
}

// encoder превращает строки фрейма в плотные векторы признаков
type encoder struct {
	features []featureEncoder
	width    int
}

func newEncoder(specs []FeatureSpec) (*encoder, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("artifact declares no features")
	}

	enc := &encoder{}
	seen := make(map[string]struct{}, len(specs))
	for _, s := range specs {
		if s.Name == "" {
			return nil, fmt.Errorf("feature without name")
		}
		if _, dup := seen[s.Name]; dup {
			return nil, fmt.Errorf("duplicate feature %q", s.Name)
		}
		seen[s.Name] = struct{}{}

		switch s.Type {
		case FeatureNumeric:
			if s.Std < 0 {
				return nil, fmt.Errorf("feature %q: negative std %v", s.Name, s.Std)
			}
			if s.Impute != nil && (math.IsNaN(*s.Impute) || math.IsInf(*s.Impute, 0)) {
				return nil, fmt.Errorf("feature %q: impute value must be finite", s.Name)
			}
			enc.features = append(enc.features, featureEncoder{spec: s, kind: frame.Numeric})
			enc.width++
		case FeatureCategorical:
			if s.Impute != nil {
				return nil, fmt.Errorf("feature %q: impute is only supported for numeric features", s.Name)
			}
			if len(s.Categories) == 0 {
				return nil, fmt.Errorf("feature %q: no categories", s.Name)
			}
			idx := make(map[string]int, len(s.Categories))
			for i, c := range s.Categories {
				if _, dup := idx[c]; dup {
					return nil, fmt.Errorf("feature %q: duplicate category %q", s.Name, c)
				}
				idx[c] = i
			}
			enc.features = append(enc.features, featureEncoder{spec: s, kind: frame.Categorical, index: idx})
			enc.width += len(s.Categories)
		default:
			return nil, fmt.Errorf("feature %q: unknown type %q", s.Name, s.Type)
		}
	}
	return enc, nil
}

// encode возвращает матрицу rows x width. Неизвестная категория кодируется нулями
func (e *encoder) encode(f *frame.Frame) ([][]float64, error) {
	rows := f.Len()
	x := make([][]float64, rows)
	for i := range x {
		x[i] = make([]float64, e.width)
	}

	offset := 0
	for _, fe := range e.features {
		col, ok := f.Column(fe.spec.Name)
		if !ok {
			return nil, fmt.Errorf("frame is missing column %q", fe.spec.Name)
		}
		if col.Kind != fe.kind {
			return nil, fmt.Errorf("column %q is %s, model expects %s", fe.spec.Name, col.Kind, fe.kind)
		}

		switch fe.kind {
		case frame.Numeric:
			for i, v := range col.Numbers {
				x[i][offset] = fe.scale(v)
			}
			offset++
		case frame.Categorical:
			for i, v := range col.Strings {
				if pos, known := fe.index[v]; known {
					x[i][offset+pos] = 1
				}
			}
			offset += len(fe.spec.Categories)
		}
	}
	return x, nil
}

// scale подставляет Impute вместо пропуска и стандартизует значение.
// Пропуск без Impute остается NaN, и модель вернет ошибку о нечисловом результате
func (fe featureEncoder) scale(v float64) float64 {
	if math.IsNaN(v) && fe.spec.Impute != nil {
		v = *fe.spec.Impute
	}
	v -= fe.spec.Mean
	if fe.spec.Std != 0 {
		v /= fe.spec.Std
	}
	return v
}
