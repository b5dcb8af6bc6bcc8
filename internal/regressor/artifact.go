package regressor

// Artifact - сериализованный вид обученной модели, как он лежит на диске
type Artifact struct {
	Name      string        `json:"name"`
	Version   string        `json:"version"`
	Target    string        `json:"target"`
	Features  []FeatureSpec `json:"features"`
	Estimator EstimatorSpec `json:"estimator"`
}

// Типы признаков
const (
	FeatureNumeric     = "numeric"
	FeatureCategorical = "categorical"
)

// FeatureSpec описывает преобразование одной колонки фрейма в признаки.
// Числовые признаки стандартизуются (x - mean) / std, пропуски (NaN) перед этим заменяются на Impute.
// Категориальные кодируются one-hot.
type FeatureSpec struct {
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	Mean       float64  `json:"mean,omitempty"`
	Std        float64  `json:"std,omitempty"`
	Impute     *float64 `json:"impute,omitempty"`
	Categories []string `json:"categories,omitempty"`
}

// Типы оценщиков
const (
	EstimatorLinear           = "linear"
	EstimatorGradientBoosting = "gradient_boosting"
)

// EstimatorSpec - параметры регрессора. Набор заполненных полей зависит от Type
type EstimatorSpec struct {
	Type string `json:"type"`

	// linear
	Intercept    float64   `json:"intercept,omitempty"`
	Coefficients []float64 `json:"coefficients,omitempty"`

	// gradient_boosting
	BaseScore    float64    `json:"base_score,omitempty"`
	LearningRate float64    `json:"learning_rate,omitempty"`
	Trees        []TreeSpec `json:"trees,omitempty"`
}

// TreeSpec - дерево решений в виде плоского списка узлов, корень под индексом 0
type TreeSpec struct {
	Nodes []NodeSpec `json:"nodes"`
}

// NodeSpec - узел дерева. Во внутреннем узле x[Feature] <= Threshold ведет в Left, иначе в Right
type NodeSpec struct {
	Leaf      bool    `json:"leaf,omitempty"`
	Value     float64 `json:"value,omitempty"`
	Feature   int     `json:"feature,omitempty"`
	Threshold float64 `json:"threshold,omitempty"`
	Left      int     `json:"left,omitempty"`
	Right     int     `json:"right,omitempty"`
}
