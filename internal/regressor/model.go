// Package regressor загружает предобученную модель регрессии с диска
// и выполняет по ней предсказания для табличных фреймов.
package regressor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/shenikar/disaster_response_predictor/internal/apperrors"
	"github.com/shenikar/disaster_response_predictor/internal/frame"
)

// ArtifactExt - расширение файла артефакта
const ArtifactExt = ".json"

// Model - загруженная модель. После загрузки не изменяется и безопасна для конкурентного использования
type Model struct {
	name    string
	version string
	target  string
	enc     *encoder
	est     estimator
}

// Load загружает артефакт <dir>/<name>.json. Любая ошибка возвращается как *apperrors.StartupError
func Load(dir, name string) (*Model, error) {
	path := filepath.Join(dir, name+ArtifactExt)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &apperrors.StartupError{Path: path, Err: err}
	}

	m, err := Parse(data)
	if err != nil {
		return nil, &apperrors.StartupError{Path: path, Err: err}
	}
	if m.name != name {
		return nil, &apperrors.StartupError{
			Path: path,
			Err:  fmt.Errorf("artifact is named %q, expected %q", m.name, name),
		}
	}
	return m, nil
}

// Parse собирает модель из содержимого артефакта. Неизвестные ключи - ошибка
func Parse(data []byte) (*Model, error) {
	var a Artifact
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&a); err != nil {
		return nil, fmt.Errorf("decode artifact: %w", err)
	}
	return FromArtifact(a)
}

// FromArtifact проверяет согласованность артефакта и строит модель
func FromArtifact(a Artifact) (*Model, error) {
	if a.Name == "" {
		return nil, fmt.Errorf("artifact has no name")
	}

	enc, err := newEncoder(a.Features)
	if err != nil {
		return nil, err
	}

	est, err := newEstimator(a.Estimator, enc.width)
	if err != nil {
		return nil, err
	}

	return &Model{
		name:    a.Name,
		version: a.Version,
		target:  a.Target,
		enc:     enc,
		est:     est,
	}, nil
}

// Name возвращает имя модели из артефакта
func (m *Model) Name() string {
	return m.name
}

// Version возвращает версию артефакта
func (m *Model) Version() string {
	return m.version
}

// Predict возвращает по одному значению на строку фрейма в порядке строк
func (m *Model) Predict(ctx context.Context, f *frame.Frame) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	x, err := m.enc.encode(f)
	if err != nil {
		return nil, fmt.Errorf("encode frame: %w", err)
	}

	out := make([]float64, len(x))
	for i, row := range x {
		y := m.est.predict(row)
		if math.IsNaN(y) || math.IsInf(y, 0) {
			return nil, fmt.Errorf("row %d: model produced non-finite %s %v", i, m.target, y)
		}
		out[i] = y
	}
	return out, nil
}
