package model

// Model is a generic supervised learning interface.
type Model interface {
	Fit(X [][]float64, y []float64) error
	Predict(X [][]float64) []float64
}

// Classifier optionally exposes probabilities.
type Classifier interface {
	Model
	PredictProba(X [][]float64) []float64 // returns p(y=1) for binary classifiers
}

// FeatureImporter is implemented by models that can attribute importance to
// their input features after fitting.
type FeatureImporter interface {
	FeatureImportances() []float64
}

// Task distinguishes classification from regression estimators and metrics.
type Task int

const (
	TaskClassification Task = iota
	TaskRegression
)

func (t Task) String() string {
	if t == TaskClassification {
		return "classification"
	}
	return "regression"
}

// Estimator pairs a caller-supplied display name with a factory producing a
// fresh Model for a given feature count. The name, not the Go type, identifies
// the estimator in every result table.
type Estimator struct {
	Name  string
	Task  Task
	Build func(nFeatures int) Model
}
