// SPDX-License-Identifier: MIT

package factorgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors. Messages are prefixed with "factorgraph:" for grep-ability;
// callers match them with errors.Is.
var (
	// ErrGraphConstruction matches every error returned by New.
	ErrGraphConstruction = errors.New("factorgraph: graph construction failed")

	// ErrNoVariables is returned when a graph is built without variables.
	ErrNoVariables = errors.New("factorgraph: graph has no variables")

	// ErrNoFactors is returned when a graph is built without factors.
	ErrNoFactors = errors.New("factorgraph: graph has no factors")

	// ErrDuplicateVariable indicates two variables share an id.
	ErrDuplicateVariable = errors.New("factorgraph: duplicate variable id")

	// ErrUnknownVariable indicates a factor references an id that is not in the graph.
	ErrUnknownVariable = errors.New("factorgraph: unknown variable id")

	// ErrUnknownKind indicates a variable or factor kind outside the closed set.
	ErrUnknownKind = errors.New("factorgraph: unknown kind")

	// ErrArity indicates a factor connected to the wrong number of variables.
	ErrArity = errors.New("factorgraph: wrong number of connected variables")

	// ErrKindMismatch indicates a factor connected to a variable of an unsupported kind.
	ErrKindMismatch = errors.New("factorgraph: variable kind not supported by factor")

	// ErrEstimateLength indicates an estimate whose length does not match its kind.
	ErrEstimateLength = errors.New("factorgraph: estimate length mismatch")

	// ErrMeasurementLength indicates a measurement whose length does not match the factor.
	ErrMeasurementLength = errors.New("factorgraph: measurement length mismatch")

	// ErrInformationShape indicates an information matrix that is not residual-dim square.
	ErrInformationShape = errors.New("factorgraph: information matrix shape mismatch")

	// ErrInformationAsymmetric indicates an information matrix that is not symmetric.
	ErrInformationAsymmetric = errors.New("factorgraph: information matrix not symmetric")

	// ErrNonFinite indicates NaN or ±Inf in an estimate, measurement or information matrix.
	ErrNonFinite = errors.New("factorgraph: NaN or Inf value")

	// ErrDimensionMismatch indicates a Retract increment of the wrong length.
	ErrDimensionMismatch = errors.New("factorgraph: increment dimension mismatch")

	// ErrVariableMismatch indicates a factor evaluated against variables other
	// than the ones it was built for.
	ErrVariableMismatch = errors.New("factorgraph: variables do not match factor")
)

// ConstructionError describes one violation found by New.
// Subject is "variable" or "factor", Index its position in the input slice.
type ConstructionError struct {
	Subject string
	Index   int
	Err     error
}

// Error implements error.
func (e *ConstructionError) Error() string {
	if e.Subject == "" {
		return fmt.Sprintf("%s: %v", ErrGraphConstruction, e.Err)
	}

	return fmt.Sprintf("%s: %s #%d: %v", ErrGraphConstruction, e.Subject, e.Index, e.Err)
}

// Unwrap exposes both ErrGraphConstruction and the concrete cause to errors.Is.
func (e *ConstructionError) Unwrap() []error {
	return []error{ErrGraphConstruction, e.Err}
}

func variableErrorf(index int, err error, format string, args ...any) error {
	return &ConstructionError{Subject: "variable", Index: index, Err: fmt.Errorf("%w: "+format, append([]any{err}, args...)...)}
}

func factorErrorf(index int, err error, format string, args ...any) error {
	return &ConstructionError{Subject: "factor", Index: index, Err: fmt.Errorf("%w: "+format, append([]any{err}, args...)...)}
}
