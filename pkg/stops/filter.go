package stops

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/travigo/stopfinder/pkg/stoperrors"
)

// Filter narrows matched records with a boolean expression over the record
// fields, eg. `Status == "Active" && StopType != "Bus Stop"` or `IsActive()`.
type Filter struct {
	expression string
	program    *vm.Program
}

func CompileFilter(expression string) (*Filter, error) {
	program, err := expr.Compile(expression, expr.Env(StopRecord{}), expr.AsBool())
	if err != nil {
		return nil, stoperrors.NewValidationError("filter", expression, fmt.Sprintf("a boolean expression over stop fields (%s)", err))
	}

	return &Filter{
		expression: expression,
		program:    program,
	}, nil
}

func (f *Filter) String() string {
	return f.expression
}

func (f *Filter) Apply(records []StopRecord) ([]StopRecord, error) {
	filtered := []StopRecord{}

	for _, record := range records {
		output, err := expr.Run(f.program, record)
		if err != nil {
			return nil, fmt.Errorf("evaluating filter %q on %s: %w", f.expression, record.AtcoCode, err)
		}

		if output.(bool) {
			filtered = append(filtered, record)
		}
	}

	return filtered, nil
}
