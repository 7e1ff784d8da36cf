package engine

import (
	"database/sql"
	"database/sql/driver"
	"fmt"

	sqlite "modernc.org/sqlite"
)

// RegisterRankingFunctions registers net_score and medal with the driver so
// they are available on new connections opened after this call.
// Note: existing open connections will not see new functions.
func RegisterRankingFunctions(_ *sql.DB) error {
	// Idempotent registration; driver rejects duplicates but we ignore errors silently here.
	_ = sqlite.RegisterDeterministicScalarFunction("net_score", 2, netScoreImpl)
	_ = sqlite.RegisterDeterministicScalarFunction("medal", 1, medalImpl)
	return nil
}

func asInteger(arg driver.Value) (int64, bool, error) {
	switch v := arg.(type) {
	case nil:
		return 0, false, nil
	case int64:
		return v, true, nil
	default:
		return 0, false, fmt.Errorf("engine: unsupported argument type %T; want INTEGER", arg)
	}
}

// netScoreImpl computes score minus penalty, treating a NULL penalty as zero.
// A NULL score yields NULL.
func netScoreImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("net_score: expected 2 arguments, got %d", len(args))
	}
	score, ok, err := asInteger(args[0])
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	penalty, ok, err := asInteger(args[1])
	if err != nil {
		return nil, err
	}
	if !ok {
		penalty = 0
	}
	return score - penalty, nil
}

// medalImpl maps a contest rank onto the conventional medal bands: ranks 1-4
// gold, 5-8 silver, 9-12 bronze, everything below unmedalled (empty string).
func medalImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("medal: expected 1 argument, got %d", len(args))
	}
	rank, ok, err := asInteger(args[0])
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	switch {
	case rank >= 1 && rank <= 4:
		return "gold", nil
	case rank >= 5 && rank <= 8:
		return "silver", nil
	case rank >= 9 && rank <= 12:
		return "bronze", nil
	default:
		return "", nil
	}
}
